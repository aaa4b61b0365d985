package realtime

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestHub() *Hub {
	return NewHub(NewPresenceRegistry(), nil, noopLogger{})
}

func decodeEnvelope(t *testing.T, raw []byte) (string, json.RawMessage) {
	t.Helper()
	var env struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env.Type, env.Data
}

func TestPublishDeliversToOnlineUser(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	client := &Client{UserID: userID, Send: make(chan []byte, 8)}
	hub.registry.Register(client)

	hub.Publish(userID, EventNewMessage, map[string]string{"text": "hello"})

	select {
	case raw := <-client.Send:
		eventType, data := decodeEnvelope(t, raw)
		if eventType != EventNewMessage {
			t.Errorf("type = %q, want %q", eventType, EventNewMessage)
		}
		var payload map[string]string
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload["text"] != "hello" {
			t.Errorf("payload = %v, want text=hello", payload)
		}
	default:
		t.Fatal("no message delivered to client")
	}
}

func TestPublishToOfflineUserIsNoOp(t *testing.T) {
	hub := newTestHub()

	// Must not panic or block without redis.
	hub.Publish(uuid.New(), EventTestDriveRequest, map[string]string{"status": "pending"})
}

func TestBroadcastOnlineUsers(t *testing.T) {
	hub := newTestHub()

	a := &Client{UserID: uuid.New(), Send: make(chan []byte, 8)}
	b := &Client{UserID: uuid.New(), Send: make(chan []byte, 8)}
	hub.registry.Register(a)
	hub.registry.Register(b)

	hub.broadcastOnlineUsers()

	for _, client := range []*Client{a, b} {
		select {
		case raw := <-client.Send:
			eventType, data := decodeEnvelope(t, raw)
			if eventType != EventOnlineUsers {
				t.Errorf("type = %q, want %q", eventType, EventOnlineUsers)
			}
			var ids []uuid.UUID
			if err := json.Unmarshal(data, &ids); err != nil {
				t.Fatalf("unmarshal ids: %v", err)
			}
			if len(ids) != 2 {
				t.Errorf("online ids = %v, want 2 entries", ids)
			}
		default:
			t.Fatalf("client %s received no broadcast", client.UserID)
		}
	}
}

func TestPublishAfterCloseDoesNotPanic(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	client := &Client{UserID: userID, Send: make(chan []byte, 8)}
	hub.registry.Register(client)

	// A disconnect can close the channel between the registry lookup and the
	// send. The guarded send must drop the payload instead of panicking.
	client.closeSend()
	hub.Publish(userID, EventNewMessage, "late payload")

	if _, ok := hub.registry.Lookup(userID); ok {
		t.Error("closed client still registered after publish")
	}

	// closeSend is idempotent.
	client.closeSend()
}

func TestStalledClientIsDropped(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	// Unbuffered channel with no reader: the first delivery stalls.
	client := &Client{UserID: userID, Send: make(chan []byte)}
	hub.registry.Register(client)

	hub.Publish(userID, EventNewMessage, "payload")

	if _, ok := hub.registry.Lookup(userID); ok {
		t.Error("stalled client still registered after failed delivery")
	}

	// Send must be closed so the write pump exits.
	if _, open := <-client.Send; open {
		t.Error("Send channel still open after drop")
	}
}
