package realtime

import (
	"context"
	"encoding/json"

	"automart-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Relay event types pushed to clients.
const (
	EventOnlineUsers           = "getonlineusers"
	EventNewMessage            = "newMessage"
	EventMessageDeleted        = "messageDeleted"
	EventTestDriveRequest      = "testDriveRequest"
	EventTestDriveStatusUpdate = "testDriveStatusUpdate"
)

const clusterChannel = "cluster_events"

// Publisher is the only surface services see; the websocket transport is an
// implementation detail behind it. Delivery is best-effort: publishing to an
// offline user is a silent no-op.
type Publisher interface {
	Publish(userID uuid.UUID, eventType string, payload interface{})
}

// Hub owns the presence registry and serializes connection lifecycle events.
type Hub struct {
	registry *PresenceRegistry

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Redis connection for cross-instance delivery. Nil in the default
	// single-instance deployment.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(registry *PresenceRegistry, rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		registry:   registry,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Registry() *PresenceRegistry {
	return h.registry
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			if displaced := h.registry.Register(client); displaced != nil {
				// last-connect-wins: drop the stale connection
				displaced.closeSend()
				h.logger.Info("Hub", "Displaced stale connection", map[string]interface{}{"user_id": client.UserID})
			}
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})
			h.broadcastOnlineUsers()

		case client := <-h.unregister:
			if h.registry.Unregister(client) {
				client.closeSend()
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
				h.broadcastOnlineUsers()
			}
		}
	}
}

func envelope(eventType string, payload interface{}) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	return data
}

// Publish implements Publisher.
func (h *Hub) Publish(userID uuid.UUID, eventType string, payload interface{}) {
	data := envelope(eventType, payload)

	if client, ok := h.registry.Lookup(userID); ok {
		h.deliver(client, data)
		return
	}

	// Local miss may be a hit on another instance.
	if h.rdb != nil {
		msg, _ := json.Marshal(clusterMessage{TargetUserID: userID.String(), Message: data})
		h.rdb.Publish(context.Background(), clusterChannel, msg)
	}
}

// broadcastOnlineUsers pushes the full online set to every connection.
func (h *Hub) broadcastOnlineUsers() {
	data := envelope(EventOnlineUsers, h.registry.OnlineUserIDs())
	for _, client := range h.registry.Snapshot() {
		h.deliver(client, data)
	}
}

func (h *Hub) deliver(client *Client, data []byte) {
	if client.trySend(data) {
		return
	}
	// Closed or stalled: drop the connection.
	h.logger.Warn("Hub", "Client unable to receive, dropping connection", map[string]interface{}{"user_id": client.UserID})
	if h.registry.Unregister(client) {
		client.closeSend()
	}
}

type clusterMessage struct {
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Malformed cluster message", map[string]interface{}{"error": err.Error()})
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		if client, ok := h.registry.Lookup(uid); ok {
			h.deliver(client, payload.Message)
		}
	}
}
