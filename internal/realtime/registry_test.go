package realtime

import (
	"testing"

	"github.com/google/uuid"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewPresenceRegistry()
	userID := uuid.New()
	client := &Client{UserID: userID, Send: make(chan []byte, 1)}

	if displaced := r.Register(client); displaced != nil {
		t.Fatalf("Register returned displaced = %v, want nil", displaced)
	}

	got, ok := r.Lookup(userID)
	if !ok || got != client {
		t.Fatalf("Lookup = (%v, %v), want registered client", got, ok)
	}

	if _, ok := r.Lookup(uuid.New()); ok {
		t.Error("Lookup of unknown user returned ok = true")
	}
}

func TestRegisterDisplacesPreviousConnection(t *testing.T) {
	r := NewPresenceRegistry()
	userID := uuid.New()
	first := &Client{UserID: userID, Send: make(chan []byte, 1)}
	second := &Client{UserID: userID, Send: make(chan []byte, 1)}

	r.Register(first)

	displaced := r.Register(second)
	if displaced != first {
		t.Fatalf("Register returned displaced = %v, want first client", displaced)
	}

	got, _ := r.Lookup(userID)
	if got != second {
		t.Errorf("Lookup returned %v, want second client", got)
	}
	if len(r.OnlineUserIDs()) != 1 {
		t.Errorf("OnlineUserIDs len = %d, want 1", len(r.OnlineUserIDs()))
	}
}

func TestUnregisterIgnoresStaleClient(t *testing.T) {
	r := NewPresenceRegistry()
	userID := uuid.New()
	stale := &Client{UserID: userID, Send: make(chan []byte, 1)}
	fresh := &Client{UserID: userID, Send: make(chan []byte, 1)}

	r.Register(stale)
	r.Register(fresh)

	// The stale connection's deferred unregister must not evict the new one.
	if removed := r.Unregister(stale); removed {
		t.Fatal("Unregister(stale) = true, want false")
	}

	got, ok := r.Lookup(userID)
	if !ok || got != fresh {
		t.Fatalf("Lookup after stale unregister = (%v, %v), want fresh client", got, ok)
	}

	if removed := r.Unregister(fresh); !removed {
		t.Fatal("Unregister(fresh) = false, want true")
	}
	if _, ok := r.Lookup(userID); ok {
		t.Error("Lookup after unregister returned ok = true")
	}
}

func TestUnregisterUnknownUser(t *testing.T) {
	r := NewPresenceRegistry()
	client := &Client{UserID: uuid.New(), Send: make(chan []byte, 1)}

	if removed := r.Unregister(client); removed {
		t.Error("Unregister of never-registered client = true, want false")
	}
}

func TestOnlineUserIDs(t *testing.T) {
	r := NewPresenceRegistry()

	if ids := r.OnlineUserIDs(); len(ids) != 0 {
		t.Fatalf("OnlineUserIDs on empty registry = %v, want empty", ids)
	}

	users := map[uuid.UUID]bool{}
	for i := 0; i < 3; i++ {
		id := uuid.New()
		users[id] = true
		r.Register(&Client{UserID: id, Send: make(chan []byte, 1)})
	}

	ids := r.OnlineUserIDs()
	if len(ids) != 3 {
		t.Fatalf("OnlineUserIDs len = %d, want 3", len(ids))
	}
	for _, id := range ids {
		if !users[id] {
			t.Errorf("OnlineUserIDs contains unexpected id %s", id)
		}
	}
}
