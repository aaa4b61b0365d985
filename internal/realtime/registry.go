package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// PresenceRegistry maps a user id to their single active connection.
// A new connection from the same user replaces the previous one
// (last-connect-wins; no multi-device fan-out).
type PresenceRegistry struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*Client
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		clients: make(map[uuid.UUID]*Client),
	}
}

// Register stores the mapping and returns the displaced connection, if any,
// so the caller can close it.
func (r *PresenceRegistry) Register(client *Client) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	displaced := r.clients[client.UserID]
	r.clients[client.UserID] = client
	return displaced
}

// Unregister removes the mapping only if client is the currently registered
// connection. Without this guard a slow disconnect racing a fast reconnect
// would delete the newer mapping. Reports whether an entry was removed.
func (r *PresenceRegistry) Unregister(client *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.clients[client.UserID]
	if !ok || current != client {
		return false
	}
	delete(r.clients, client.UserID)
	return true
}

// Lookup is a pure read with no side effects.
func (r *PresenceRegistry) Lookup(userID uuid.UUID) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[userID]
	return client, ok
}

// OnlineUserIDs returns a snapshot of all user ids with an active connection.
func (r *PresenceRegistry) OnlineUserIDs() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	return ids
}

// Snapshot returns all active clients. Used for broadcasts.
func (r *PresenceRegistry) Snapshot() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	return clients
}
