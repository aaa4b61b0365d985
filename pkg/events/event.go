package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TESTDRIVE_ACCEPTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by publishers and the
// subscriber when reconstructing events off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published by the marketplace services.
const (
	TypeTestDriveRequested   = "TESTDRIVE_REQUESTED"
	TypeTestDriveStatusMoved = "TESTDRIVE_STATUS_MOVED"
	TypeRoleChangeRequested  = "ROLE_CHANGE_REQUESTED"
	TypeRoleChangeReviewed   = "ROLE_CHANGE_REVIEWED"
	TypeListingPromotionPaid = "LISTING_PROMOTION_PAID"
)

// NewEvent builds a BaseEvent stamped with the current time.
func NewEvent(eventType string, data map[string]interface{}) Event {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
