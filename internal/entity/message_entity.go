package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once delivered except for the read flag and deletion.
type Message struct {
	Id           uuid.UUID
	SenderId     uuid.UUID
	ReceiverId   uuid.UUID
	Text         *string
	ImageURL     *string
	ImageAssetId *string // blob-storage public id, needed for asset cleanup on delete
	IsRead       bool
	CreatedAt    time.Time
}

func (m *Message) HasContent() bool {
	return (m.Text != nil && *m.Text != "") || (m.ImageURL != nil && *m.ImageURL != "")
}
