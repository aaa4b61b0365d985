package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation filters messages exchanged between two users, both directions.
type Conversation struct {
	UserA uuid.UUID
	UserB uuid.UUID
}

func (s Conversation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		s.UserA, s.UserB, s.UserB, s.UserA,
	)
}

// UnreadFor filters messages addressed to a user that are still unread.
type UnreadFor struct {
	UserID uuid.UUID
}

func (s UnreadFor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("receiver_id = ? AND is_read = false", s.UserID)
}

// SentBy filters messages authored by a user.
type SentBy struct {
	UserID uuid.UUID
}

func (s SentBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ?", s.UserID)
}
