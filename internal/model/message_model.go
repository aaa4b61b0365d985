package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId     uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair"`
	ReceiverId   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair"`
	Text         *string   `gorm:"type:text"`
	ImageURL     *string   `gorm:"type:text"`
	ImageAssetId *string   `gorm:"type:varchar(255)"`
	IsRead       bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Message) TableName() string {
	return "messages"
}
