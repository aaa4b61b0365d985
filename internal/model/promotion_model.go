package model

import (
	"time"

	"github.com/google/uuid"
)

type PromotionOrder struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CarId           uuid.UUID `gorm:"type:uuid;not null;index"`
	DealerId        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Amount          int64     `gorm:"not null"`
	DurationDays    int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	SnapToken       string    `gorm:"type:text"`
	SnapRedirectURL string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	PaidAt          *time.Time
}

func (PromotionOrder) TableName() string {
	return "promotion_orders"
}
