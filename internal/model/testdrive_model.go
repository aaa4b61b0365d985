package model

import (
	"time"

	"github.com/google/uuid"
)

type TestDrive struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CarId           uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerId         uuid.UUID `gorm:"type:uuid;not null;index"`
	DealerId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ScheduledAt     time.Time `gorm:"not null"`
	RejectionReason *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (TestDrive) TableName() string {
	return "test_drives"
}
