package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTestDriveRequest struct {
	CarId       uuid.UUID `json:"car_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type RejectTestDriveRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type TestDriveDTO struct {
	Id              uuid.UUID  `json:"id"`
	CarId           uuid.UUID  `json:"car_id"`
	BuyerId         uuid.UUID  `json:"buyer_id"`
	DealerId        uuid.UUID  `json:"dealer_id"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
