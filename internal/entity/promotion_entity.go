package entity

import (
	"time"

	"github.com/google/uuid"
)

type PromotionStatus string

const (
	PromotionStatusPending   PromotionStatus = "pending"
	PromotionStatusPaid      PromotionStatus = "paid"
	PromotionStatusExpired   PromotionStatus = "expired"
	PromotionStatusCancelled PromotionStatus = "cancelled"
)

// PromotionOrder is a featured-listing purchase paid through Midtrans Snap.
type PromotionOrder struct {
	Id              uuid.UUID
	CarId           uuid.UUID
	DealerId        uuid.UUID
	OrderId         string // external order id sent to the gateway
	Amount          int64
	DurationDays    int
	Status          PromotionStatus
	SnapToken       string
	SnapRedirectURL string
	CreatedAt       time.Time
	PaidAt          *time.Time
}
