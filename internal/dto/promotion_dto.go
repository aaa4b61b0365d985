package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePromotionRequest struct {
	CarId        uuid.UUID `json:"car_id" validate:"required"`
	DurationDays int       `json:"duration_days" validate:"required,oneof=7 14 30"`
}

type PromotionOrderDTO struct {
	Id              uuid.UUID  `json:"id"`
	CarId           uuid.UUID  `json:"car_id"`
	OrderId         string     `json:"order_id"`
	Amount          int64      `json:"amount"`
	DurationDays    int        `json:"duration_days"`
	Status          string     `json:"status"`
	SnapToken       string     `json:"snap_token,omitempty"`
	SnapRedirectURL string     `json:"snap_redirect_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

// MidtransNotification is the subset of the gateway webhook payload we act on.
type MidtransNotification struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}
