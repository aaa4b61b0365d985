package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ReceiverId   uuid.UUID `json:"receiver_id" validate:"required"`
	Text         *string   `json:"text"`
	ImageURL     *string   `json:"image_url"`
	ImageAssetId *string   `json:"image_asset_id"`
}

type MessageDTO struct {
	Id        uuid.UUID        `json:"id"`
	SenderId  uuid.UUID        `json:"sender_id"`
	Receiver  uuid.UUID        `json:"receiver_id"`
	Text      *string          `json:"text,omitempty"`
	ImageURL  *string          `json:"image_url,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
	Sender    PublicProfileDTO `json:"sender"`
}

type ConversationQuery struct {
	WithUserId string `query:"with"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

type DeleteMessageResponse struct {
	Id uuid.UUID `json:"id"`
}
