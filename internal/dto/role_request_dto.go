package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRoleRequestRequest struct {
	Reason string `json:"reason" validate:"required,min=10"`
}

type ReviewRoleRequestRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

type RoleRequestDTO struct {
	Id            uuid.UUID  `json:"id"`
	UserId        uuid.UUID  `json:"user_id"`
	RequestedRole string     `json:"requested_role"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewNote    *string    `json:"review_note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
