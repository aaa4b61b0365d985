package entity

import (
	"time"

	"github.com/google/uuid"
)

type RoleRequestStatus string

const (
	RoleRequestStatusPending  RoleRequestStatus = "pending"
	RoleRequestStatusApproved RoleRequestStatus = "approved"
	RoleRequestStatusRejected RoleRequestStatus = "rejected"
)

// RoleChangeRequest tracks a buyer asking to become a dealer.
type RoleChangeRequest struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	RequestedRole UserRole
	Reason        string
	Status        RoleRequestStatus
	ReviewedBy    *uuid.UUID
	ReviewNote    *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
