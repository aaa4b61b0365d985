package model

import (
	"time"

	"github.com/google/uuid"
)

type RoleChangeRequest struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestedRole string     `gorm:"type:varchar(50);not null"`
	Reason        string     `gorm:"type:text;not null"`
	Status        string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	ReviewedBy    *uuid.UUID `gorm:"type:uuid"`
	ReviewNote    *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (RoleChangeRequest) TableName() string {
	return "role_change_requests"
}
