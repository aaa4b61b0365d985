package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleDealer UserRole = "dealer"
	UserRoleAdmin  UserRole = "admin"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	Status       UserStatus
	AvatarURL    *string
	Phone        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile is the subset of user fields safe to embed in relayed
// payloads (chat messages, test-drive summaries).
type PublicProfile struct {
	Id        uuid.UUID
	FullName  string
	AvatarURL *string
	Role      UserRole
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		Id:        u.Id,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}
