package specification

import (
	"gorm.io/gorm"
)

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByRole filters users by role
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// ByProvider filters user_providers rows by provider name + external user id
type ByProvider struct {
	ProviderName   string
	ProviderUserId string
}

func (s ByProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("provider_name = ? AND provider_user_id = ?", s.ProviderName, s.ProviderUserId)
}

// ByTokenHash filters refresh tokens by hash
type ByTokenHash struct {
	Hash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.Hash)
}

// ActiveToken filters out revoked refresh tokens
type ActiveToken struct{}

func (s ActiveToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("revoked = false AND expires_at > NOW()")
}
