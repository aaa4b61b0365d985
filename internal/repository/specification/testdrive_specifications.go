package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByBuyer filters test drives requested by a buyer
type ByBuyer struct {
	BuyerID uuid.UUID
}

func (s ByBuyer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("buyer_id = ?", s.BuyerID)
}

// ByCar filters test drives for a car
type ByCar struct {
	CarID uuid.UUID
}

func (s ByCar) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("car_id = ?", s.CarID)
}

// ByStatus filters by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// OwnedBy filters rows whose user_id column matches
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
