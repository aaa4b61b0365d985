package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByDealer filters cars owned by a dealer
type ByDealer struct {
	DealerID uuid.UUID
}

func (s ByDealer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dealer_id = ?", s.DealerID)
}

// ByMakeModel filters by make and optionally model (case-insensitive)
type ByMakeModel struct {
	Make     string
	CarModel string
}

func (s ByMakeModel) Apply(db *gorm.DB) *gorm.DB {
	if s.Make != "" {
		db = db.Where("make ILIKE ?", s.Make)
	}
	if s.CarModel != "" {
		db = db.Where("model ILIKE ?", s.CarModel)
	}
	return db
}

// PriceBetween filters by inclusive price range; zero bounds are ignored
type PriceBetween struct {
	Min int64
	Max int64
}

func (s PriceBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min > 0 {
		db = db.Where("price >= ?", s.Min)
	}
	if s.Max > 0 {
		db = db.Where("price <= ?", s.Max)
	}
	return db
}

// YearBetween filters by inclusive model-year range; zero bounds are ignored
type YearBetween struct {
	Min int
	Max int
}

func (s YearBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min > 0 {
		db = db.Where("year >= ?", s.Min)
	}
	if s.Max > 0 {
		db = db.Where("year <= ?", s.Max)
	}
	return db
}

// Available filters to listings still on sale
type Available struct{}

func (s Available) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = 'available'")
}

// FeaturedFirst orders featured listings before the rest
type FeaturedFirst struct{}

func (s FeaturedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_featured DESC, created_at DESC")
}
