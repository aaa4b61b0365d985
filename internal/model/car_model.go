package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Car struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DealerId      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Make          string                      `gorm:"type:varchar(100);not null;index"`
	CarModel      string                      `gorm:"column:model;type:varchar(100);not null;index"`
	Year          int                         `gorm:"not null"`
	Price         int64                       `gorm:"not null"`
	Mileage       int64                       `gorm:"not null;default:0"`
	FuelType      string                      `gorm:"type:varchar(50)"`
	Transmission  string                      `gorm:"type:varchar(50)"`
	BodyType      string                      `gorm:"type:varchar(50)"`
	Color         string                      `gorm:"type:varchar(50)"`
	Condition     string                      `gorm:"type:varchar(50)"`
	Description   string                      `gorm:"type:text"`
	Images        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Status        string                      `gorm:"type:varchar(50);not null;default:'available'"`
	IsTestDriving bool                        `gorm:"default:false"`
	IsFeatured    bool                        `gorm:"default:false;index"`
	FeaturedUntil *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Car) TableName() string {
	return "cars"
}
