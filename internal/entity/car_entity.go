package entity

import (
	"time"

	"github.com/google/uuid"
)

type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusSold      CarStatus = "sold"
)

type Car struct {
	Id            uuid.UUID
	DealerId      uuid.UUID
	Make          string
	CarModel      string
	Year          int
	Price         int64
	Mileage       int64
	FuelType      string
	Transmission  string
	BodyType      string
	Color         string
	Condition     string
	Description   string
	Images        []string
	Status        CarStatus
	IsTestDriving bool
	IsFeatured    bool
	FeaturedUntil *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}

// IndexText is the text fed to the embedding pipeline for similar-car search.
func (c *Car) IndexText() string {
	return c.Make + " " + c.CarModel + " " + c.BodyType + " " + c.FuelType + " " + c.Transmission + " " + c.Description
}
