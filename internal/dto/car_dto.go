package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Make         string   `json:"make" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int64    `json:"year" validate:"required,gte=1900,lte=2100"`
	Price        int64    `json:"price" validate:"required,gt=0"`
	Mileage      int64    `json:"mileage" validate:"gte=0"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	BodyType     string   `json:"body_type"`
	Color        string   `json:"color"`
	Condition    string   `json:"condition"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
}

type UpdateCarRequest struct {
	Make         *string  `json:"make"`
	Model        *string  `json:"model"`
	Year         *int64   `json:"year"`
	Price        *int64   `json:"price"`
	Mileage      *int64   `json:"mileage"`
	FuelType     *string  `json:"fuel_type"`
	Transmission *string  `json:"transmission"`
	BodyType     *string  `json:"body_type"`
	Color        *string  `json:"color"`
	Condition    *string  `json:"condition"`
	Description  *string  `json:"description"`
	Images       []string `json:"images"`
	Status       *string  `json:"status"`
}

type CarDTO struct {
	Id            uuid.UUID  `json:"id"`
	DealerId      uuid.UUID  `json:"dealer_id"`
	Make          string     `json:"make"`
	Model         string     `json:"model"`
	Year          int64      `json:"year"`
	Price         int64      `json:"price"`
	Mileage       int64      `json:"mileage"`
	FuelType      string     `json:"fuel_type"`
	Transmission  string     `json:"transmission"`
	BodyType      string     `json:"body_type"`
	Color         string     `json:"color"`
	Condition     string     `json:"condition"`
	Description   string     `json:"description"`
	Images        []string   `json:"images"`
	Status        string     `json:"status"`
	IsTestDriving bool       `json:"is_test_driving"`
	IsFeatured    bool       `json:"is_featured"`
	FeaturedUntil *time.Time `json:"featured_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ListCarsQuery struct {
	Make     string `query:"make"`
	Model    string `query:"model"`
	MinPrice int64  `query:"min_price"`
	MaxPrice int64  `query:"max_price"`
	MinYear  int64  `query:"min_year"`
	MaxYear  int64  `query:"max_year"`
	DealerId string `query:"dealer_id"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// GenerateListingResponse is the outcome of the image-driven listing draft.
// Attributes is present only when the audit passed.
type GenerateListingResponse struct {
	IsValid         bool              `json:"is_valid"`
	ConfidenceScore float64           `json:"confidence_score"`
	Inconsistencies []string          `json:"inconsistencies,omitempty"`
	FraudIndicators []string          `json:"fraud_indicators,omitempty"`
	Draft           *CreateCarRequest `json:"draft,omitempty"`
	Checks          map[string]bool   `json:"checks"`
}

// IndexCarMessage is the payload published to the listing-index topic.
type IndexCarMessage struct {
	CarId uuid.UUID `json:"car_id"`
}

type SimilarCarDTO struct {
	Car      CarDTO  `json:"car"`
	Distance float64 `json:"distance"`
}
