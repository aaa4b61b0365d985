package mapper

import (
	"time"

	"automart-be/internal/entity"
	"automart-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CarMapper struct{}

func NewCarMapper() *CarMapper {
	return &CarMapper{}
}

func (m *CarMapper) ToEntity(c *model.Car) *entity.Car {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Car{
		Id:            c.Id,
		DealerId:      c.DealerId,
		Make:          c.Make,
		CarModel:      c.CarModel,
		Year:          c.Year,
		Price:         c.Price,
		Mileage:       c.Mileage,
		FuelType:      c.FuelType,
		Transmission:  c.Transmission,
		BodyType:      c.BodyType,
		Color:         c.Color,
		Condition:     c.Condition,
		Description:   c.Description,
		Images:        []string(c.Images),
		Status:        entity.CarStatus(c.Status),
		IsTestDriving: c.IsTestDriving,
		IsFeatured:    c.IsFeatured,
		FeaturedUntil: c.FeaturedUntil,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *CarMapper) ToModel(c *entity.Car) *model.Car {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Car{
		Id:            c.Id,
		DealerId:      c.DealerId,
		Make:          c.Make,
		CarModel:      c.CarModel,
		Year:          c.Year,
		Price:         c.Price,
		Mileage:       c.Mileage,
		FuelType:      c.FuelType,
		Transmission:  c.Transmission,
		BodyType:      c.BodyType,
		Color:         c.Color,
		Condition:     c.Condition,
		Description:   c.Description,
		Images:        datatypes.JSONSlice[string](c.Images),
		Status:        string(c.Status),
		IsTestDriving: c.IsTestDriving,
		IsFeatured:    c.IsFeatured,
		FeaturedUntil: c.FeaturedUntil,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *CarMapper) ToEntities(cars []*model.Car) []*entity.Car {
	entities := make([]*entity.Car, len(cars))
	for i, c := range cars {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
