package mapper

import (
	"time"

	"automart-be/internal/entity"
	"automart-be/internal/model"
)

type TestDriveMapper struct{}

func NewTestDriveMapper() *TestDriveMapper {
	return &TestDriveMapper{}
}

func (m *TestDriveMapper) ToEntity(t *model.TestDrive) *entity.TestDrive {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.TestDrive{
		Id:              t.Id,
		CarId:           t.CarId,
		BuyerId:         t.BuyerId,
		DealerId:        t.DealerId,
		Status:          entity.TestDriveStatus(t.Status),
		ScheduledAt:     t.ScheduledAt,
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *TestDriveMapper) ToModel(t *entity.TestDrive) *model.TestDrive {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.TestDrive{
		Id:              t.Id,
		CarId:           t.CarId,
		BuyerId:         t.BuyerId,
		DealerId:        t.DealerId,
		Status:          string(t.Status),
		ScheduledAt:     t.ScheduledAt,
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *TestDriveMapper) ToEntities(drives []*model.TestDrive) []*entity.TestDrive {
	entities := make([]*entity.TestDrive, len(drives))
	for i, t := range drives {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
