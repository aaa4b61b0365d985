package contract

import (
	"context"
	"time"

	"automart-be/internal/entity"
	"automart-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Car, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Car, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	SetTestDriving(ctx context.Context, id uuid.UUID, testDriving bool) error
	SetFeatured(ctx context.Context, id uuid.UUID, until time.Time) error
}
