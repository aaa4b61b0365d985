package contract

import (
	"context"

	"automart-be/internal/entity"
	"automart-be/internal/repository/specification"
)

type TestDriveRepository interface {
	Create(ctx context.Context, drive *entity.TestDrive) error
	Update(ctx context.Context, drive *entity.TestDrive) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TestDrive, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TestDrive, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
