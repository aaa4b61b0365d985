package contract

import (
	"context"

	"automart-be/internal/entity"
	"automart-be/internal/repository/specification"
)

type RoleRequestRepository interface {
	Create(ctx context.Context, request *entity.RoleChangeRequest) error
	Update(ctx context.Context, request *entity.RoleChangeRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoleChangeRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoleChangeRequest, error)
}
