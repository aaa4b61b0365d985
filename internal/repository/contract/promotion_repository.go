package contract

import (
	"context"

	"automart-be/internal/entity"
	"automart-be/internal/repository/specification"
)

type PromotionRepository interface {
	Create(ctx context.Context, order *entity.PromotionOrder) error
	Update(ctx context.Context, order *entity.PromotionOrder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromotionOrder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromotionOrder, error)
}
