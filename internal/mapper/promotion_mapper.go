package mapper

import (
	"automart-be/internal/entity"
	"automart-be/internal/model"
)

type PromotionMapper struct{}

func NewPromotionMapper() *PromotionMapper {
	return &PromotionMapper{}
}

func (m *PromotionMapper) ToEntity(p *model.PromotionOrder) *entity.PromotionOrder {
	if p == nil {
		return nil
	}

	return &entity.PromotionOrder{
		Id:              p.Id,
		CarId:           p.CarId,
		DealerId:        p.DealerId,
		OrderId:         p.OrderId,
		Amount:          p.Amount,
		DurationDays:    p.DurationDays,
		Status:          entity.PromotionStatus(p.Status),
		SnapToken:       p.SnapToken,
		SnapRedirectURL: p.SnapRedirectURL,
		CreatedAt:       p.CreatedAt,
		PaidAt:          p.PaidAt,
	}
}

func (m *PromotionMapper) ToModel(p *entity.PromotionOrder) *model.PromotionOrder {
	if p == nil {
		return nil
	}

	return &model.PromotionOrder{
		Id:              p.Id,
		CarId:           p.CarId,
		DealerId:        p.DealerId,
		OrderId:         p.OrderId,
		Amount:          p.Amount,
		DurationDays:    p.DurationDays,
		Status:          string(p.Status),
		SnapToken:       p.SnapToken,
		SnapRedirectURL: p.SnapRedirectURL,
		CreatedAt:       p.CreatedAt,
		PaidAt:          p.PaidAt,
	}
}

func (m *PromotionMapper) ToEntities(orders []*model.PromotionOrder) []*entity.PromotionOrder {
	entities := make([]*entity.PromotionOrder, len(orders))
	for i, p := range orders {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
