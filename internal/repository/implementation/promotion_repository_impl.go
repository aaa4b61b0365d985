package implementation

import (
	"context"
	"errors"

	"automart-be/internal/entity"
	"automart-be/internal/mapper"
	"automart-be/internal/model"
	"automart-be/internal/repository/contract"
	"automart-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PromotionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromotionMapper
}

func NewPromotionRepository(db *gorm.DB) contract.PromotionRepository {
	return &PromotionRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromotionMapper(),
	}
}

func (r *PromotionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromotionRepositoryImpl) Create(ctx context.Context, order *entity.PromotionOrder) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromotionRepositoryImpl) Update(ctx context.Context, order *entity.PromotionOrder) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromotionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromotionOrder, error) {
	var m model.PromotionOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromotionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromotionOrder, error) {
	var models []*model.PromotionOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
