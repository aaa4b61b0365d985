package implementation

import (
	"context"
	"errors"
	"time"

	"automart-be/internal/entity"
	"automart-be/internal/mapper"
	"automart-be/internal/model"
	"automart-be/internal/repository/contract"
	"automart-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CarMapper
}

func NewCarRepository(db *gorm.DB) contract.CarRepository {
	return &CarRepositoryImpl{
		db:     db,
		mapper: mapper.NewCarMapper(),
	}
}

func (r *CarRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CarRepositoryImpl) Create(ctx context.Context, car *entity.Car) error {
	m := r.mapper.ToModel(car)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*car = *r.mapper.ToEntity(m)
	return nil
}

func (r *CarRepositoryImpl) Update(ctx context.Context, car *entity.Car) error {
	m := r.mapper.ToModel(car)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*car = *r.mapper.ToEntity(m)
	return nil
}

func (r *CarRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, id).Error
}

func (r *CarRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Car, error) {
	var m model.Car
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CarRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Car, error) {
	var models []*model.Car
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CarRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Car{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CarRepositoryImpl) SetTestDriving(ctx context.Context, id uuid.UUID, testDriving bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Car{}).
		Where("id = ?", id).
		Update("is_test_driving", testDriving).Error
}

func (r *CarRepositoryImpl) SetFeatured(ctx context.Context, id uuid.UUID, until time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Car{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_featured":    true,
			"featured_until": until,
		}).Error
}
