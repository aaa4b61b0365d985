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

type RoleRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RoleRequestMapper
}

func NewRoleRequestRepository(db *gorm.DB) contract.RoleRequestRepository {
	return &RoleRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewRoleRequestMapper(),
	}
}

func (r *RoleRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RoleRequestRepositoryImpl) Create(ctx context.Context, request *entity.RoleChangeRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoleRequestRepositoryImpl) Update(ctx context.Context, request *entity.RoleChangeRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *RoleRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RoleChangeRequest, error) {
	var m model.RoleChangeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RoleRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoleChangeRequest, error) {
	var models []*model.RoleChangeRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
