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

type TestDriveRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TestDriveMapper
}

func NewTestDriveRepository(db *gorm.DB) contract.TestDriveRepository {
	return &TestDriveRepositoryImpl{
		db:     db,
		mapper: mapper.NewTestDriveMapper(),
	}
}

func (r *TestDriveRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TestDriveRepositoryImpl) Create(ctx context.Context, drive *entity.TestDrive) error {
	m := r.mapper.ToModel(drive)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*drive = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestDriveRepositoryImpl) Update(ctx context.Context, drive *entity.TestDrive) error {
	m := r.mapper.ToModel(drive)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*drive = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestDriveRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TestDrive, error) {
	var m model.TestDrive
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TestDriveRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TestDrive, error) {
	var models []*model.TestDrive
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TestDriveRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TestDrive{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
