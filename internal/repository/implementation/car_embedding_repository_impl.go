package implementation

import (
	"context"

	"automart-be/internal/model"
	"automart-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CarEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewCarEmbeddingRepository(db *gorm.DB) contract.CarEmbeddingRepository {
	return &CarEmbeddingRepositoryImpl{db: db}
}

func (r *CarEmbeddingRepositoryImpl) Upsert(ctx context.Context, carId uuid.UUID, document string, embedding pgvector.Vector) error {
	m := &model.CarEmbedding{
		Id:             uuid.New(),
		CarId:          carId,
		Document:       document,
		EmbeddingValue: embedding,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "car_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "updated_at"}),
		}).
		Create(m).Error
}

func (r *CarEmbeddingRepositoryImpl) DeleteByCarId(ctx context.Context, carId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("car_id = ?", carId).Delete(&model.CarEmbedding{}).Error
}

func (r *CarEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, carId uuid.UUID, embedding pgvector.Vector, limit int) ([]contract.SimilarCar, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance: embedding_value <=> query. Join cars to exclude
	// soft-deleted and sold listings.
	type result struct {
		CarId    uuid.UUID
		Distance float64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Table("car_embeddings").
		Select("car_embeddings.car_id, embedding_value <=> ? as distance", embedding).
		Joins("JOIN cars ON cars.id = car_embeddings.car_id").
		Where("car_embeddings.car_id <> ?", carId).
		Where("cars.deleted_at IS NULL").
		Where("cars.status = 'available'").
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	similar := make([]contract.SimilarCar, len(results))
	for i, res := range results {
		similar[i] = contract.SimilarCar{CarId: res.CarId, Distance: res.Distance}
	}
	return similar, nil
}
