package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// SimilarCar is one hit from a vector similarity search.
type SimilarCar struct {
	CarId    uuid.UUID
	Distance float64
}

type CarEmbeddingRepository interface {
	// Upsert replaces the embedding row for a car.
	Upsert(ctx context.Context, carId uuid.UUID, document string, embedding pgvector.Vector) error
	DeleteByCarId(ctx context.Context, carId uuid.UUID) error
	// SearchSimilar returns the nearest listings by cosine distance,
	// excluding the car itself.
	SearchSimilar(ctx context.Context, carId uuid.UUID, embedding pgvector.Vector, limit int) ([]SimilarCar, error)
}
