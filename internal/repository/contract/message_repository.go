package contract

import (
	"context"

	"automart-be/internal/entity"
	"automart-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MarkConversationRead flips the read flag on every message sent by
	// otherId to readerId.
	MarkConversationRead(ctx context.Context, readerId, otherId uuid.UUID) error
}
