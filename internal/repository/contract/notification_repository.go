package contract

import (
	"context"

	"automart-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository works on the model directly; notifications have no
// richer domain behaviour worth an entity round-trip.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
}
