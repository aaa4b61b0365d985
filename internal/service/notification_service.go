package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"automart-be/internal/model"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/realtime"
	"automart-be/internal/repository/contract"
	"automart-be/pkg/events"
	pktNats "automart-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationService turns bus events into durable notification rows and
// best-effort realtime pushes.
type NotificationService struct {
	repo       contract.NotificationRepository
	subscriber *pktNats.Subscriber
	relay      realtime.Publisher
	logger     logger.ILogger
}

func NewNotificationService(repo contract.NotificationRepository, sub *pktNats.Subscriber, relay realtime.Publisher, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		relay:      relay,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	var targetKey, title, message string

	switch event.EventType() {
	case events.TypeTestDriveRequested:
		targetKey = "dealer_id"
		title = "New test drive request"
		message = "A buyer requested a test drive for one of your listings."
	case events.TypeTestDriveStatusMoved:
		targetKey = "buyer_id"
		status, _ := payload["status"].(string)
		title = "Test drive update"
		message = fmt.Sprintf("Your test drive is now %s.", status)
	case events.TypeRoleChangeReviewed:
		targetKey = "user_id"
		status, _ := payload["status"].(string)
		title = "Dealer application reviewed"
		message = fmt.Sprintf("Your dealer application was %s.", status)
	case events.TypeListingPromotionPaid:
		targetKey = "dealer_id"
		title = "Listing promoted"
		message = "Your payment settled and your listing is now featured."
	default:
		// Not every event produces a notification.
		return nil
	}

	target, ok := payloadUUID(payload, targetKey)
	if !ok {
		s.logger.Warn("NotificationService", "event missing target id", map[string]interface{}{
			"type": event.EventType(),
			"key":  targetKey,
		})
		return nil
	}

	meta, _ := json.Marshal(payload)

	notif := &model.Notification{
		ID:        uuid.New(),
		UserID:    target,
		TypeCode:  event.EventType(),
		Title:     title,
		Message:   message,
		Metadata:  datatypes.JSON(meta),
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, notif); err != nil {
		s.logger.Error("NotificationService", "failed to persist notification", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return err
	}

	s.relay.Publish(target, "notification", notif)
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.FindByUser(ctx, userId, limit, offset)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userId)
}

func (s *NotificationService) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userId)
}
