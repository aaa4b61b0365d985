package service

import (
	"context"
	"errors"
	"time"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/realtime"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"
	"automart-be/pkg/blobstore"

	"github.com/google/uuid"
)

type IMessageService interface {
	Send(ctx context.Context, senderId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageDTO, error)
	GetConversation(ctx context.Context, userId uuid.UUID, query *dto.ConversationQuery) ([]*dto.MessageDTO, error)
	Delete(ctx context.Context, userId uuid.UUID, messageId uuid.UUID) error
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	relay      realtime.Publisher
	blobStore  blobstore.BlobStore
	logger     logger.ILogger
}

func NewMessageService(
	uowFactory unitofwork.RepositoryFactory,
	relay realtime.Publisher,
	blobStore blobstore.BlobStore,
	log logger.ILogger,
) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		relay:      relay,
		blobStore:  blobStore,
		logger:     log,
	}
}

func toMessageDTO(msg *entity.Message, sender entity.PublicProfile) *dto.MessageDTO {
	return &dto.MessageDTO{
		Id:        msg.Id,
		SenderId:  msg.SenderId,
		Receiver:  msg.ReceiverId,
		Text:      msg.Text,
		ImageURL:  msg.ImageURL,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
		Sender: dto.PublicProfileDTO{
			Id:       sender.Id,
			FullName: sender.FullName,
			Role:     string(sender.Role),
		},
	}
}

func (s *messageService) Send(ctx context.Context, senderId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageDTO, error) {
	if senderId == req.ReceiverId {
		return nil, errors.New("cannot message yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sender, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: senderId})
	if err != nil || sender == nil {
		return nil, errors.New("sender not found")
	}
	receiver, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.ReceiverId})
	if err != nil || receiver == nil {
		return nil, errors.New("receiver not found")
	}

	msg := &entity.Message{
		Id:           uuid.New(),
		SenderId:     senderId,
		ReceiverId:   req.ReceiverId,
		Text:         req.Text,
		ImageURL:     req.ImageURL,
		ImageAssetId: req.ImageAssetId,
		IsRead:       false,
		CreatedAt:    time.Now(),
	}

	if !msg.HasContent() {
		return nil, errors.New("message needs text or an image")
	}

	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	res := toMessageDTO(msg, sender.Public())

	// Best-effort push to the receiver, dropped silently when offline.
	s.relay.Publish(req.ReceiverId, realtime.EventNewMessage, res)

	return res, nil
}

func (s *messageService) GetConversation(ctx context.Context, userId uuid.UUID, query *dto.ConversationQuery) ([]*dto.MessageDTO, error) {
	otherId, err := uuid.Parse(query.WithUserId)
	if err != nil {
		return nil, errors.New("invalid conversation partner id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	other, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: otherId})
	if err != nil || other == nil {
		return nil, errors.New("user not found")
	}
	me, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || me == nil {
		return nil, errors.New("user not found")
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 50
	}

	msgs, err := uow.MessageRepository().FindAll(ctx,
		specification.Conversation{UserA: userId, UserB: otherId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	// Opening the conversation implies reading everything the other side sent.
	if err := uow.MessageRepository().MarkConversationRead(ctx, userId, otherId); err != nil {
		s.logger.Warn("MessageService", "failed to mark conversation read", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	profiles := map[uuid.UUID]entity.PublicProfile{
		userId:  me.Public(),
		otherId: other.Public(),
	}

	res := make([]*dto.MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		res = append(res, toMessageDTO(msg, profiles[msg.SenderId]))
	}
	return res, nil
}

// Delete removes a message the caller sent. The counter-party gets a relay
// event, and any attached image asset is destroyed in the background.
func (s *messageService) Delete(ctx context.Context, userId uuid.UUID, messageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil {
		return err
	}
	if msg == nil {
		return errors.New("message not found")
	}
	if msg.SenderId != userId {
		return errors.New("only the sender can delete a message")
	}

	if err := uow.MessageRepository().Delete(ctx, messageId); err != nil {
		return err
	}

	s.relay.Publish(msg.ReceiverId, realtime.EventMessageDeleted, dto.DeleteMessageResponse{Id: messageId})

	if msg.ImageAssetId != nil && *msg.ImageAssetId != "" {
		assetId := *msg.ImageAssetId
		go func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.blobStore.Destroy(cleanupCtx, assetId); err != nil {
				s.logger.Warn("MessageService", "failed to destroy message asset", map[string]interface{}{
					"asset_id": assetId,
					"error":    err.Error(),
				})
			}
		}()
	}

	return nil
}
