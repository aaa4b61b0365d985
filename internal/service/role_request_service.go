package service

import (
	"context"
	"errors"
	"time"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/pkg/mailer"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"

	"automart-be/pkg/events"
	pktNats "automart-be/pkg/nats"

	"github.com/google/uuid"
)

type IRoleRequestService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateRoleRequestRequest) (*dto.RoleRequestDTO, error)
	ListPending(ctx context.Context) ([]*dto.RoleRequestDTO, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.RoleRequestDTO, error)
	Review(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID, req *dto.ReviewRoleRequestRequest) (*dto.RoleRequestDTO, error)
}

type roleRequestService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewRoleRequestService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IRoleRequestService {
	return &roleRequestService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func toRoleRequestDTO(r *entity.RoleChangeRequest) *dto.RoleRequestDTO {
	return &dto.RoleRequestDTO{
		Id:            r.Id,
		UserId:        r.UserId,
		RequestedRole: string(r.RequestedRole),
		Reason:        r.Reason,
		Status:        string(r.Status),
		ReviewedBy:    r.ReviewedBy,
		ReviewNote:    r.ReviewNote,
		CreatedAt:     r.CreatedAt,
	}
}

func (s *roleRequestService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateRoleRequestRequest) (*dto.RoleRequestDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}
	if user.Role != entity.UserRoleBuyer {
		return nil, errors.New("only buyers can apply to become dealers")
	}

	pending, err := uow.RoleRequestRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.RoleRequestStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, errors.New("a pending request already exists")
	}

	request := &entity.RoleChangeRequest{
		Id:            uuid.New(),
		UserId:        userId,
		RequestedRole: entity.UserRoleDealer,
		Reason:        req.Reason,
		Status:        entity.RoleRequestStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := uow.RoleRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewEvent(events.TypeRoleChangeRequested, map[string]interface{}{
			"request_id": request.Id,
			"user_id":    userId,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RoleRequestService", "failed to publish event", map[string]interface{}{
				"type":  events.TypeRoleChangeRequested,
				"error": err.Error(),
			})
		}
	}

	return toRoleRequestDTO(request), nil
}

func (s *roleRequestService) ListPending(ctx context.Context) ([]*dto.RoleRequestDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RoleRequestRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.RoleRequestStatusPending)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoleRequestDTO, 0, len(requests))
	for _, r := range requests {
		res = append(res, toRoleRequestDTO(r))
	}
	return res, nil
}

func (s *roleRequestService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.RoleRequestDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RoleRequestRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoleRequestDTO, 0, len(requests))
	for _, r := range requests {
		res = append(res, toRoleRequestDTO(r))
	}
	return res, nil
}

// Review settles a pending request. Approval promotes the user to dealer
// inside the same transaction.
func (s *roleRequestService) Review(ctx context.Context, adminId uuid.UUID, requestId uuid.UUID, req *dto.ReviewRoleRequestRequest) (*dto.RoleRequestDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RoleRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, errors.New("request not found")
	}
	if request.Status != entity.RoleRequestStatusPending {
		return nil, errors.New("request already reviewed")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: request.UserId})
	if err != nil || user == nil {
		return nil, errors.New("requesting user not found")
	}

	now := time.Now()
	request.ReviewedBy = &adminId
	request.UpdatedAt = &now
	if req.Note != "" {
		note := req.Note
		request.ReviewNote = &note
	}

	if req.Approve {
		request.Status = entity.RoleRequestStatusApproved
	} else {
		request.Status = entity.RoleRequestStatusRejected
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RoleRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if req.Approve {
		user.Role = request.RequestedRole
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewEvent(events.TypeRoleChangeReviewed, map[string]interface{}{
			"request_id": request.Id,
			"user_id":    request.UserId,
			"status":     string(request.Status),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RoleRequestService", "failed to publish event", map[string]interface{}{
				"type":  events.TypeRoleChangeReviewed,
				"error": err.Error(),
			})
		}
	}

	go func() {
		if err := s.emailService.SendRoleChangeDecision(user.Email, string(request.Status), req.Note); err != nil {
			s.logger.Warn("RoleRequestService", "failed to send decision email", map[string]interface{}{
				"user_id": user.Id,
				"error":   err.Error(),
			})
		}
	}()

	return toRoleRequestDTO(request), nil
}
