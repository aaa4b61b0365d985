package service

import (
	"context"
	"errors"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/realtime"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	GetPublicProfile(ctx context.Context, userId uuid.UUID) (*dto.PublicProfileDTO, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	GetOnlineUsers(ctx context.Context) (*dto.OnlineUsersDTO, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	registry   *realtime.PresenceRegistry
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, registry *realtime.PresenceRegistry) IUserService {
	return &userService{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

func toUserDTO(user *entity.User) *dto.UserDTO {
	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}
	return &dto.UserDTO{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
		Phone:    phone,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return toUserDTO(user), nil
}

func (s *userService) GetPublicProfile(ctx context.Context, userId uuid.UUID) (*dto.PublicProfileDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	public := user.Public()
	return &dto.PublicProfileDTO{
		Id:       public.Id,
		FullName: public.FullName,
		Role:     string(public.Role),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return toUserDTO(user), nil
}

func (s *userService) GetOnlineUsers(ctx context.Context) (*dto.OnlineUsersDTO, error) {
	return &dto.OnlineUsersDTO{UserIds: s.registry.OnlineUserIDs()}, nil
}
