package unitofwork

import (
	"context"

	"automart-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CarRepository() contract.CarRepository
	MessageRepository() contract.MessageRepository
	TestDriveRepository() contract.TestDriveRepository
	RoleRequestRepository() contract.RoleRequestRepository
	PromotionRepository() contract.PromotionRepository
	CarEmbeddingRepository() contract.CarEmbeddingRepository
}
