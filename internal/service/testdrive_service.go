package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/pkg/mailer"
	"automart-be/internal/realtime"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"

	"automart-be/pkg/events"
	pktNats "automart-be/pkg/nats"

	"github.com/google/uuid"
)

type ITestDriveService interface {
	Create(ctx context.Context, buyerId uuid.UUID, req *dto.CreateTestDriveRequest) (*dto.TestDriveDTO, error)
	Accept(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error)
	Reject(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID, req *dto.RejectTestDriveRequest) (*dto.TestDriveDTO, error)
	Start(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error)
	Complete(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error)
	Cancel(ctx context.Context, userId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error)
	ListForBuyer(ctx context.Context, buyerId uuid.UUID) ([]*dto.TestDriveDTO, error)
	ListForDealer(ctx context.Context, dealerId uuid.UUID) ([]*dto.TestDriveDTO, error)
}

type testDriveService struct {
	uowFactory     unitofwork.RepositoryFactory
	relay          realtime.Publisher
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewTestDriveService(
	uowFactory unitofwork.RepositoryFactory,
	relay realtime.Publisher,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ITestDriveService {
	return &testDriveService{
		uowFactory:     uowFactory,
		relay:          relay,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func toTestDriveDTO(t *entity.TestDrive) *dto.TestDriveDTO {
	return &dto.TestDriveDTO{
		Id:              t.Id,
		CarId:           t.CarId,
		BuyerId:         t.BuyerId,
		DealerId:        t.DealerId,
		ScheduledAt:     t.ScheduledAt,
		Status:          string(t.Status),
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (s *testDriveService) Create(ctx context.Context, buyerId uuid.UUID, req *dto.CreateTestDriveRequest) (*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: req.CarId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.New("car not found")
	}
	if car.Status != entity.CarStatusAvailable {
		return nil, errors.New("car is no longer available")
	}
	if car.DealerId == buyerId {
		return nil, errors.New("cannot request a test drive for your own listing")
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, errors.New("scheduled time must be in the future")
	}

	// One live request per buyer+car at a time.
	for _, status := range []entity.TestDriveStatus{
		entity.TestDriveStatusPending,
		entity.TestDriveStatusAccepted,
		entity.TestDriveStatusInProgress,
	} {
		existing, err := uow.TestDriveRepository().FindOne(ctx,
			specification.ByBuyer{BuyerID: buyerId},
			specification.ByCar{CarID: req.CarId},
			specification.ByStatus{Status: string(status)},
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.New("an active test drive request already exists for this car")
		}
	}

	drive := &entity.TestDrive{
		Id:          uuid.New(),
		CarId:       req.CarId,
		BuyerId:     buyerId,
		DealerId:    car.DealerId,
		Status:      entity.TestDriveStatusPending,
		ScheduledAt: req.ScheduledAt,
		CreatedAt:   time.Now(),
	}

	if err := uow.TestDriveRepository().Create(ctx, drive); err != nil {
		return nil, err
	}

	res := toTestDriveDTO(drive)
	s.relay.Publish(car.DealerId, realtime.EventTestDriveRequest, res)
	s.publishEvent(ctx, events.TypeTestDriveRequested, drive)

	return res, nil
}

func (s *testDriveService) loadOwnedDrive(ctx context.Context, uow unitofwork.UnitOfWork, dealerId, driveId uuid.UUID) (*entity.TestDrive, error) {
	drive, err := uow.TestDriveRepository().FindOne(ctx, specification.ByID{ID: driveId})
	if err != nil {
		return nil, err
	}
	if drive == nil {
		return nil, errors.New("test drive not found")
	}
	if drive.DealerId != dealerId {
		return nil, errors.New("test drive belongs to another dealer")
	}
	return drive, nil
}

// finish persists a transitioned drive and fans out the realtime event,
// email, and bus event to the counter-party.
func (s *testDriveService) finish(ctx context.Context, uow unitofwork.UnitOfWork, drive *entity.TestDrive, notifyUserId uuid.UUID) (*dto.TestDriveDTO, error) {
	now := time.Now()
	drive.UpdatedAt = &now

	if err := uow.TestDriveRepository().Update(ctx, drive); err != nil {
		return nil, err
	}

	res := toTestDriveDTO(drive)
	s.relay.Publish(notifyUserId, realtime.EventTestDriveStatusUpdate, res)
	s.publishEvent(ctx, events.TypeTestDriveStatusMoved, drive)
	s.sendStatusEmail(ctx, uow, drive, notifyUserId)

	return res, nil
}

func (s *testDriveService) publishEvent(ctx context.Context, eventType string, drive *entity.TestDrive) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewEvent(eventType, map[string]interface{}{
		"test_drive_id": drive.Id,
		"car_id":        drive.CarId,
		"buyer_id":      drive.BuyerId,
		"dealer_id":     drive.DealerId,
		"status":        string(drive.Status),
	})
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("TestDriveService", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func (s *testDriveService) sendStatusEmail(ctx context.Context, uow unitofwork.UnitOfWork, drive *entity.TestDrive, userId uuid.UUID) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return
	}
	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: drive.CarId})
	carName := "your car"
	if err == nil && car != nil {
		carName = fmt.Sprintf("%s %s %d", car.Make, car.CarModel, car.Year)
	}

	reason := ""
	if drive.RejectionReason != nil {
		reason = *drive.RejectionReason
	}

	go func() {
		if err := s.emailService.SendTestDriveUpdate(user.Email, carName, string(drive.Status), reason); err != nil {
			s.logger.Warn("TestDriveService", "failed to send status email", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}()
}

func (s *testDriveService) Accept(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drive, err := s.loadOwnedDrive(ctx, uow, dealerId, driveId)
	if err != nil {
		return nil, err
	}
	if err := drive.Accept(); err != nil {
		return nil, err
	}

	return s.finish(ctx, uow, drive, drive.BuyerId)
}

func (s *testDriveService) Reject(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID, req *dto.RejectTestDriveRequest) (*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drive, err := s.loadOwnedDrive(ctx, uow, dealerId, driveId)
	if err != nil {
		return nil, err
	}
	if err := drive.Reject(req.Reason); err != nil {
		return nil, err
	}

	return s.finish(ctx, uow, drive, drive.BuyerId)
}

func (s *testDriveService) Start(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drive, err := s.loadOwnedDrive(ctx, uow, dealerId, driveId)
	if err != nil {
		return nil, err
	}
	if err := drive.Start(); err != nil {
		return nil, err
	}

	if err := uow.CarRepository().SetTestDriving(ctx, drive.CarId, true); err != nil {
		return nil, err
	}

	return s.finish(ctx, uow, drive, drive.BuyerId)
}

func (s *testDriveService) Complete(ctx context.Context, dealerId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drive, err := s.loadOwnedDrive(ctx, uow, dealerId, driveId)
	if err != nil {
		return nil, err
	}
	if err := drive.Complete(); err != nil {
		return nil, err
	}

	if err := uow.CarRepository().SetTestDriving(ctx, drive.CarId, false); err != nil {
		return nil, err
	}

	return s.finish(ctx, uow, drive, drive.BuyerId)
}

// Cancel can be called by either side while the drive is not terminal.
func (s *testDriveService) Cancel(ctx context.Context, userId uuid.UUID, driveId uuid.UUID) (*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drive, err := uow.TestDriveRepository().FindOne(ctx, specification.ByID{ID: driveId})
	if err != nil {
		return nil, err
	}
	if drive == nil {
		return nil, errors.New("test drive not found")
	}
	if drive.BuyerId != userId && drive.DealerId != userId {
		return nil, errors.New("not a participant of this test drive")
	}

	wasInProgress := drive.Status == entity.TestDriveStatusInProgress

	if err := drive.Cancel(); err != nil {
		return nil, err
	}

	// A cancelled drive never leaves the car stuck in test-driving state.
	if wasInProgress {
		if err := uow.CarRepository().SetTestDriving(ctx, drive.CarId, false); err != nil {
			return nil, err
		}
	}

	notify := drive.BuyerId
	if userId == drive.BuyerId {
		notify = drive.DealerId
	}

	return s.finish(ctx, uow, drive, notify)
}

func (s *testDriveService) ListForBuyer(ctx context.Context, buyerId uuid.UUID) ([]*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drives, err := uow.TestDriveRepository().FindAll(ctx,
		specification.ByBuyer{BuyerID: buyerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TestDriveDTO, 0, len(drives))
	for _, d := range drives {
		res = append(res, toTestDriveDTO(d))
	}
	return res, nil
}

func (s *testDriveService) ListForDealer(ctx context.Context, dealerId uuid.UUID) ([]*dto.TestDriveDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drives, err := uow.TestDriveRepository().FindAll(ctx,
		specification.Filter("dealer_id", dealerId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TestDriveDTO, 0, len(drives))
	for _, d := range drives {
		res = append(res, toTestDriveDTO(d))
	}
	return res, nil
}
