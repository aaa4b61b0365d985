package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"time"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"

	"automart-be/pkg/events"
	pktNats "automart-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// promotionPrices maps duration in days to the charge in IDR.
var promotionPrices = map[int]int64{
	7:  70000,
	14: 120000,
	30: 200000,
}

type IPromotionService interface {
	Create(ctx context.Context, dealerId uuid.UUID, req *dto.CreatePromotionRequest) (*dto.PromotionOrderDTO, error)
	ListForDealer(ctx context.Context, dealerId uuid.UUID) ([]*dto.PromotionOrderDTO, error)
	HandleNotification(ctx context.Context, req *dto.MidtransNotification) error
}

type promotionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	serverKey      string
	production     bool
	clientURL      string
	logger         logger.ILogger
}

func NewPromotionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	serverKey string,
	production bool,
	clientURL string,
	log logger.ILogger,
) IPromotionService {
	return &promotionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		serverKey:      serverKey,
		production:     production,
		clientURL:      clientURL,
		logger:         log,
	}
}

func toPromotionDTO(o *entity.PromotionOrder) *dto.PromotionOrderDTO {
	return &dto.PromotionOrderDTO{
		Id:              o.Id,
		CarId:           o.CarId,
		OrderId:         o.OrderId,
		Amount:          o.Amount,
		DurationDays:    o.DurationDays,
		Status:          string(o.Status),
		SnapToken:       o.SnapToken,
		SnapRedirectURL: o.SnapRedirectURL,
		CreatedAt:       o.CreatedAt,
		PaidAt:          o.PaidAt,
	}
}

func (s *promotionService) Create(ctx context.Context, dealerId uuid.UUID, req *dto.CreatePromotionRequest) (*dto.PromotionOrderDTO, error) {
	amount, ok := promotionPrices[req.DurationDays]
	if !ok {
		return nil, errors.New("unsupported promotion duration")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: req.CarId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.New("car not found")
	}
	if car.DealerId != dealerId {
		return nil, errors.New("car belongs to another dealer")
	}

	dealer, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: dealerId})
	if err != nil || dealer == nil {
		return nil, errors.New("dealer not found")
	}

	order := &entity.PromotionOrder{
		Id:           uuid.New(),
		CarId:        car.Id,
		DealerId:     dealerId,
		Amount:       amount,
		DurationDays: req.DurationDays,
		Status:       entity.PromotionStatusPending,
		CreatedAt:    time.Now(),
	}
	order.OrderId = fmt.Sprintf("PROMO-%s", order.Id)

	if err := uow.PromotionRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.production {
		env = midtrans.Production
	}
	sClient.New(s.serverKey, env)

	phone := ""
	if dealer.Phone != nil {
		phone = *dealer.Phone
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderId,
			GrossAmt: amount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/dealer/listings?promotion=success", s.clientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: dealer.FullName,
			Email: dealer.Email,
			Phone: phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    car.Id.String(),
				Price: amount,
				Qty:   1,
				Name:  fmt.Sprintf("Featured listing %dd: %s %s", req.DurationDays, car.Make, car.CarModel),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	order.SnapToken = snapResp.Token
	order.SnapRedirectURL = snapResp.RedirectURL
	if err := uow.PromotionRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	return toPromotionDTO(order), nil
}

func (s *promotionService) ListForDealer(ctx context.Context, dealerId uuid.UUID) ([]*dto.PromotionOrderDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	orders, err := uow.PromotionRepository().FindAll(ctx,
		specification.Filter("dealer_id", dealerId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PromotionOrderDTO, 0, len(orders))
	for _, o := range orders {
		res = append(res, toPromotionDTO(o))
	}
	return res, nil
}

// HandleNotification verifies the gateway signature and settles the order.
// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key).
func (s *promotionService) HandleNotification(ctx context.Context, req *dto.MidtransNotification) error {
	if s.serverKey == "" {
		return errors.New("server configuration error")
	}

	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("PromotionService", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return errors.New("invalid signature")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.PromotionRepository().FindOne(ctx, specification.Filter("order_id", req.OrderId))
	if err != nil {
		return err
	}
	if order == nil {
		return errors.New("promotion order not found")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" {
			return nil
		}
		if order.Status == entity.PromotionStatusPaid {
			return nil
		}

		now := time.Now()
		order.Status = entity.PromotionStatusPaid
		order.PaidAt = &now
		until := now.AddDate(0, 0, order.DurationDays)

		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer uow.Rollback()

		if err := uow.PromotionRepository().Update(ctx, order); err != nil {
			return err
		}
		if err := uow.CarRepository().SetFeatured(ctx, order.CarId, until); err != nil {
			return err
		}
		if err := uow.Commit(); err != nil {
			return err
		}

		if s.eventPublisher != nil {
			evt := events.NewEvent(events.TypeListingPromotionPaid, map[string]interface{}{
				"order_id":  order.OrderId,
				"car_id":    order.CarId,
				"dealer_id": order.DealerId,
				"until":     until,
			})
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.logger.Warn("PromotionService", "failed to publish event", map[string]interface{}{
					"type":  events.TypeListingPromotionPaid,
					"error": err.Error(),
				})
			}
		}

	case "deny", "cancel", "failure":
		order.Status = entity.PromotionStatusCancelled
		return uow.PromotionRepository().Update(ctx, order)

	case "expire":
		order.Status = entity.PromotionStatusExpired
		return uow.PromotionRepository().Update(ctx, order)
	}

	return nil
}
