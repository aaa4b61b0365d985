package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"automart-be/internal/dto"
	"automart-be/internal/entity"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"
	"automart-be/pkg/embedding"
	"automart-be/pkg/genai"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

const maxGenerateImages = 10

// ErrTooManyImages rejects a generation request before any upstream call.
var ErrTooManyImages = errors.New("too many images")

type ICarService interface {
	Create(ctx context.Context, dealerId uuid.UUID, req *dto.CreateCarRequest) (*dto.CarDTO, error)
	Update(ctx context.Context, dealerId uuid.UUID, carId uuid.UUID, req *dto.UpdateCarRequest) (*dto.CarDTO, error)
	Delete(ctx context.Context, dealerId uuid.UUID, carId uuid.UUID) error
	GetById(ctx context.Context, carId uuid.UUID) (*dto.CarDTO, error)
	List(ctx context.Context, query *dto.ListCarsQuery) ([]*dto.CarDTO, int64, error)
	GenerateListing(ctx context.Context, images []genai.Image) (*dto.GenerateListingResponse, error)
	FindSimilar(ctx context.Context, carId uuid.UUID, limit int) ([]*dto.SimilarCarDTO, error)
}

type carService struct {
	uowFactory        unitofwork.RepositoryFactory
	pipeline          *genai.Pipeline
	embeddingProvider embedding.EmbeddingProvider
	publisherService  IPublisherService
	logger            logger.ILogger
}

func NewCarService(
	uowFactory unitofwork.RepositoryFactory,
	pipeline *genai.Pipeline,
	embeddingProvider embedding.EmbeddingProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) ICarService {
	return &carService{
		uowFactory:        uowFactory,
		pipeline:          pipeline,
		embeddingProvider: embeddingProvider,
		publisherService:  publisherService,
		logger:            log,
	}
}

func toCarDTO(car *entity.Car) *dto.CarDTO {
	return &dto.CarDTO{
		Id:            car.Id,
		DealerId:      car.DealerId,
		Make:          car.Make,
		Model:         car.CarModel,
		Year:          int64(car.Year),
		Price:         car.Price,
		Mileage:       car.Mileage,
		FuelType:      car.FuelType,
		Transmission:  car.Transmission,
		BodyType:      car.BodyType,
		Color:         car.Color,
		Condition:     car.Condition,
		Description:   car.Description,
		Images:        car.Images,
		Status:        string(car.Status),
		IsTestDriving: car.IsTestDriving,
		IsFeatured:    car.IsFeatured,
		FeaturedUntil: car.FeaturedUntil,
		CreatedAt:     car.CreatedAt,
	}
}

func (s *carService) requestIndexing(ctx context.Context, carId uuid.UUID) {
	payload, err := json.Marshal(dto.IndexCarMessage{CarId: carId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("CarService", "failed to publish index message", map[string]interface{}{
			"car_id": carId,
			"error":  err.Error(),
		})
	}
}

func (s *carService) Create(ctx context.Context, dealerId uuid.UUID, req *dto.CreateCarRequest) (*dto.CarDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car := &entity.Car{
		Id:           uuid.New(),
		DealerId:     dealerId,
		Make:         req.Make,
		CarModel:     req.Model,
		Year:         int(req.Year),
		Price:        req.Price,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		BodyType:     req.BodyType,
		Color:        req.Color,
		Condition:    req.Condition,
		Description:  req.Description,
		Images:       req.Images,
		Status:       entity.CarStatusAvailable,
		CreatedAt:    time.Now(),
	}

	if err := uow.CarRepository().Create(ctx, car); err != nil {
		return nil, err
	}

	s.requestIndexing(ctx, car.Id)

	return toCarDTO(car), nil
}

func (s *carService) Update(ctx context.Context, dealerId uuid.UUID, carId uuid.UUID, req *dto.UpdateCarRequest) (*dto.CarDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: carId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.New("car not found")
	}
	if car.DealerId != dealerId {
		return nil, errors.New("car belongs to another dealer")
	}

	if req.Make != nil {
		car.Make = *req.Make
	}
	if req.Model != nil {
		car.CarModel = *req.Model
	}
	if req.Year != nil {
		car.Year = int(*req.Year)
	}
	if req.Price != nil {
		car.Price = *req.Price
	}
	if req.Mileage != nil {
		car.Mileage = *req.Mileage
	}
	if req.FuelType != nil {
		car.FuelType = *req.FuelType
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
	}
	if req.BodyType != nil {
		car.BodyType = *req.BodyType
	}
	if req.Color != nil {
		car.Color = *req.Color
	}
	if req.Condition != nil {
		car.Condition = *req.Condition
	}
	if req.Description != nil {
		car.Description = *req.Description
	}
	if req.Images != nil {
		car.Images = req.Images
	}
	if req.Status != nil {
		switch entity.CarStatus(*req.Status) {
		case entity.CarStatusAvailable, entity.CarStatusSold:
			car.Status = entity.CarStatus(*req.Status)
		default:
			return nil, fmt.Errorf("invalid status: %s", *req.Status)
		}
	}

	if err := uow.CarRepository().Update(ctx, car); err != nil {
		return nil, err
	}

	s.requestIndexing(ctx, car.Id)

	return toCarDTO(car), nil
}

func (s *carService) Delete(ctx context.Context, dealerId uuid.UUID, carId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: carId})
	if err != nil {
		return err
	}
	if car == nil {
		return errors.New("car not found")
	}
	if car.DealerId != dealerId {
		return errors.New("car belongs to another dealer")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.CarRepository().Delete(ctx, carId); err != nil {
		return err
	}
	if err := uow.CarEmbeddingRepository().DeleteByCarId(ctx, carId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *carService) GetById(ctx context.Context, carId uuid.UUID) (*dto.CarDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: carId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.New("car not found")
	}

	return toCarDTO(car), nil
}

func (s *carService) List(ctx context.Context, query *dto.ListCarsQuery) ([]*dto.CarDTO, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if query.Make != "" || query.Model != "" {
		specs = append(specs, specification.ByMakeModel{Make: query.Make, CarModel: query.Model})
	}
	if query.MinPrice > 0 || query.MaxPrice > 0 {
		specs = append(specs, specification.PriceBetween{Min: query.MinPrice, Max: query.MaxPrice})
	}
	if query.MinYear > 0 || query.MaxYear > 0 {
		specs = append(specs, specification.YearBetween{Min: int(query.MinYear), Max: int(query.MaxYear)})
	}
	if query.DealerId != "" {
		dealerId, err := uuid.Parse(query.DealerId)
		if err != nil {
			return nil, 0, errors.New("invalid dealer_id")
		}
		specs = append(specs, specification.ByDealer{DealerID: dealerId})
	}

	total, err := uow.CarRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	specs = append(specs, specification.FeaturedFirst{})
	specs = append(specs, specification.Pagination{Limit: limit, Offset: (page - 1) * limit})

	cars, err := uow.CarRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, err
	}

	res := make([]*dto.CarDTO, 0, len(cars))
	for _, car := range cars {
		res = append(res, toCarDTO(car))
	}
	return res, total, nil
}

// GenerateListing runs the two-stage image audit and, when the photos pass,
// returns a pre-filled listing draft the dealer can adjust before saving.
func (s *carService) GenerateListing(ctx context.Context, images []genai.Image) (*dto.GenerateListingResponse, error) {
	if len(images) == 0 {
		return nil, errors.New("at least one image is required")
	}
	if len(images) > maxGenerateImages {
		return nil, fmt.Errorf("%w: max %d", ErrTooManyImages, maxGenerateImages)
	}

	result, err := s.pipeline.Run(ctx, images)
	if err != nil {
		return nil, err
	}

	res := &dto.GenerateListingResponse{
		IsValid:         result.Validation.IsValid,
		ConfidenceScore: result.Validation.ConfidenceScore,
		Inconsistencies: result.Validation.Inconsistencies,
		FraudIndicators: result.Validation.FraudIndicators,
		Checks: map[string]bool{
			"same_vehicle": result.Validation.ConsistencyChecks.SameVehicle,
			"real_photos":  result.Validation.ConsistencyChecks.RealPhotos,
			"no_editing":   result.Validation.ConsistencyChecks.NoEditing,
		},
	}

	if result.Attributes != nil {
		res.Draft = &dto.CreateCarRequest{
			Make:         result.Attributes.Make,
			Model:        result.Attributes.CarModel,
			Year:         int64(result.Attributes.Year),
			Price:        int64(result.Attributes.Price),
			Mileage:      int64(result.Attributes.Mileage),
			FuelType:     result.Attributes.FuelType,
			Transmission: result.Attributes.Transmission,
			BodyType:     result.Attributes.BodyType,
			Color:        result.Attributes.Color,
			Condition:    result.Attributes.Condition,
			Description:  result.Attributes.Description,
		}
	}

	return res, nil
}

func (s *carService) FindSimilar(ctx context.Context, carId uuid.UUID, limit int) ([]*dto.SimilarCarDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: carId})
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.New("car not found")
	}

	embRes, err := s.embeddingProvider.Generate(car.IndexText(), "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	if limit < 1 || limit > 20 {
		limit = 5
	}

	hits, err := uow.CarEmbeddingRepository().SearchSimilar(ctx, carId, pgvector.NewVector(embRes.Embedding.Values), limit)
	if err != nil {
		return nil, err
	}

	if len(hits) == 0 {
		return []*dto.SimilarCarDTO{}, nil
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.CarId)
	}
	cars, err := uow.CarRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]*entity.Car, len(cars))
	for _, c := range cars {
		byId[c.Id] = c
	}

	res := make([]*dto.SimilarCarDTO, 0, len(hits))
	for _, hit := range hits {
		c, ok := byId[hit.CarId]
		if !ok {
			continue
		}
		res = append(res, &dto.SimilarCarDTO{
			Car:      *toCarDTO(c),
			Distance: hit.Distance,
		})
	}
	return res, nil
}
