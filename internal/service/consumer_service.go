package service

import (
	"context"
	"encoding/json"
	"log"

	"automart-be/internal/dto"
	"automart-be/internal/repository/specification"
	"automart-be/internal/repository/unitofwork"
	"automart-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pgvector/pgvector-go"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService keeps the vector index in sync with listings. It embeds a
// listing's index text whenever a car is created or updated.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IndexCarMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal index message: %v", err)
		msg.Ack() // invalid payloads would retry forever
		return
	}

	log.Printf("[INFO] Indexing car listing %s", payload.CarId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	car, err := uow.CarRepository().FindOne(ctx, specification.ByID{ID: payload.CarId})
	if err != nil {
		log.Printf("[ERROR] Failed to load car %s: %v", payload.CarId, err)
		msg.Nack()
		return
	}
	if car == nil {
		// Listing deleted before the worker got to it.
		msg.Ack()
		return
	}

	document := car.IndexText()
	res, err := cs.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to embed car %s: %v", payload.CarId, err)
		msg.Nack()
		return
	}

	if err := uow.CarEmbeddingRepository().Upsert(ctx, car.Id, document, pgvector.NewVector(res.Embedding.Values)); err != nil {
		log.Printf("[ERROR] Failed to store embedding for car %s: %v", payload.CarId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Car listing indexed: %s", payload.CarId)
	msg.Ack()
}
