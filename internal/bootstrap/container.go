package bootstrap

import (
	"context"
	"log"

	"automart-be/internal/config"
	"automart-be/internal/controller"
	"automart-be/internal/handler"
	"automart-be/internal/pkg/logger"
	"automart-be/internal/pkg/mailer"
	"automart-be/internal/realtime"
	"automart-be/internal/repository/implementation"
	"automart-be/internal/repository/memory"
	"automart-be/internal/repository/unitofwork"
	"automart-be/internal/service"
	"automart-be/pkg/blobstore"
	"automart-be/pkg/embedding"
	"automart-be/pkg/genai"

	pktNats "automart-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	UserController        controller.IUserController
	CarController         controller.ICarController
	MessageController     controller.IMessageController
	TestDriveController   controller.ITestDriveController
	RoleRequestController controller.IRoleRequestController
	PromotionController   controller.IPromotionController

	// Background services exposed for main.go to run
	ConsumerService service.IConsumerService

	// WebSockets & Notifications
	RealtimeHandler *handler.RealtimeHandler
	Hub             *realtime.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis backs the cross-instance relay. Unset means single instance.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// Realtime hub
	wsLogger := logger.NewIsolatedLogger("logs/realtime.log")
	registry := realtime.NewPresenceRegistry()
	hub := realtime.NewHub(registry, rdb, wsLogger)
	go hub.Run()

	// AI plumbing
	genaiClient := genai.NewClient(cfg.Keys.GoogleGemini)
	pipeline := genai.NewPipeline(genaiClient)
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)

	blobStore := blobstore.NewCloudinaryStore(
		cfg.Keys.CloudinaryCloud,
		cfg.Keys.CloudinaryKey,
		cfg.Keys.CloudinarySecret,
	)

	stateRepo := memory.NewOAuthStateRepository()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.IndexCarTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IndexCarTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, natsPub, cfg.Auth.AccessTokenMinutes, cfg.Auth.RefreshTokenDays, sysLogger)
	oauthService := service.NewOAuthService(
		uowFactory,
		stateRepo,
		cfg.Auth.GoogleClientID,
		cfg.Auth.GoogleClientSecret,
		cfg.Auth.GoogleRedirectURL,
		cfg.Auth.AccessTokenMinutes,
	)
	userService := service.NewUserService(uowFactory, registry)
	carService := service.NewCarService(uowFactory, pipeline, embeddingProvider, publisherService, sysLogger)
	messageService := service.NewMessageService(uowFactory, hub, blobStore, sysLogger)
	testDriveService := service.NewTestDriveService(uowFactory, hub, emailService, natsPub, sysLogger)
	roleRequestService := service.NewRoleRequestService(uowFactory, emailService, natsPub, sysLogger)
	promotionService := service.NewPromotionService(
		uowFactory,
		natsPub,
		cfg.Payment.MidtransServerKey,
		cfg.Payment.Production,
		cfg.App.ClientURL,
		sysLogger,
	)

	// 3.5 Notifications
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, hub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	realtimeHandler := handler.NewRealtimeHandler(notifService, hub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		UserController:        controller.NewUserController(userService),
		CarController:         controller.NewCarController(carService),
		MessageController:     controller.NewMessageController(messageService),
		TestDriveController:   controller.NewTestDriveController(testDriveService),
		RoleRequestController: controller.NewRoleRequestController(roleRequestService),
		PromotionController:   controller.NewPromotionController(promotionService),

		ConsumerService: consumerService,
		RealtimeHandler: realtimeHandler,
		Hub:             hub,
		Logger:          sysLogger,
	}
}
