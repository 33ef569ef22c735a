package bootstrap

import (
	"context"
	"log"

	"ai-training-be/internal/config"
	"ai-training-be/internal/controller"
	"ai-training-be/internal/handler"
	"ai-training-be/internal/pkg/logger"
	"ai-training-be/internal/pkg/mailer"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/repository/implementation"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/internal/service"
	"ai-training-be/internal/websocket"
	"ai-training-be/pkg/embedding"
	"ai-training-be/pkg/scoring"
	"ai-training-be/pkg/storage"
	"ai-training-be/pkg/voice"

	pktNats "ai-training-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	SessionController   controller.ISessionController
	WebhookController   controller.IWebhookController
	ScenarioController  controller.IScenarioController
	KnowledgeController controller.IKnowledgeController
	ProgressController  controller.IProgressController
	VoiceController     controller.IVoiceController
	SettingsController  controller.ISettingsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	authMiddleware := serverutils.NewAuthMiddleware(cfg.App.JWTSecret, cfg.App.AllowDemoUser)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	scorer := scoring.NewScorer(cfg.Keys.GoogleGemini)

	// Voice provider
	voiceClient := voice.NewClient(cfg.Voice.BaseURL, cfg.Voice.APIKey)

	// Recording storage
	var objectStore storage.ObjectStore
	s3Client, err := storage.NewS3Client(
		context.Background(),
		cfg.Storage.AwsAccessKey,
		cfg.Storage.AwsSecretKey,
		cfg.Storage.AwsRegion,
		cfg.Storage.Bucket,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize object storage: %v", err)
	} else {
		objectStore = s3Client
	}

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.GenerateQuestions, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.GenerateQuestions,
		uowFactory,
		embeddingProvider,
		scorer,
	)

	authService := service.NewAuthService(uowFactory, emailService, cfg.App.JWTSecret, cfg.App.ClientURL)
	oauthService := service.NewOAuthService(
		uowFactory,
		cfg.Keys.GoogleOAuthID,
		cfg.Keys.GoogleOAuthSecret,
		cfg.App.BaseURL+"/api/auth/v1/oauth/google/callback",
		cfg.App.JWTSecret,
	)
	sessionService := service.NewSessionService(uowFactory, voiceClient, objectStore, natsPub)
	assessmentService := service.NewAssessmentService(
		uowFactory,
		voiceClient,
		scorer,
		natsPub,
		cfg.Assessment.TranscriptRetries,
		cfg.Assessment.TimeoutSeconds,
	)
	webhookService := service.NewWebhookService(uowFactory, objectStore, natsPub)
	scenarioService := service.NewScenarioService(uowFactory, emailService, natsPub)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, embeddingProvider)
	progressService := service.NewProgressService(uowFactory, natsPub)
	voiceService := service.NewVoiceService(voiceClient, cfg.Voice.DefaultAgentID, cfg.Voice.DefaultVoiceID)
	settingsService := service.NewSettingsService(uowFactory)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, uowFactory, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, authMiddleware, cfg.App.JWTSecret, wsLogger)

	sysLogger.Info("bootstrap", "Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"storage":     objectStore != nil,
		"nats":        natsPub != nil,
	})

	// 6. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:      controller.NewAuthController(authService, authMiddleware),
		OAuthController:     controller.NewOAuthController(oauthService, cfg.App.ClientURL),
		SessionController:   controller.NewSessionController(sessionService, assessmentService, authMiddleware),
		WebhookController:   controller.NewWebhookController(webhookService),
		ScenarioController:  controller.NewScenarioController(scenarioService, authMiddleware),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService, authMiddleware),
		ProgressController:  controller.NewProgressController(progressService, authMiddleware),
		VoiceController:     controller.NewVoiceController(voiceService, authMiddleware),
		SettingsController:  controller.NewSettingsController(settingsService, authMiddleware),

		ConsumerService: consumerService,
	}
}
