package bootstrap

import (
	"context"
	"log"

	"clinical-notes-be/internal/config"
	"clinical-notes-be/internal/controller"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/pkg/mailer"
	resultcache "clinical-notes-be/internal/repository/cache"
	"clinical-notes-be/internal/repository/memory"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/internal/service"
	"clinical-notes-be/pkg/embedding"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/llm/factory"

	pktNats "clinical-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure
	Logger logger.ILogger
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
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory processing status store
	statusRepo := memory.NewStatusRepository()

	// 4. Infrastructure
	// NATS
	var eventPublisher service.IEventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
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
	resultCache := resultcache.NewResultCache(rdb)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedSessionNote, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedSessionNote,
		uowFactory,
		embeddingProvider,
		statusRepo,
		sysLogger,
	)

	sessionService := service.NewSessionService(
		uowFactory,
		llmProvider,
		publisherService,
		eventPublisher,
		embeddingProvider,
		emailService,
		resultCache,
		statusRepo,
		cfg.Alerts,
		sysLogger,
	)

	// Audit trail for risk events; durable so flags raised while the
	// process was down are still recorded on restart.
	if natsSub != nil {
		err := natsSub.Subscribe("events."+events.TypeRiskFlagged, "risk-audit", func(ctx context.Context, evt events.Event) error {
			sysLogger.Warn("risk-audit", "Risk flag raised", evt.Payload())
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to risk events: %v", err)
		}
	}

	// 6. Controllers
	sessionController := controller.NewSessionController(sessionService)

	return &Container{
		SessionController: sessionController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
