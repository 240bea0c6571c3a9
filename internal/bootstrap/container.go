package bootstrap

import (
	"context"
	"log"

	"notemark-be/internal/config"
	"notemark-be/internal/controller"
	"notemark-be/internal/pkg/logger"
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/repository/unitofwork"
	"notemark-be/internal/service"
	"notemark-be/pkg/grammar"
	"notemark-be/pkg/llm/gemini"
	"notemark-be/pkg/markdown"

	pktNats "notemark-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	NoteController          controller.INoteController
	FolderController        controller.IFolderController
	TagController           controller.ITagController
	HistoryController       controller.IHistoryController
	GrammarController       controller.IGrammarController
	RenderController        controller.IRenderController
	SummarizationController controller.ISummarizationController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional; the app degrades to no domain events when absent.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis is optional; summaries are recomputed on every request without it.
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// Domain adapters
	grammarChecker := grammar.NewLanguageToolChecker(
		cfg.Grammar.BaseURL,
		cfg.Grammar.Language,
		cfg.Grammar.Timeout,
	)
	llmProvider := gemini.NewGeminiProvider(
		cfg.Ai.GeminiAPIKey,
		cfg.Ai.GeminiModel,
		cfg.Ai.SummaryTimeout,
	)
	renderer := markdown.NewRenderer()
	renderCache := cache.New(cache.NoExpiration, 0)

	// Services
	publisherService := service.NewPublisherService(cfg.App.RenderTopic, pubSub)
	historyService := service.NewHistoryService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	noteService := service.NewNoteService(uowFactory, historyService, publisherService, natsPub)
	folderService := service.NewFolderService(uowFactory)
	tagService := service.NewTagService(uowFactory)
	grammarService := service.NewGrammarService(uowFactory, grammarChecker)
	issueService := service.NewIssueService(uowFactory, natsPub)
	renderService := service.NewRenderService(uowFactory, renderer, renderCache)
	summarizationService := service.NewSummarizationService(uowFactory, llmProvider, rdb, cfg.Ai.SummaryCacheTTL)

	consumerService := service.NewConsumerService(pubSub, cfg.App.RenderTopic, renderService, sysLogger)

	jwtGuard := serverutils.JwtMiddleware(cfg.Auth.JwtSecret)

	return &Container{
		AuthController:          controller.NewAuthController(authService),
		NoteController:          controller.NewNoteController(noteService, jwtGuard),
		FolderController:        controller.NewFolderController(folderService, jwtGuard),
		TagController:           controller.NewTagController(tagService, jwtGuard),
		HistoryController:       controller.NewHistoryController(historyService, issueService, jwtGuard),
		GrammarController:       controller.NewGrammarController(grammarService, issueService, jwtGuard),
		RenderController:        controller.NewRenderController(renderService, jwtGuard),
		SummarizationController: controller.NewSummarizationController(summarizationService, jwtGuard),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
