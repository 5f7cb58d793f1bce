package bootstrap

import (
	"context"
	"log"
	"time"

	"notevault-be/internal/config"
	"notevault-be/internal/controller"
	"notevault-be/internal/handler"
	"notevault-be/internal/pkg/logger"
	"notevault-be/internal/pkg/mailer"
	"notevault-be/internal/repository/memory"
	"notevault-be/internal/repository/unitofwork"
	"notevault-be/internal/service"
	"notevault-be/internal/websocket"
	pktNats "notevault-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	OAuthController   controller.IOAuthController
	UserController    controller.IUserController
	FolderController  controller.IFolderController
	NoteController    controller.INoteController
	VersionController controller.INoteVersionController
	LockController    controller.ILockController
	TagController     controller.ITagController
	CommentController controller.ICommentController
	StatsController   controller.IStatsController

	// Background services, run by main
	ActivityConsumer service.IActivityConsumerService
	SyncDispatcher   service.ISyncDispatcherService

	// Live sync
	SyncHandler  *handler.SyncHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS, optional; the API works without it
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis for cross-instance sync fan-out
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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/sync.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-memory unlock sessions for password-locked notes
	unlockStore := memory.NewUnlockRepository(time.Duration(cfg.Auth.UnlockTTLMinutes) * time.Minute)

	// Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	activityConsumer := service.NewActivityConsumerService(pubSub, cfg.App.ActivityTopic, uowFactory)
	syncDispatcher := service.NewSyncDispatcherService(pubSub, cfg.App.ActivityTopic, wsHub)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, publisherService)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)

	folderService := service.NewFolderService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory, unlockStore, natsPub, publisherService)
	versionService := service.NewNoteVersionService(uowFactory, unlockStore, publisherService)
	lockService := service.NewLockService(uowFactory, unlockStore)
	tagService := service.NewTagService(uowFactory, publisherService)
	commentService := service.NewCommentService(uowFactory, unlockStore, publisherService)
	statsService := service.NewStatsService(uowFactory)

	syncHandler := handler.NewSyncHandler(wsHub, wsLogger)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		OAuthController:   controller.NewOAuthController(oauthService),
		UserController:    controller.NewUserController(userService),
		FolderController:  controller.NewFolderController(folderService),
		NoteController:    controller.NewNoteController(noteService),
		VersionController: controller.NewNoteVersionController(versionService),
		LockController:    controller.NewLockController(lockService),
		TagController:     controller.NewTagController(tagService),
		CommentController: controller.NewCommentController(commentService),
		StatsController:   controller.NewStatsController(statsService),

		ActivityConsumer: activityConsumer,
		SyncDispatcher:   syncDispatcher,

		SyncHandler:  syncHandler,
		WebSocketHub: wsHub,
	}
}
