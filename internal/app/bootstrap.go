package app

import (
	"backend/internal/app/board"
	"backend/internal/app/health"
	"backend/internal/config"
	"backend/internal/db"
	"backend/internal/db/seeder"
	"backend/internal/gateways/websocket"
	"backend/internal/providers/redis"
	"backend/internal/router"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger, cfg.DefaultBoardTitle)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	boardRepo := board.NewRepository(dbConn)
	boardService := board.NewService(boardRepo, redisProvider, logger)

	hub := websocket.NewHub(logger, eventBus)
	go hub.Run()

	dispatcher := websocket.NewDispatcher(boardService, hub, cfg, logger)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	boardHandler := board.NewHandler(boardService, eventBus, logger)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(dispatcher)
	r.RegisterBoardRoutes(boardHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
