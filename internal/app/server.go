// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"lionscars-service/internal/config"
	"lionscars-service/internal/db"
	authHandler "lionscars-service/internal/handlers/auth"
	lookupHandler "lionscars-service/internal/handlers/lookup"
	mediaHandler "lionscars-service/internal/handlers/media"
	vehicleHandler "lionscars-service/internal/handlers/vehicle"
	wsHandler "lionscars-service/internal/handlers/ws"
	"lionscars-service/internal/middleware"
	"lionscars-service/internal/pkg/jwt"
	"lionscars-service/internal/pkg/session"
	"lionscars-service/internal/repository/postgres"
	authUsecase "lionscars-service/internal/service/auth"
	"lionscars-service/internal/service/catalog"
	"lionscars-service/internal/service/media"
	"lionscars-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisCfg := db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	}
	redisClient, err := db.NewRedisClient(redisCfg)
	if err != nil {
		log.Fatalf("[REDIS] ❌ Failed to connect to Redis: %v", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- JWT Manager -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Session Manager & Rate Limiter -----
	sessionManager := session.NewManager(redisClient)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Repositories -----
	vehicleRepo := postgres.NewVehicleRepository(pool)
	lookupRepo := postgres.NewLookupRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	// ----- Services -----
	authService := authUsecase.NewAuthService(userRepo, jwtManager, sessionManager, rateLimiter, logger)
	catalogService := catalog.NewCatalogService(vehicleRepo, redisClient, hub, logger)
	ingestor := media.NewIngestor(s.cfg.UploadDir, s.cfg.UploadPrefix, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService)
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(catalogService)
	lookupHandlerInst := lookupHandler.NewLookupHandler(lookupRepo)
	uploadHandlerInst := mediaHandler.NewUploadHandler(ingestor, logger)
	wsHandlerInst := wsHandler.NewWSHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(middleware.RecoveryMiddleware(logger))

	// Uploaded vehicle photos are served straight off disk.
	s.engine.Static(s.cfg.UploadPrefix, s.cfg.UploadDir)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		VehicleHandler: vehicleHandlerInst,
		LookupHandler:  lookupHandlerInst,
		UploadHandler:  uploadHandlerInst,
		WSHandler:      wsHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
