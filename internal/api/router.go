package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reelhub/reelhub-api/internal/api/handler"
	"github.com/reelhub/reelhub-api/internal/api/middleware"
	"github.com/reelhub/reelhub-api/internal/core/ports"
	"github.com/reelhub/reelhub-api/internal/core/service"
	mongodb "github.com/reelhub/reelhub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/reelhub/reelhub-api/internal/infrastructure/db/redis"
)

// RouterConfig carries everything NewRouter needs beyond the live connections.
type RouterConfig struct {
	JWTSecret      string
	MediaProvider  string
	MediaPublicKey string
	Uploads        ports.UploadService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The access gate wraps every route; the public allow-list lives in the
// middleware package.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)
	feedCache := redisdb.NewFeedCache(rdb)

	authService := service.NewAuthService(userRepo, log)
	sessionService := service.NewSessionService(cfg.JWTSecret, service.SessionTTL)
	videoService := service.NewVideoService(videoRepo, feedCache, log)

	authHandler := handler.NewAuthHandler(authService, sessionService, log)
	videoHandler := handler.NewVideoHandler(videoService)
	uploadHandler := handler.NewUploadHandler(cfg.Uploads, cfg.MediaProvider, cfg.MediaPublicKey)
	pageHandler := handler.NewPageHandler()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reelhub"))
	e.Use(middleware.Gate(sessionService))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Pages ---
	e.GET("/", pageHandler.Home)
	e.GET("/login", pageHandler.Login)
	e.GET("/register", pageHandler.Register)

	// --- Video API (POST protected by the gate, GET public) ---
	e.GET("/api/videos", videoHandler.List)
	e.POST("/api/videos", videoHandler.Create)

	// --- Upload authorization (protected) ---
	e.GET("/api/upload/auth", uploadHandler.Auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
