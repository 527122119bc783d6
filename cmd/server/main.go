package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelhub/reelhub-api/internal/api"
	"github.com/reelhub/reelhub-api/internal/core/ports"
	mongodb "github.com/reelhub/reelhub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/reelhub/reelhub-api/internal/infrastructure/db/redis"
	"github.com/reelhub/reelhub-api/internal/infrastructure/media"
	"github.com/reelhub/reelhub-api/internal/pkg/config"
	"github.com/reelhub/reelhub-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Session signing and upload authorization cannot run without their
	// secrets; refuse to start rather than fail per request.
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Process-wide state, initialized exactly once before serving ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// The unique email index must exist before registrations are accepted.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewVideoRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("video index creation failed")
	}

	uploads, err := buildUploadService(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("media provider initialization failed")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		MediaProvider:  cfg.Media.Provider,
		MediaPublicKey: cfg.Media.PublicKey,
		Uploads:        uploads,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// buildUploadService selects the media provider per configuration.
func buildUploadService(ctx context.Context, cfg *config.Config) (ports.UploadService, error) {
	switch cfg.Media.Provider {
	case "s3":
		return media.NewS3Provider(ctx, media.S3Config{
			Region:       cfg.Media.S3Region,
			Bucket:       cfg.Media.S3Bucket,
			AccessKey:    cfg.Media.S3AccessKey,
			SecretKey:    cfg.Media.S3SecretKey,
			BaseEndpoint: cfg.Media.S3Endpoint,
		})
	default:
		return media.NewSignatureProvider(cfg.Media.PrivateKey, 0), nil
	}
}
