package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/docuvault/docqa-api/internal/api"
	"github.com/docuvault/docqa-api/internal/core/service"
	"github.com/docuvault/docqa-api/internal/infrastructure/db/postgres"
	"github.com/docuvault/docqa-api/internal/infrastructure/db/redis"
	"github.com/docuvault/docqa-api/internal/infrastructure/queue"
	"github.com/docuvault/docqa-api/internal/infrastructure/storage"
	"github.com/docuvault/docqa-api/internal/pkg/config"
	"github.com/docuvault/docqa-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: time.Duration(cfg.Redis.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise file store")
	}

	// --- Services ---
	userRepo := postgres.NewUserRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	taskStore := redis.NewTaskStore(rdb)

	authService, err := service.NewAuthService(
		userRepo, cfg.JWT.Secret, cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.TTLMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise auth service")
	}
	userService := service.NewUserService(userRepo, log)
	documentService := service.NewDocumentService(documentRepo, files, log)
	ingestionService := service.NewIngestionService(
		documentRepo, taskStore,
		time.Duration(cfg.Ingest.SimulatedDelay)*time.Second,
		log,
	)
	qaService := service.NewQAService(log)

	dispatcher := queue.NewDispatcher(cfg.Ingest.Workers, ingestionService, log)
	ingestionService.SetQueue(dispatcher)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		Auth:      authService,
		Users:     userService,
		Documents: documentService,
		Ingestion: ingestionService,
		QA:        qaService,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
