package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/api"
	"github.com/inovaindustria/industria-api/internal/infrastructure/config"
	mongostore "github.com/inovaindustria/industria-api/internal/infrastructure/db/mongo"
	redisstore "github.com/inovaindustria/industria-api/internal/infrastructure/db/redis"
	"github.com/inovaindustria/industria-api/internal/infrastructure/queue"
	"github.com/inovaindustria/industria-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Inova Industria API
// @version      1.0
// @description  REST backend for managing companies, clients, projects and activities.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Auth.UsingDefaultSecret() {
		lg.Warn().Msg("JWT_SECRET is the development default, set a real secret before exposing this service")
	}

	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer disconnectCancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	auditRepo := mongostore.NewAuditRepository(db)
	audit := queue.NewDispatcher(0, auditRepo, lg)
	audit.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, lg, audit)

	go func() {
		lg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			lg.Info().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(lg)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func waitForShutdown(lg zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	lg.Info().Str("signal", sig.String()).Msg("shutting down")
}
