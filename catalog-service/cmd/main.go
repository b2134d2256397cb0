package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"catalog-services/catalog-service/app"
	"catalog-services/catalog-service/internal/config"
	"catalog-services/catalog-service/internal/service"
	"catalog-services/pkg/logging"
)

func main() {
	logger := logging.New(app.ServiceName)
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("Failed to connect to database")
	}
	defer db.Close()
	logger.Info().Str("driver", cfg.DBDriver).Msg("Connected to database")

	var events service.EventPublisher
	if writer := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic, logger); writer != nil {
		publisher := service.NewKafkaPublisher(writer)
		defer publisher.Close()
		events = publisher
		logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("Publishing catalog events")
	}

	e, err := app.New(app.Options{
		DB:        db,
		Driver:    cfg.DBDriver,
		Events:    events,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server failed")
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
}
