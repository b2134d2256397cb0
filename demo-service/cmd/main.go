package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"catalog-services/demo-service/internal/api"
	"catalog-services/demo-service/internal/config"
	"catalog-services/demo-service/internal/repository"
	"catalog-services/pkg/logging"
	"catalog-services/pkg/server"
)

const serviceName = "demo-service"

func main() {
	logger := logging.New(serviceName)
	cfg := config.Load()

	var items repository.ItemRepository
	switch cfg.ItemsBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to redis")
		}
		items = repository.NewRedisItemRepository(rdb)
	case config.BackendMemory:
		items = repository.NewMemoryItemRepository()
	default:
		logger.Fatal().Str("backend", cfg.ItemsBackend).Msg("Unknown items backend")
	}
	logger.Info().Str("backend", cfg.ItemsBackend).Msg("Item repository ready")

	e := server.New(server.Config{
		Service:   serviceName,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		CORS:      true,
		Logger:    logger,
	})
	api.RegisterRoutes(e, api.NewItemHandler(items))

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
