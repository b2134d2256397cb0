package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"catalog-services/pkg/logging"
	"catalog-services/pkg/server"
	"catalog-services/web-client-service/internal/api"
	"catalog-services/web-client-service/internal/client"
	"catalog-services/web-client-service/internal/config"
	"catalog-services/web-client-service/internal/view"
)

const serviceName = "web-client-service"

func main() {
	logger := logging.New(serviceName)
	cfg := config.Load()

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load templates")
	}

	catalog := client.NewCatalogClient(cfg.CatalogAPIURL, cfg.Timeout)

	e := server.New(server.Config{
		Service:   serviceName,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Logger:    logger,
	})
	e.Renderer = renderer
	api.RegisterRoutes(e, api.NewPageHandler(catalog))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.Port).Str("catalog_api", cfg.CatalogAPIURL).Msg("Server starting")
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
