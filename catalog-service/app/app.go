// Package app assembles catalog-service: schema bootstrap, repositories,
// services, handlers and the shared echo middleware stack.
package app

import (
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"catalog-services/catalog-service/internal/api"
	"catalog-services/catalog-service/internal/repository"
	"catalog-services/catalog-service/internal/service"
	"catalog-services/catalog-service/migrations"
	"catalog-services/pkg/server"
)

const ServiceName = "catalog-service"

type Options struct {
	DB     *sql.DB
	Driver string

	// Events receives create/delete notifications. Nil disables them.
	Events service.EventPublisher

	RateLimit float64
	RateBurst int
	Logger    zerolog.Logger
}

// New bootstraps the schema on opts.DB and returns a ready echo instance.
func New(opts Options) (*echo.Echo, error) {
	if err := migrations.AutoMigrateUsers(opts.Driver, opts.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate users table: %w", err)
	}
	if err := migrations.AutoMigrateProducts(opts.Driver, opts.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate products table: %w", err)
	}

	events := opts.Events
	if events == nil {
		events = service.NopPublisher{}
	}

	userService := service.NewUserService(repository.NewUserRepository(opts.DB), events, opts.Logger)
	productService := service.NewProductService(repository.NewProductRepository(opts.DB), events, opts.Logger)

	e := server.New(server.Config{
		Service:   ServiceName,
		RateLimit: opts.RateLimit,
		RateBurst: opts.RateBurst,
		Logger:    opts.Logger,
	})
	api.RegisterRoutes(e, api.NewUserHandler(userService), api.NewProductHandler(productService))

	return e, nil
}
