package service

import (
	"context"

	"github.com/rs/zerolog"

	"catalog-services/catalog-service/internal/entity"
	"catalog-services/catalog-service/internal/repository"
)

type ProductService struct {
	productRepo *repository.ProductRepository
	events      EventPublisher
	logger      zerolog.Logger
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo *repository.ProductRepository, events EventPublisher, logger zerolog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		events:      events,
		logger:      logger,
	}
}

func (p *ProductService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := p.productRepo.GetProducts(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("Error getting products")
		return nil, err
	}

	return products, nil
}

func (p *ProductService) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		p.logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	return product, nil
}

func (p *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created, err := p.productRepo.CreateProduct(ctx, product)
	if err != nil {
		p.logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	publishEvent(ctx, p.events, p.logger, eventKey("product", "created", created.ID), created)
	return created, nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id int) error {
	deleted, err := p.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		p.logger.Error().Err(err).Msgf("Error deleting product %d", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	publishEvent(ctx, p.events, p.logger, eventKey("product", "deleted", id), DeletedEvent{ID: id})
	return nil
}
