package repository

import (
	"context"
	"database/sql"

	"catalog-services/catalog-service/internal/entity"
)

type ProductRepository struct {
	q *QueryHelper
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{NewQueryHelper(db)}
}

func (r *ProductRepository) GetProducts(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	query := `SELECT id, name, price FROM products ORDER BY id`
	err := r.q.Query(ctx, query, nil, func(row Scanner) error {
		var product entity.Product
		if err := row.Scan(&product.ID, &product.Name, &product.Price); err != nil {
			return err
		}
		products = append(products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductByID returns nil, nil when no product has the given id.
func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product := &entity.Product{}
	query := `SELECT id, name, price FROM products WHERE id = ?`
	found, err := r.q.QueryOne(ctx, query, []any{id}, func(row Scanner) error {
		return row.Scan(&product.ID, &product.Name, &product.Price)
	})
	if err != nil || !found {
		return nil, err
	}

	return product, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, price) VALUES (?, ?)`
	id, _, err := r.q.Exec(ctx, query, []any{product.Name, product.Price})
	if err != nil {
		return nil, err
	}

	product.ID = int(id)
	return product, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM products WHERE id = ?`
	_, affected, err := r.q.Exec(ctx, query, []any{id})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
