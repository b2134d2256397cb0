package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"catalog-services/catalog-service/internal/entity"
	"catalog-services/catalog-service/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts lists all products --> GET /products
func (ph *ProductHandler) GetProducts(c echo.Context) error {
	products, err := ph.productService.GetProducts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, products)
}

// GetProductByID retrieves a product --> GET /products/:id
func (ph *ProductHandler) GetProductByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	product, err := ph.productService.GetProductByID(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct creates a new product --> POST /products
func (ph *ProductHandler) CreateProduct(c echo.Context) error {
	req := struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	product, err := ph.productService.CreateProduct(c.Request().Context(), &entity.Product{Name: req.Name, Price: req.Price})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, product)
}

// DeleteProduct removes a product --> DELETE /products/:id
func (ph *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	err = ph.productService.DeleteProduct(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
