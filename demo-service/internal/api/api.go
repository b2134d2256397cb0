package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"catalog-services/demo-service/internal/repository"
)

type ItemHandler struct {
	items repository.ItemRepository
}

// NewItemHandler creates a new instance of ItemHandler
func NewItemHandler(items repository.ItemRepository) *ItemHandler {
	return &ItemHandler{items: items}
}

// RegisterRoutes wires the demo endpoints onto e.
func RegisterRoutes(e *echo.Echo, h *ItemHandler) {
	e.GET("/", h.Root)
	e.GET("/about", h.About)
	e.POST("/items", h.CreateItem)
	e.GET("/items", h.ListItems)
	e.DELETE("/items", h.ResetItems)
}

// Root --> GET /
func (h *ItemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"hello": "world"})
}

// About --> GET /about
func (h *ItemHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, []string{"About Page"})
}

// CreateItem appends the item query parameter and echoes it --> POST /items?item=
func (h *ItemHandler) CreateItem(c echo.Context) error {
	if !c.QueryParams().Has("item") {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "item query parameter is required"})
	}
	item := c.QueryParam("item")

	if err := h.items.Append(c.Request().Context(), item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}

// ListItems --> GET /items
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

// ResetItems empties the list --> DELETE /items
func (h *ItemHandler) ResetItems(c echo.Context) error {
	if err := h.items.Reset(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
