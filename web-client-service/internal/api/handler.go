package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"catalog-services/web-client-service/internal/client"
	"catalog-services/web-client-service/internal/entity"
)

// PageHandler serves the HTML pages. Forwarding failures are returned
// unchanged to echo, which answers with a generic 500.
type PageHandler struct {
	catalog *client.CatalogClient
}

// NewPageHandler creates a new instance of PageHandler
func NewPageHandler(catalog *client.CatalogClient) *PageHandler {
	return &PageHandler{catalog: catalog}
}

// RegisterRoutes wires the page endpoints onto e.
func RegisterRoutes(e *echo.Echo, h *PageHandler) {
	e.GET("/", h.Home)

	e.GET("/users", h.ShowUsers)
	e.POST("/users/add", h.AddUser)
	e.GET("/users/delete/:id", h.DeleteUser)

	e.GET("/products", h.ShowProducts)
	e.POST("/products/add", h.AddProduct)
	e.GET("/products/delete/:id", h.DeleteProduct)
}

// Home renders the landing page --> GET /
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

// ShowUsers --> GET /users
func (h *PageHandler) ShowUsers(c echo.Context) error {
	users, err := h.catalog.ListUsers(c.Request().Context())
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	return c.Render(http.StatusOK, "users.html", map[string][]entity.User{"Users": users})
}

// AddUser --> POST /users/add
func (h *PageHandler) AddUser(c echo.Context) error {
	form, err := requiredForm(c, "name", "email")
	if err != nil {
		return err
	}

	if _, err := h.catalog.CreateUser(c.Request().Context(), form["name"], form["email"]); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return c.Redirect(http.StatusFound, "/users")
}

// DeleteUser --> GET /users/delete/:id
func (h *PageHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteUser(c.Request().Context(), id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return c.Redirect(http.StatusFound, "/users")
}

// ShowProducts --> GET /products
func (h *PageHandler) ShowProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	return c.Render(http.StatusOK, "products.html", map[string][]entity.Product{"Products": products})
}

// AddProduct --> POST /products/add
func (h *PageHandler) AddProduct(c echo.Context) error {
	form, err := requiredForm(c, "name", "price")
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(form["price"], 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a number")
	}

	if _, err := h.catalog.CreateProduct(c.Request().Context(), form["name"], price); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return c.Redirect(http.StatusFound, "/products")
}

// DeleteProduct --> GET /products/delete/:id
func (h *PageHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return c.Redirect(http.StatusFound, "/products")
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}

// requiredForm returns the named form fields, failing with 400 when one
// is absent. Present but empty fields are accepted.
func requiredForm(c echo.Context, fields ...string) (map[string]string, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid form")
	}

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		if !params.Has(field) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "missing form field: "+field)
		}
		values[field] = params.Get(field)
	}
	return values, nil
}
