package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the catalog endpoints onto e.
func RegisterRoutes(e *echo.Echo, users *UserHandler, products *ProductHandler) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the catalog API"})
	})

	e.GET("/users", users.GetUsers)
	e.POST("/users", users.CreateUser)
	e.GET("/users/:id", users.GetUserByID)
	e.DELETE("/users/:id", users.DeleteUser)

	e.GET("/products", products.GetProducts)
	e.POST("/products", products.CreateProduct)
	e.GET("/products/:id", products.GetProductByID)
	e.DELETE("/products/:id", products.DeleteProduct)
}
