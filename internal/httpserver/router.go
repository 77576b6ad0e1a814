package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tHeiieh/inventory-api/internal/middleware"
)

type Deps struct {
	AuthHandler      *AuthHTTP
	InventoryHandler *InventoryHTTP
	// SearchHandler is nil when no elasticsearch address is configured;
	// the route is simply not registered then.
	SearchHandler *SearchHTTP
	JWTSecret     []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the RESTful API"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/login", d.AuthHandler.Login)

	authMw := middleware.NewBearerAuth(d.JWTSecret)

	users := e.Group("/users", authMw.RequireAuth)
	users.PUT("/:id", d.AuthHandler.UpdateUser)

	products := e.Group("/products", authMw.RequireAuth)
	products.POST("", d.InventoryHandler.CreateProduct)
	products.GET("", d.InventoryHandler.GetProducts)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("/:pid", d.InventoryHandler.GetProduct)
	products.PUT("/:pid", d.InventoryHandler.UpdateProduct)
	products.DELETE("/:pid", d.InventoryHandler.DeleteProduct)
}
