package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/beingsaumyadeep/py-commerce/internal/handlers"
	"github.com/beingsaumyadeep/py-commerce/internal/middleware/auth"
)

type Deps struct {
	DB             *gorm.DB
	UserHandler    *handlers.UserHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	SearchHandler  *handlers.SearchHandler
	SessionMW      *auth.SessionMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/users", d.UserHandler.CreateUser)
	v1.GET("/users", d.UserHandler.GetUsers)
	v1.POST("/users/login", d.UserHandler.Login)
	v1.GET("/users/me", d.UserHandler.Me, d.SessionMW.RequireSession)

	v1.POST("/products", d.ProductHandler.CreateProduct)
	v1.GET("/products", d.ProductHandler.GetProducts)
	v1.GET("/products/search", d.SearchHandler.Search)
	v1.GET("/products/:id", d.ProductHandler.GetProduct)

	v1.POST("/orders", d.OrderHandler.CreateOrder)
	v1.GET("/orders", d.OrderHandler.GetOrders)
	v1.GET("/orders/:id", d.OrderHandler.GetOrder)
}
