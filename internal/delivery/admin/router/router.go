// Package router wires the back-office pages onto echo.
package router

import (
	"net/http"

	adminmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/admin/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/admin/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	BrandHandler   *handler.BrandHandler
	OrderHandler   *handler.OrderHandler
	UserHandler    *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	auth    *handler.AuthHandler
	product *handler.ProductHandler
	brand   *handler.BrandHandler
	order   *handler.OrderHandler
	user    *handler.UserHandler
}

// NewRouter is the constructor for the router; fx injects the handlers.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:    params.AuthHandler,
		product: params.ProductHandler,
		brand:   params.BrandHandler,
		order:   params.OrderHandler,
		user:    params.UserHandler,
	}
}

// RegisterRoutes sets up all the back-office routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/login", r.auth.LoginPage)
	e.POST("/login", r.auth.Login)
	e.POST("/logout", r.auth.Logout)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/products")
	})

	staff := e.Group("", adminmiddleware.RequireStaff)
	{
		staff.GET("/products", r.product.List)
		staff.GET("/products/new", r.product.Form)
		staff.POST("/products/new", r.product.Save)
		staff.GET("/products/:id", r.product.Form)
		staff.POST("/products/:id", r.product.Save)
		staff.POST("/products/:id/delete", r.product.Delete)
		staff.POST("/products/:id/images/delete", r.product.DeleteImage)

		staff.GET("/brands", r.brand.List)
		staff.POST("/brands", r.brand.Create)
		staff.POST("/brands/:id/delete", r.brand.Delete)

		staff.GET("/orders", r.order.List)
		staff.POST("/orders/:number/status", r.order.UpdateStatus)

		staff.GET("/users", r.user.List)
		staff.POST("/users/:id/role", r.user.UpdateRole)
	}
}
