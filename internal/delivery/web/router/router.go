// Package router wires the storefront pages onto echo.
package router

import (
	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/web/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	AuthHandler       *handler.AuthHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	OrderHandler      *handler.OrderHandler
	AccountHandler    *handler.AccountHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalog  *handler.CatalogHandler
	auth     *handler.AuthHandler
	cart     *handler.CartHandler
	checkout *handler.CheckoutHandler
	order    *handler.OrderHandler
	account  *handler.AccountHandler
	session  *middleware.SessionMiddleware
}

// NewRouter is the constructor for the router; fx injects the handlers.
func NewRouter(params RouterParams) *router {
	return &router{
		catalog:  params.CatalogHandler,
		auth:     params.AuthHandler,
		cart:     params.CartHandler,
		checkout: params.CheckoutHandler,
		order:    params.OrderHandler,
		account:  params.AccountHandler,
		session:  params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the storefront routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public catalog pages.
	e.GET("/", r.catalog.Home)
	e.GET("/products", r.catalog.Products)
	e.GET("/products/:slug", r.catalog.ProductDetail)

	// Auth pages.
	e.GET("/login", r.auth.LoginPage)
	e.POST("/login", r.auth.Login)
	e.GET("/register", r.auth.RegisterPage)
	e.POST("/register", r.auth.Register)
	e.POST("/logout", r.auth.Logout)
	e.GET("/verify", r.auth.VerifyPage)
	e.POST("/verify", r.auth.Verify)
	e.GET("/forgot-password", r.auth.ForgotPasswordPage)
	e.POST("/forgot-password", r.auth.ForgotPassword)
	e.GET("/reset-password", r.auth.ResetPasswordPage)
	e.POST("/reset-password", r.auth.ResetPassword)

	// Cart. The add route stays open so the redirect-to-login flow kicks
	// in through the error handler instead of silently dropping the post.
	e.POST("/cart/items", r.cart.Add)
	cartGroup := e.Group("/cart", r.session.RequireAuth)
	{
		cartGroup.GET("", r.cart.Show)
		cartGroup.POST("/items/:id", r.cart.UpdateItem)
		cartGroup.POST("/items/:id/delete", r.cart.RemoveItem)
		cartGroup.POST("/clear", r.cart.Clear)
	}

	// Checkout.
	checkoutGroup := e.Group("/checkout", r.session.RequireAuth)
	{
		checkoutGroup.POST("", r.checkout.Begin)
		checkoutGroup.GET("/:id", r.checkout.Show)
		checkoutGroup.POST("/:id", r.checkout.Complete)
		checkoutGroup.POST("/:id/cancel", r.checkout.Abandon)
	}

	// Orders.
	orderGroup := e.Group("/orders", r.session.RequireAuth)
	{
		orderGroup.GET("", r.order.List)
		orderGroup.GET("/:number", r.order.Detail)
		orderGroup.POST("/:number/cancel", r.order.Cancel)
		orderGroup.GET("/:number/qr.png", r.order.PaymentQR)
	}
	e.GET("/order-success/:number", r.order.Success, r.session.RequireAuth)

	// Account.
	accountGroup := e.Group("/account", r.session.RequireAuth)
	{
		accountGroup.GET("", r.account.Show)
		accountGroup.POST("/profile", r.account.UpdateProfile)
		accountGroup.POST("/password", r.account.ChangePassword)
		accountGroup.GET("/addresses", r.account.Addresses)
		accountGroup.POST("/addresses", r.account.SaveAddress)
		accountGroup.POST("/addresses/:id", r.account.SaveAddress)
		accountGroup.POST("/addresses/:id/delete", r.account.DeleteAddress)
		accountGroup.POST("/addresses/:id/default", r.account.SetDefaultAddress)
	}
}
