package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart page.
type CartHandler struct {
	carts  usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(carts usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger,
	}
}

type cartData struct {
	Cart *entity.Cart
}

// Show renders the cart page from the server's authoritative cart.
func (h *CartHandler) Show(c echo.Context) error {
	cart, err := h.carts.Get(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "cart.html", newPage(c, h.carts, cartData{Cart: cart}))
}

// Add puts a product in the cart. Signed-out visitors hit the credential
// error path and land on the login page without any backend call.
func (h *CartHandler) Add(c echo.Context) error {
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		quantity = 1
	}

	_, err = h.carts.Add(c.Request().Context(), middleware.CurrentSession(c),
		c.FormValue("productId"), quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, safeNext(c.FormValue("next")))
}

// UpdateItem changes a line's quantity.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	_, err = h.carts.UpdateItem(c.Request().Context(), middleware.CurrentSession(c),
		c.Param("id"), quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/cart")
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	_, err := h.carts.RemoveItem(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	_, err := h.carts.Clear(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/cart")
}
