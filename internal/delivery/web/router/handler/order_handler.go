package handler

import (
	"log/slog"
	"net/http"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the customer order pages.
type OrderHandler struct {
	orders usecase.OrderUsecase
	carts  usecase.CartUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, carts usecase.CartUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		carts:  carts,
		logger: logger,
	}
}

type orderListData struct {
	Orders []*entity.Order
}

// List renders the order history.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "orders.html", newPage(c, h.carts, orderListData{Orders: orders}))
}

type orderDetailData struct {
	Order   *entity.Order
	ShowQR  bool
	Success bool
}

// Detail renders one order.
func (h *OrderHandler) Detail(c echo.Context) error {
	order, err := h.orders.ByNumber(c.Request().Context(), middleware.CurrentSession(c), c.Param("number"))
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, h.carts, orderDetailData{
		Order:  order,
		ShowQR: order.PaymentMethod.RequiresGatewayQR(),
	})

	return c.Render(http.StatusOK, "order_detail.html", page)
}

// Success renders the confirmation page shown right after checkout.
func (h *OrderHandler) Success(c echo.Context) error {
	order, err := h.orders.ByNumber(c.Request().Context(), middleware.CurrentSession(c), c.Param("number"))
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, h.carts, orderDetailData{
		Order:   order,
		ShowQR:  order.PaymentMethod.RequiresGatewayQR(),
		Success: true,
	})

	return c.Render(http.StatusOK, "order_success.html", page)
}

// Cancel requests a cancellation and returns to the order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	number := c.Param("number")

	_, err := h.orders.Cancel(c.Request().Context(), middleware.CurrentSession(c), number)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/orders/"+number)
}

// PaymentQR streams the payment QR code image for gateway orders.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	png, err := h.orders.PaymentQR(c.Request().Context(), middleware.CurrentSession(c), c.Param("number"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
