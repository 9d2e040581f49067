package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order management.
type OrderHandler struct {
	admin  usecase.AdminUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(admin usecase.AdminUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		admin:  admin,
		logger: logger,
	}
}

type orderListData struct {
	Orders   *service.OrderPage
	Status   entity.OrderStatus
	Statuses []entity.OrderStatus
}

// List renders the order table, optionally narrowed to one status.
func (h *OrderHandler) List(c echo.Context) error {
	filter := service.OrderListFilter{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Page:   1,
		Limit:  20,
	}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		filter.Page = p
	}

	page, err := h.admin.Orders(c.Request().Context(), middleware.CurrentSession(c), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "orders.html", newPage(c, orderListData{
		Orders: page,
		Status: filter.Status,
		Statuses: []entity.OrderStatus{
			entity.OrderPending, entity.OrderConfirmed, entity.OrderProcessing,
			entity.OrderShipping, entity.OrderDelivered, entity.OrderCancelled,
		},
	}))
}

// UpdateStatus moves an order to the submitted status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	_, err := h.admin.UpdateOrderStatus(c.Request().Context(), middleware.CurrentSession(c),
		c.Param("number"), entity.OrderStatus(c.FormValue("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/orders")
}
