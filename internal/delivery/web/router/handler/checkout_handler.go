package handler

import (
	"log/slog"
	"net/http"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout flow.
type CheckoutHandler struct {
	checkout usecase.CheckoutUsecase
	carts    usecase.CartUsecase
	logger   *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkout usecase.CheckoutUsecase, carts usecase.CartUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		carts:    carts,
		logger:   logger,
	}
}

// Begin captures the selected cart lines and opens the checkout page.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return errors.WithStack(err)
	}

	cs, err := h.checkout.Begin(c.Request().Context(), middleware.CurrentSession(c), form["items"])
	if err != nil {
		if apierr.KindOf(err) == apierr.KindValidation {
			// Nothing selected; back to the cart with the message.
			return c.Redirect(http.StatusFound, "/cart")
		}

		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/checkout/"+cs.ID)
}

type checkoutData struct {
	View           *usecase.CheckoutView
	PaymentMethods []entity.PaymentMethod
	Form           usecase.CompleteParams
}

// Show renders the checkout page for one hand-off.
func (h *CheckoutHandler) Show(c echo.Context) error {
	view, err := h.checkout.Load(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, h.carts, checkoutData{
		View:           view,
		PaymentMethods: []entity.PaymentMethod{entity.PaymentCOD, entity.PaymentVNPay, entity.PaymentMoMo},
	})

	return c.Render(http.StatusOK, "checkout.html", page)
}

// Complete submits the order. Validation failures re-render the page with
// the field messages; success moves to the order confirmation.
func (h *CheckoutHandler) Complete(c echo.Context) error {
	snap := middleware.CurrentSession(c)
	checkoutID := c.Param("id")

	params := usecase.CompleteParams{
		AddressID:     c.FormValue("addressId"),
		PaymentMethod: entity.PaymentMethod(c.FormValue("paymentMethod")),
		Note:          c.FormValue("note"),
		AcceptTerms:   c.FormValue("terms") == "on",
	}

	order, err := h.checkout.Complete(c.Request().Context(), snap, checkoutID, params)
	if err != nil {
		if apierr.KindOf(err) != apierr.KindValidation {
			return errors.WithStack(err)
		}

		view, loadErr := h.checkout.Load(c.Request().Context(), snap, checkoutID)
		if loadErr != nil {
			return errors.WithStack(loadErr)
		}

		page := newPage(c, h.carts, checkoutData{
			View:           view,
			PaymentMethods: []entity.PaymentMethod{entity.PaymentCOD, entity.PaymentVNPay, entity.PaymentMoMo},
			Form:           params,
		})
		page.Errors = errorFields(err)

		return c.Render(http.StatusUnprocessableEntity, "checkout.html", page)
	}

	return c.Redirect(http.StatusFound, "/order-success/"+order.OrderNumber)
}

// Abandon discards the hand-off and returns to the cart.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	err := h.checkout.Abandon(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		h.logger.Warn("Failed to abandon checkout", "error", err)
	}

	return c.Redirect(http.StatusFound, "/cart")
}
