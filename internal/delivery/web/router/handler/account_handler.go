package handler

import (
	"log/slog"
	"net/http"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the profile and address pages.
type AccountHandler struct {
	sessions  usecase.SessionUsecase
	addresses usecase.AddressUsecase
	carts     usecase.CartUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(
	sessions usecase.SessionUsecase,
	addresses usecase.AddressUsecase,
	carts usecase.CartUsecase,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		sessions:  sessions,
		addresses: addresses,
		carts:     carts,
		logger:    logger,
	}
}

type accountData struct {
	User *entity.User
}

// Show renders the profile page.
func (h *AccountHandler) Show(c echo.Context) error {
	snap := middleware.CurrentSession(c)

	return c.Render(http.StatusOK, "account.html", newPage(c, h.carts, accountData{User: snap.User}))
}

// UpdateProfile saves the editable profile fields.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	snap := middleware.CurrentSession(c)

	_, err := h.sessions.UpdateProfile(c.Request().Context(), snap, service.UpdateProfileParams{
		Name:        c.FormValue("name"),
		PhoneNumber: c.FormValue("phoneNumber"),
	})
	if err != nil {
		page := newPage(c, h.carts, accountData{User: snap.User})
		page.Errors = errorFields(err)

		return c.Render(statusOf(err), "account.html", page)
	}

	return c.Redirect(http.StatusFound, "/account")
}

// ChangePassword updates the password for the signed-in user.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	snap := middleware.CurrentSession(c)

	newPassword := c.FormValue("newPassword")
	if newPassword != c.FormValue("confirmPassword") {
		page := newPage(c, h.carts, accountData{User: snap.User})
		page.Errors = map[string]string{"confirmPassword": "Mật khẩu nhập lại không khớp"}

		return c.Render(http.StatusUnprocessableEntity, "account.html", page)
	}

	err := h.sessions.ChangePassword(c.Request().Context(), snap, c.FormValue("currentPassword"), newPassword)
	if err != nil {
		page := newPage(c, h.carts, accountData{User: snap.User})
		page.Errors = errorFields(err)

		return c.Render(statusOf(err), "account.html", page)
	}

	page := newPage(c, h.carts, accountData{User: snap.User})
	page.Notice = "Đã đổi mật khẩu"

	return c.Render(http.StatusOK, "account.html", page)
}

type addressData struct {
	Addresses []*entity.Address
	Form      usecase.AddressForm
}

// Addresses renders the saved address book.
func (h *AccountHandler) Addresses(c echo.Context) error {
	list, err := h.addresses.List(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "addresses.html", newPage(c, h.carts, addressData{Addresses: list}))
}

// SaveAddress creates or updates an address. Validation failures re-render
// the page with field messages and the submitted values.
func (h *AccountHandler) SaveAddress(c echo.Context) error {
	snap := middleware.CurrentSession(c)

	form := usecase.AddressForm{
		ID:                c.Param("id"),
		FullName:          c.FormValue("fullName"),
		MobileNo:          c.FormValue("mobileNo"),
		Street:            c.FormValue("street"),
		Ward:              c.FormValue("ward"),
		District:          c.FormValue("district"),
		City:              c.FormValue("city"),
		Country:           c.FormValue("country"),
		PostalCode:        c.FormValue("postalCode"),
		FullAddress:       c.FormValue("fullAddress"),
		IsDefault:         c.FormValue("isDefault") == "on",
		FullAddressEdited: c.FormValue("fullAddressEdited") == "true",
	}

	_, err := h.addresses.Save(c.Request().Context(), snap, form)
	if err != nil {
		if apierr.KindOf(err) != apierr.KindValidation {
			return errors.WithStack(err)
		}

		list, listErr := h.addresses.List(c.Request().Context(), snap)
		if listErr != nil {
			return errors.WithStack(listErr)
		}

		page := newPage(c, h.carts, addressData{Addresses: list, Form: form})
		page.Errors = errorFields(err)

		return c.Render(http.StatusUnprocessableEntity, "addresses.html", page)
	}

	return c.Redirect(http.StatusFound, "/account/addresses")
}

// DeleteAddress removes an address.
func (h *AccountHandler) DeleteAddress(c echo.Context) error {
	err := h.addresses.Delete(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/account/addresses")
}

// SetDefaultAddress marks one address as the default.
func (h *AccountHandler) SetDefaultAddress(c echo.Context) error {
	_, err := h.addresses.SetDefault(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/account/addresses")
}
