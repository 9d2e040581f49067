package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BrandHandler holds dependencies for brand management.
type BrandHandler struct {
	admin  usecase.AdminUsecase
	logger *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(admin usecase.AdminUsecase, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{
		admin:  admin,
		logger: logger,
	}
}

type brandListData struct {
	Brands []*entity.Brand
}

// List renders the brand table with the create form.
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.admin.Brands(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "brands.html", newPage(c, brandListData{Brands: brands}))
}

// Create adds a brand.
func (h *BrandHandler) Create(c echo.Context) error {
	snap := middleware.CurrentSession(c)

	_, err := h.admin.SaveBrand(c.Request().Context(), snap, service.BrandInput{
		Name: strings.TrimSpace(c.FormValue("name")),
		Logo: strings.TrimSpace(c.FormValue("logo")),
	})
	if err != nil {
		if apierr.KindOf(err) != apierr.KindValidation {
			return errors.WithStack(err)
		}

		brands, listErr := h.admin.Brands(c.Request().Context(), snap)
		if listErr != nil {
			return errors.WithStack(listErr)
		}

		page := newPage(c, brandListData{Brands: brands})
		page.Errors = apierrFields(err)

		return c.Render(http.StatusUnprocessableEntity, "brands.html", page)
	}

	return c.Redirect(http.StatusFound, "/brands")
}

// Delete removes a brand. The backend refuses when products still refer to
// it; that failure surfaces as a regular request error.
func (h *BrandHandler) Delete(c echo.Context) error {
	err := h.admin.DeleteBrand(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/brands")
}
