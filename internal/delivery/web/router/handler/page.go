// Package handler contains the storefront page handlers.
package handler

import (
	"net/http"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Page is the data every view receives: the session for the header, the
// cart badge, and the page-specific payload.
type Page struct {
	Session   *usecase.SessionSnapshot
	CartCount int
	Data      any
	Errors    map[string]string
	Notice    string
}

// newPage assembles the shared header state. The badge count comes from the
// backend; a failed count renders as zero rather than failing the page.
func newPage(c echo.Context, carts usecase.CartUsecase, data any) Page {
	snap := middleware.CurrentSession(c)

	count, err := carts.Count(c.Request().Context(), snap)
	if err != nil {
		count = 0
	}

	return Page{
		Session:   snap,
		CartCount: count,
		Data:      data,
	}
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
