// Package middleware holds the back-office's echo middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	sharedmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware for the back-office pages.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

type errorPage struct {
	Status  int
	Message string
	Session any
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind() == apierr.KindAuth {
			_ = c.Redirect(http.StatusFound,
				"/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))

			return
		}

		// Network and unknown kinds carry no upstream status.
		status := apiErr.Status()
		if status <= 0 {
			status = http.StatusInternalServerError
			if apiErr.Kind() == apierr.KindNetwork {
				status = http.StatusBadGateway
			}
		}
		m.render(c, status, apiErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, _ := httpErr.Message.(string)
		m.render(c, httpErr.Code, msg)

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	m.render(c, http.StatusInternalServerError, "Đã xảy ra lỗi, vui lòng thử lại sau")
}

func (m *ErrorMiddleware) render(c echo.Context, status int, message string) {
	page := errorPage{
		Status:  status,
		Message: message,
		Session: sharedmiddleware.CurrentSession(c),
	}

	if err := c.Render(status, "error.html", page); err != nil {
		m.logger.Error("Failed to render error page", "error", err)
		_ = c.String(status, message)
	}
}

// RequireStaff turns away sessions without a back-office role. Signed-out
// visitors go to the login page; signed-in customers get a refusal.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap := sharedmiddleware.CurrentSession(c)
		if !snap.Authenticated() {
			return c.Redirect(http.StatusFound,
				"/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}

		if !snap.User.CanAccessBackOffice() {
			return apierr.FromResponse(http.StatusForbidden, "FORBIDDEN",
				"Tài khoản không có quyền truy cập trang quản trị")
		}

		return next(c)
	}
}
