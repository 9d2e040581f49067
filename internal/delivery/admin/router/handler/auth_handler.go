package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for back-office sign-in.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

type loginData struct {
	Next  string
	Email string
}

// LoginPage renders the back-office login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if middleware.CurrentSession(c).Authenticated() {
		return c.Redirect(http.StatusFound, "/products")
	}

	return c.Render(http.StatusOK, "login.html", newPage(c, loginData{Next: c.QueryParam("next")}))
}

// Login signs a staff account in. Customer accounts are refused before any
// session is persisted.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))

	snap, err := h.sessions.LoginBackOffice(c.Request().Context(), email, c.FormValue("password"))
	if err != nil {
		page := newPage(c, loginData{Email: email})
		page.Errors = map[string]string{"form": apierr.MessageOf(err)}

		status := http.StatusUnauthorized
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) && apiErr.Status() > 0 {
			status = apiErr.Status()
		}

		return c.Render(status, "login.html", page)
	}

	middleware.SetSessionCookie(c, h.cfg, snap.SessionID)

	next := c.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/products"
	}

	return c.Redirect(http.StatusFound, next)
}

// Logout ends the staff session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if snap := middleware.CurrentSession(c); snap != nil {
		if err := h.sessions.Logout(c.Request().Context(), snap.SessionID); err != nil {
			h.logger.Warn("Failed to clear session on logout", "error", err)
		}
	}
	middleware.ClearSessionCookie(c, h.cfg)

	return c.Redirect(http.StatusFound, "/login")
}
