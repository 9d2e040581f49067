package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// SessionMiddleware restores the session referenced by the browser cookie
// and exposes it to handlers. A missing or dead session reads as signed out.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Process resolves the cookie to a snapshot before the handler runs.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		snap, err := m.sessions.Restore(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Warn("Failed to restore session", "error", err)

			return next(c)
		}

		if snap == nil {
			// The session died server-side; drop the stale cookie.
			ClearSessionCookie(c, m.cfg)

			return next(c)
		}

		c.Set(sessionContextKey, snap)

		return next(c)
	}
}

// RequireAuth redirects signed-out visitors to the login page, preserving
// the page they were after.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentSession(c).Authenticated() {
			return c.Redirect(http.StatusFound,
				"/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}

		return next(c)
	}
}

// CurrentSession returns the restored snapshot, or nil when signed out.
func CurrentSession(c echo.Context) *usecase.SessionSnapshot {
	snap, _ := c.Get(sessionContextKey).(*usecase.SessionSnapshot)

	return snap
}

// SetSessionCookie installs the session id cookie after login or register.
func SetSessionCookie(c echo.Context, cfg *config.Config, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session id cookie.
func ClearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
