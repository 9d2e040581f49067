package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the sign-in and account pages.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	carts    usecase.CartUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase, carts usecase.CartUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		carts:    carts,
		cfg:      cfg,
		logger:   logger,
	}
}

type authPageData struct {
	Next  string
	Email string
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if middleware.CurrentSession(c).Authenticated() {
		return c.Redirect(http.StatusFound, "/")
	}

	page := newPage(c, h.carts, authPageData{Next: c.QueryParam("next")})

	return c.Render(http.StatusOK, "login.html", page)
}

// Login signs the visitor in and sends them back where they came from.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	next := safeNext(c.FormValue("next"))

	snap, err := h.sessions.Login(c.Request().Context(), email, password)
	if err != nil {
		page := newPage(c, h.carts, authPageData{Next: next, Email: email})
		page.Errors = map[string]string{"form": apierr.MessageOf(err)}

		return c.Render(statusOf(err), "login.html", page)
	}

	middleware.SetSessionCookie(c, h.cfg, snap.SessionID)

	return c.Redirect(http.StatusFound, next)
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if middleware.CurrentSession(c).Authenticated() {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Render(http.StatusOK, "register.html", newPage(c, h.carts, authPageData{}))
}

// Register creates the account and signs the new user in.
func (h *AuthHandler) Register(c echo.Context) error {
	params := service.RegisterParams{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}

	if fields := validateRegistration(params, c.FormValue("confirmPassword")); len(fields) > 0 {
		page := newPage(c, h.carts, authPageData{Email: params.Email})
		page.Errors = fields

		return c.Render(http.StatusUnprocessableEntity, "register.html", page)
	}

	snap, err := h.sessions.Register(c.Request().Context(), params)
	if err != nil {
		page := newPage(c, h.carts, authPageData{Email: params.Email})
		page.Errors = errorFields(err)

		return c.Render(statusOf(err), "register.html", page)
	}

	middleware.SetSessionCookie(c, h.cfg, snap.SessionID)

	return c.Redirect(http.StatusFound, "/")
}

// Logout ends the session and drops the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if snap := middleware.CurrentSession(c); snap != nil {
		if err := h.sessions.Logout(c.Request().Context(), snap.SessionID); err != nil {
			h.logger.Warn("Failed to clear session on logout", "error", err)
		}
	}
	middleware.ClearSessionCookie(c, h.cfg)

	return c.Redirect(http.StatusFound, "/")
}

// VerifyPage renders the account verification form.
func (h *AuthHandler) VerifyPage(c echo.Context) error {
	page := newPage(c, h.carts, authPageData{Email: c.QueryParam("email")})

	return c.Render(http.StatusOK, "verify.html", page)
}

// Verify submits the emailed verification code.
func (h *AuthHandler) Verify(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))

	err := h.sessions.VerifyAccount(c.Request().Context(), email, c.FormValue("code"))
	if err != nil {
		page := newPage(c, h.carts, authPageData{Email: email})
		page.Errors = map[string]string{"form": apierr.MessageOf(err)}

		return c.Render(statusOf(err), "verify.html", page)
	}

	return c.Redirect(http.StatusFound, "/login")
}

// ForgotPasswordPage renders the reset-request form.
func (h *AuthHandler) ForgotPasswordPage(c echo.Context) error {
	return c.Render(http.StatusOK, "forgot_password.html", newPage(c, h.carts, authPageData{}))
}

// ForgotPassword requests a reset email.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))

	if err := h.sessions.ForgotPassword(c.Request().Context(), email); err != nil {
		page := newPage(c, h.carts, authPageData{Email: email})
		page.Errors = map[string]string{"form": apierr.MessageOf(err)}

		return c.Render(statusOf(err), "forgot_password.html", page)
	}

	page := newPage(c, h.carts, authPageData{Email: email})
	page.Notice = "Đã gửi hướng dẫn đặt lại mật khẩu tới email của bạn"

	return c.Render(http.StatusOK, "forgot_password.html", page)
}

// ResetPasswordPage renders the new-password form for an emailed token.
func (h *AuthHandler) ResetPasswordPage(c echo.Context) error {
	page := newPage(c, h.carts, authPageData{Next: c.QueryParam("token")})

	return c.Render(http.StatusOK, "reset_password.html", page)
}

// ResetPassword sets the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.FormValue("token")

	err := h.sessions.ResetPassword(c.Request().Context(), token, c.FormValue("password"))
	if err != nil {
		page := newPage(c, h.carts, authPageData{Next: token})
		page.Errors = map[string]string{"form": apierr.MessageOf(err)}

		return c.Render(statusOf(err), "reset_password.html", page)
	}

	return c.Redirect(http.StatusFound, "/login")
}

func validateRegistration(params service.RegisterParams, confirm string) map[string]string {
	fields := map[string]string{}

	if params.Name == "" {
		fields["name"] = "Vui lòng nhập họ tên"
	}
	if params.Email == "" || !strings.Contains(params.Email, "@") {
		fields["email"] = "Email không hợp lệ"
	}
	if len(params.Password) < 8 {
		fields["password"] = "Mật khẩu phải có ít nhất 8 ký tự"
	}
	if params.Password != confirm {
		fields["confirmPassword"] = "Mật khẩu nhập lại không khớp"
	}

	return fields
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	if _, err := url.Parse(next); err != nil {
		return "/"
	}

	return next
}

func statusOf(err error) int {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) && apiErr.Status() > 0 {
		return apiErr.Status()
	}

	return http.StatusBadGateway
}

func errorFields(err error) map[string]string {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) && len(apiErr.Fields()) > 0 {
		return apiErr.Fields()
	}

	return map[string]string{"form": apierr.MessageOf(err)}
}
