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

// UserHandler holds dependencies for account management.
type UserHandler struct {
	admin  usecase.AdminUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(admin usecase.AdminUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		admin:  admin,
		logger: logger,
	}
}

type userListData struct {
	Users *service.UserPage
	Roles []entity.Role
}

// List renders the account table.
func (h *UserHandler) List(c echo.Context) error {
	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}

	users, err := h.admin.Users(c.Request().Context(), middleware.CurrentSession(c), page, 20)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "users.html", newPage(c, userListData{
		Users: users,
		Roles: []entity.Role{entity.RoleUser, entity.RoleStaff, entity.RoleManager},
	}))
}

// UpdateRole assigns a role to an account.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	_, err := h.admin.UpdateUserRole(c.Request().Context(), middleware.CurrentSession(c),
		c.Param("id"), entity.Role(c.FormValue("role")))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/users")
}
