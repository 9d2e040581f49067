// Package handler contains the back-office page handlers.
package handler

import (
	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Page is the data every back-office view receives.
type Page struct {
	Session *usecase.SessionSnapshot
	Data    any
	Errors  map[string]string
	Notice  string
}

func newPage(c echo.Context, data any) Page {
	return Page{
		Session: middleware.CurrentSession(c),
		Data:    data,
	}
}
