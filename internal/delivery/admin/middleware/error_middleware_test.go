package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	m := NewErrorMiddleware(newDiscardLogger())
	e.HTTPErrorHandler = m.HandleHTTPError
	e.GET("/products", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandleHTTPError_NetworkFailure(t *testing.T) {
	rec := serveWithError(t, apierr.Network(errors.New("dial tcp: connection refused")))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Không thể kết nối đến máy chủ")
}

func TestHandleHTTPError_UnknownFailure(t *testing.T) {
	rec := serveWithError(t, apierr.Unknown(errors.New("unexpected envelope")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleHTTPError_KeepsUpstreamStatus(t *testing.T) {
	rec := serveWithError(t, apierr.FromResponse(http.StatusConflict, "ORDER_NOT_CANCELLABLE", "Đơn hàng không thể hủy"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Đơn hàng không thể hủy")
}
