package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.Timeout = 5 * time.Second

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"code":200,"data":{"name":"ThinkPad"}}`))
	}))

	var out struct {
		Name string `json:"name"`
	}
	err := client.do(context.Background(), request{
		method: http.MethodGet,
		path:   "/products",
		token:  "tok-1",
		out:    &out,
	})

	require.NoError(t, err)
	assert.Equal(t, "ThinkPad", out.Name)
}

func TestClient_BackendMessageSurvivesErrorMapping(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"code":404,"message":"Không tìm thấy sản phẩm","error":{"code":"PRODUCT_NOT_FOUND"}}`))
	}))

	err := client.do(context.Background(), request{method: http.MethodGet, path: "/products/x"})

	require.Error(t, err)
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindRequest, apiErr.Kind())
	assert.Equal(t, http.StatusNotFound, apiErr.Status())
	assert.Equal(t, "PRODUCT_NOT_FOUND", apiErr.Code())
	assert.Equal(t, "Không tìm thấy sản phẩm", apiErr.Message())
}

func TestClient_UnauthorizedMapsToAuthKind(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.do(context.Background(), request{method: http.MethodGet, path: "/cart"})

	require.Error(t, err)
	assert.Equal(t, apierr.KindAuth, apierr.KindOf(err))
}

func TestClient_ErrorWithoutMessageGetsFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.do(context.Background(), request{method: http.MethodGet, path: "/orders"})

	require.Error(t, err)
	assert.NotEmpty(t, apierr.MessageOf(err))
	assert.Equal(t, apierr.KindRequest, apierr.KindOf(err))
}

func TestClient_ConnectionFailureMapsToNetworkKind(t *testing.T) {
	cfg := &config.Config{}
	// Nothing listens here.
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	cfg.Backend.Timeout = time.Second
	client := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := client.do(context.Background(), request{method: http.MethodGet, path: "/products"})

	require.Error(t, err)
	assert.Equal(t, apierr.KindNetwork, apierr.KindOf(err))
}

func TestClient_CancelledContextIsNotNetworkKind(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.do(ctx, request{method: http.MethodGet, path: "/slow"})

	require.Error(t, err)
	assert.Equal(t, apierr.KindUnknown, apierr.KindOf(err))
}

func TestFilterQuery_EncodesAllFilters(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "thinkpad", q.Get("keyword"))
		assert.Equal(t, "laptops", q.Get("category"))
		assert.Equal(t, "b1,b2", q.Get("brands"))
		assert.Equal(t, "10000000", q.Get("priceMin"))
		assert.Equal(t, "25000000", q.Get("priceMax"))
		assert.Equal(t, "16GB", q.Get("spec.ram"))
		assert.Equal(t, "2", q.Get("page"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[],"total":0}}`))
	}))

	products := NewProductAPI(client)
	_, err := products.List(context.Background(), service.ProductFilter{
		Keyword:      "thinkpad",
		CategorySlug: "laptops",
		BrandIDs:     []string{"b1", "b2"},
		PriceMin:     10_000_000,
		PriceMax:     25_000_000,
		Specs:        map[string]string{"ram": "16GB"},
		Page:         2,
		Limit:        12,
	})

	require.NoError(t, err)
}
