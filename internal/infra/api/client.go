// Package api implements the typed clients for the remote REST backend.
// Each exported call performs exactly one HTTP request; there is no retry,
// batching, or caching at this layer. Failures are always *apierr.Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/errors"
)

// Client is the shared HTTP core behind every resource client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the shared backend client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.Backend.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Backend.Timeout},
		logger:     logger,
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// request describes one backend call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any    // JSON-encoded when non-nil
	token  string // bearer credential, optional
	out    any    // envelope data target, optional
}

// do performs the request and decodes the envelope into req.out.
// The passed context bounds the whole call; cancelling it (view teardown)
// aborts the request and discards the late response.
func (c *Client) do(ctx context.Context, req request) error {
	var bodyReader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return apierr.Unknown(errors.Wrap(err, "encode request body"))
		}
		bodyReader = bytes.NewReader(encoded)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return apierr.Unknown(errors.Wrap(err, "build request"))
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// No response object at all: connectivity class.
		if ctx.Err() != nil {
			return apierr.Unknown(errors.WithStack(ctx.Err()))
		}

		return apierr.Network(errors.WithStack(err))
	}
	defer resp.Body.Close()

	return c.decode(resp, req.out)
}

// doMultipart uploads a multipart form, used only by the file resource.
func (c *Client) doMultipart(ctx context.Context, path, token string, form func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := form(writer); err != nil {
		return apierr.Unknown(errors.Wrap(err, "build multipart form"))
	}
	if err := writer.Close(); err != nil {
		return apierr.Unknown(errors.Wrap(err, "close multipart form"))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return apierr.Unknown(errors.Wrap(err, "build request"))
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return apierr.Unknown(errors.WithStack(ctx.Err()))
		}

		return apierr.Network(errors.WithStack(err))
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

// decode maps the response envelope to the typed error union or the target.
func (c *Client) decode(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Network(errors.Wrap(err, "read response body"))
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed envelope on an error status still maps to the
		// status; on success it is a hard failure.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 400 {
			return apierr.Unknown(errors.Wrap(err, "decode response envelope"))
		}
	}

	if resp.StatusCode >= 400 {
		code := ""
		if env.Error != nil {
			code = env.Error.Code
		}
		c.logger.Debug("backend request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("code", code),
		)

		return apierr.FromResponse(resp.StatusCode, code, env.Message)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apierr.Unknown(errors.Wrap(err, "decode response data"))
	}

	return nil
}

// pageQuery encodes shared pagination params.
func pageQuery(q url.Values, page, limit int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return q
}
