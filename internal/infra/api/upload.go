package api

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/errors"
)

type uploadClient struct {
	c *Client
}

// NewUploadAPI builds the file upload resource client.
func NewUploadAPI(c *Client) service.UploadAPI {
	return &uploadClient{c: c}
}

func (u *uploadClient) UploadImage(ctx context.Context, token, name string, content []byte, contentType string) (string, error) {
	path := "/upload/image"
	if name != "" {
		path += "/" + url.PathEscape(name)
	}

	var payload struct {
		URL string `json:"url"`
	}
	err := u.c.doMultipart(ctx, path, token, func(w *multipart.Writer) error {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="image"`)
		if contentType != "" {
			header.Set("Content-Type", contentType)
		}

		part, err := w.CreatePart(header)
		if err != nil {
			return errors.Wrap(err, "create form part")
		}
		if _, err := part.Write(content); err != nil {
			return errors.Wrap(err, "write form part")
		}

		return nil
	}, &payload)
	if err != nil {
		return "", err
	}

	return payload.URL, nil
}

func (u *uploadClient) DeleteImage(ctx context.Context, token, name string) error {
	return u.c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/upload/image/" + url.PathEscape(name),
		token:  token,
	})
}
