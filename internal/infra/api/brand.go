package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type brandClient struct {
	c *Client
}

// NewBrandAPI builds the brands resource client.
func NewBrandAPI(c *Client) service.BrandAPI {
	return &brandClient{c: c}
}

func (b *brandClient) List(ctx context.Context) ([]*entity.Brand, error) {
	var brands []*entity.Brand
	err := b.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/brands",
		out:    &brands,
	})
	if err != nil {
		return nil, err
	}

	return brands, nil
}

func (b *brandClient) Create(ctx context.Context, token string, input service.BrandInput) (*entity.Brand, error) {
	var brand entity.Brand
	err := b.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/brands",
		token:  token,
		body:   map[string]string{"name": input.Name, "logo": input.Logo},
		out:    &brand,
	})
	if err != nil {
		return nil, err
	}

	return &brand, nil
}

func (b *brandClient) Delete(ctx context.Context, token, id string) error {
	return b.c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/brands/" + url.PathEscape(id),
		token:  token,
	})
}
