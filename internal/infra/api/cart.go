package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type cartClient struct {
	c *Client
}

// NewCartAPI builds the cart resource client.
func NewCartAPI(c *Client) service.CartAPI {
	return &cartClient{c: c}
}

func (cc *cartClient) Get(ctx context.Context, token string) (*entity.Cart, error) {
	var cart entity.Cart
	err := cc.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/cart",
		token:  token,
		out:    &cart,
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (cc *cartClient) Add(ctx context.Context, token, productID string, quantity int) (*entity.Cart, error) {
	var cart entity.Cart
	err := cc.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/cart/items",
		token:  token,
		body:   map[string]any{"productId": productID, "quantity": quantity},
		out:    &cart,
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (cc *cartClient) UpdateItem(ctx context.Context, token, itemID string, quantity int) (*entity.Cart, error) {
	var cart entity.Cart
	err := cc.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/cart/items/" + url.PathEscape(itemID),
		token:  token,
		body:   map[string]any{"quantity": quantity},
		out:    &cart,
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (cc *cartClient) RemoveItem(ctx context.Context, token, itemID string) (*entity.Cart, error) {
	var cart entity.Cart
	err := cc.c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/items/" + url.PathEscape(itemID),
		token:  token,
		out:    &cart,
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (cc *cartClient) Clear(ctx context.Context, token string) (*entity.Cart, error) {
	var cart entity.Cart
	err := cc.c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart",
		token:  token,
		out:    &cart,
	})
	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (cc *cartClient) Count(ctx context.Context, token string) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	err := cc.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/cart/count",
		token:  token,
		out:    &payload,
	})
	if err != nil {
		return 0, err
	}

	return payload.Count, nil
}
