package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type orderClient struct {
	c *Client
}

// NewOrderAPI builds the orders resource client.
func NewOrderAPI(c *Client) service.OrderAPI {
	return &orderClient{c: c}
}

func (o *orderClient) List(ctx context.Context, token string) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := o.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders",
		token:  token,
		out:    &orders,
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *orderClient) Create(ctx context.Context, token string, params service.CreateOrderParams) (*entity.Order, error) {
	var order entity.Order
	err := o.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/orders",
		token:  token,
		body: map[string]any{
			"cartItemIds":   params.CartItemIDs,
			"addressId":     params.AddressID,
			"paymentMethod": params.PaymentMethod,
			"note":          params.Note,
		},
		out: &order,
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *orderClient) ByNumber(ctx context.Context, token, orderNumber string) (*entity.Order, error) {
	var order entity.Order
	err := o.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders/" + url.PathEscape(orderNumber),
		token:  token,
		out:    &order,
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *orderClient) Cancel(ctx context.Context, token, orderNumber string) (*entity.Order, error) {
	var order entity.Order
	err := o.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/orders/" + url.PathEscape(orderNumber) + "/cancel",
		token:  token,
		out:    &order,
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *orderClient) ListAll(ctx context.Context, token string, filter service.OrderListFilter) (*service.OrderPage, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}

	var page struct {
		Items      []*entity.Order `json:"items"`
		Total      int             `json:"total"`
		Page       int             `json:"page"`
		TotalPages int             `json:"totalPages"`
	}
	err := o.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders/all",
		token:  token,
		query:  pageQuery(q, filter.Page, filter.Limit),
		out:    &page,
	})
	if err != nil {
		return nil, err
	}

	return &service.OrderPage{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}, nil
}

func (o *orderClient) UpdateStatus(ctx context.Context, token, orderNumber string, status entity.OrderStatus) (*entity.Order, error) {
	var order entity.Order
	err := o.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/orders/" + url.PathEscape(orderNumber) + "/status",
		token:  token,
		body:   map[string]string{"status": string(status)},
		out:    &order,
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
