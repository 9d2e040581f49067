package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type addressClient struct {
	c *Client
}

// NewAddressAPI builds the addresses resource client.
func NewAddressAPI(c *Client) service.AddressAPI {
	return &addressClient{c: c}
}

func addressBody(input service.AddressInput) map[string]any {
	return map[string]any{
		"fullName":    input.FullName,
		"mobileNo":    input.MobileNo,
		"street":      input.Street,
		"ward":        input.Ward,
		"district":    input.District,
		"city":        input.City,
		"country":     input.Country,
		"postalCode":  input.PostalCode,
		"fullAddress": input.FullAddress,
		"isDefault":   input.IsDefault,
	}
}

func (a *addressClient) List(ctx context.Context, token string) ([]*entity.Address, error) {
	var addresses []*entity.Address
	err := a.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/addresses",
		token:  token,
		out:    &addresses,
	})
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (a *addressClient) Create(ctx context.Context, token string, input service.AddressInput) (*entity.Address, error) {
	var address entity.Address
	err := a.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/addresses",
		token:  token,
		body:   addressBody(input),
		out:    &address,
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (a *addressClient) Update(ctx context.Context, token, id string, input service.AddressInput) (*entity.Address, error) {
	var address entity.Address
	err := a.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/addresses/" + url.PathEscape(id),
		token:  token,
		body:   addressBody(input),
		out:    &address,
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (a *addressClient) Delete(ctx context.Context, token, id string) error {
	return a.c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/addresses/" + url.PathEscape(id),
		token:  token,
	})
}

func (a *addressClient) SetDefault(ctx context.Context, token, id string) (*entity.Address, error) {
	var address entity.Address
	err := a.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/addresses/" + url.PathEscape(id) + "/default",
		token:  token,
		out:    &address,
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (a *addressClient) GetDefault(ctx context.Context, token string) (*entity.Address, error) {
	var address entity.Address
	err := a.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/addresses/default",
		token:  token,
		out:    &address,
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}
