package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type userAdminClient struct {
	c *Client
}

// NewUserAdminAPI builds the back-office user management client.
func NewUserAdminAPI(c *Client) service.UserAdminAPI {
	return &userAdminClient{c: c}
}

func (u *userAdminClient) List(ctx context.Context, token string, page, limit int) (*service.UserPage, error) {
	var payload struct {
		Items      []*entity.User `json:"items"`
		Total      int            `json:"total"`
		Page       int            `json:"page"`
		TotalPages int            `json:"totalPages"`
	}
	err := u.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users",
		token:  token,
		query:  pageQuery(nil, page, limit),
		out:    &payload,
	})
	if err != nil {
		return nil, err
	}

	return &service.UserPage{
		Items:      payload.Items,
		Total:      payload.Total,
		Page:       payload.Page,
		TotalPages: payload.TotalPages,
	}, nil
}

func (u *userAdminClient) UpdateRole(ctx context.Context, token, userID string, role entity.Role) (*entity.User, error) {
	var user entity.User
	err := u.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/users/" + url.PathEscape(userID) + "/role",
		token:  token,
		body:   map[string]string{"role": string(role)},
		out:    &user,
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
