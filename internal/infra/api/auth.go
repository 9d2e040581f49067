package api

import (
	"context"
	"net/http"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type authClient struct {
	c *Client
}

// NewAuthAPI builds the auth resource client.
func NewAuthAPI(c *Client) service.AuthAPI {
	return &authClient{c: c}
}

// loginPayload is the wire shape shared by login and register responses.
type loginPayload struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (a *authClient) Register(ctx context.Context, params service.RegisterParams) (*service.Credentials, error) {
	var payload loginPayload
	err := a.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register",
		body: map[string]string{
			"name":     params.Name,
			"email":    params.Email,
			"password": params.Password,
		},
		out: &payload,
	})
	if err != nil {
		return nil, err
	}

	return &service.Credentials{Token: payload.Token, User: payload.User}, nil
}

func (a *authClient) Login(ctx context.Context, email, password string) (*service.Credentials, error) {
	var payload loginPayload
	err := a.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   map[string]string{"email": email, "password": password},
		out:    &payload,
	})
	if err != nil {
		return nil, err
	}

	return &service.Credentials{Token: payload.Token, User: payload.User}, nil
}

func (a *authClient) Me(ctx context.Context, token string) (*entity.User, error) {
	var user entity.User
	err := a.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/me",
		token:  token,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *authClient) UpdateProfile(ctx context.Context, token string, params service.UpdateProfileParams) (*entity.User, error) {
	body := map[string]string{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.PhoneNumber != "" {
		body["phoneNumber"] = params.PhoneNumber
	}
	if params.ProfileImage != "" {
		body["profileImage"] = params.ProfileImage
	}

	var user entity.User
	err := a.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/auth/profile",
		token:  token,
		body:   body,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *authClient) UpdatePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	return a.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/auth/password",
		token:  token,
		body: map[string]string{
			"currentPassword": currentPassword,
			"newPassword":     newPassword,
		},
	})
}

func (a *authClient) Verify(ctx context.Context, email, code string) error {
	return a.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/verify",
		body:   map[string]string{"email": email, "code": code},
	})
}

func (a *authClient) ForgotPassword(ctx context.Context, email string) error {
	return a.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/forgot-password",
		body:   map[string]string{"email": email},
	})
}

func (a *authClient) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return a.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/reset-password",
		body: map[string]string{
			"token":       resetToken,
			"newPassword": newPassword,
		},
	})
}
