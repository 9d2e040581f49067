// Package service defines the contracts the use cases depend on: one
// interface per backend resource group, plus the client-side stores.
// Implementations live under internal/infra.
package service

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// RegisterParams is the payload for account registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// UpdateProfileParams carries the editable profile fields. Empty fields are
// left unchanged by the backend.
type UpdateProfileParams struct {
	Name         string
	PhoneNumber  string
	ProfileImage string
}

// Credentials is the token+user pair issued on login and register.
type Credentials struct {
	Token string
	User  *entity.User
}

// AuthAPI is the auth resource group. Every call performs exactly one HTTP
// request; failures come back as *apierr.Error.
type AuthAPI interface {
	Register(ctx context.Context, params RegisterParams) (*Credentials, error)
	Login(ctx context.Context, email, password string) (*Credentials, error)

	// Me revalidates a persisted token and returns the current user.
	Me(ctx context.Context, token string) (*entity.User, error)

	UpdateProfile(ctx context.Context, token string, params UpdateProfileParams) (*entity.User, error)
	UpdatePassword(ctx context.Context, token, currentPassword, newPassword string) error

	Verify(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
