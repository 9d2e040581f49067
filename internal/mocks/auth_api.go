// Package mocks holds testify mocks of the domain service contracts.
package mocks

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthAPI mocks service.AuthAPI.
type MockAuthAPI struct {
	mock.Mock
}

// NewMockAuthAPI creates a mock wired to the test's lifecycle.
func NewMockAuthAPI(t *testing.T) *MockAuthAPI {
	m := &MockAuthAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthAPI) Register(ctx context.Context, params service.RegisterParams) (*service.Credentials, error) {
	args := m.Called(ctx, params)

	return credsArg(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*service.Credentials, error) {
	args := m.Called(ctx, email, password)

	return credsArg(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) Me(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)

	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) UpdateProfile(ctx context.Context, token string, params service.UpdateProfileParams) (*entity.User, error) {
	args := m.Called(ctx, token, params)

	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockAuthAPI) UpdatePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	args := m.Called(ctx, token, currentPassword, newPassword)

	return args.Error(0)
}

func (m *MockAuthAPI) Verify(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)

	return args.Error(0)
}

func (m *MockAuthAPI) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *MockAuthAPI) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)

	return args.Error(0)
}

func credsArg(v any) *service.Credentials {
	if v == nil {
		return nil
	}

	return v.(*service.Credentials)
}

func userArg(v any) *entity.User {
	if v == nil {
		return nil
	}

	return v.(*entity.User)
}
