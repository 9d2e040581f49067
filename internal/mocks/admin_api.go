package mocks

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockUserAdminAPI mocks service.UserAdminAPI.
type MockUserAdminAPI struct {
	mock.Mock
}

// NewMockUserAdminAPI creates a mock wired to the test's lifecycle.
func NewMockUserAdminAPI(t *testing.T) *MockUserAdminAPI {
	m := &MockUserAdminAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserAdminAPI) List(ctx context.Context, token string, page, limit int) (*service.UserPage, error) {
	args := m.Called(ctx, token, page, limit)

	if v := args.Get(0); v != nil {
		return v.(*service.UserPage), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserAdminAPI) UpdateRole(ctx context.Context, token, userID string, role entity.Role) (*entity.User, error) {
	args := m.Called(ctx, token, userID, role)

	return userArg(args.Get(0)), args.Error(1)
}

// MockUploadAPI mocks service.UploadAPI.
type MockUploadAPI struct {
	mock.Mock
}

// NewMockUploadAPI creates a mock wired to the test's lifecycle.
func NewMockUploadAPI(t *testing.T) *MockUploadAPI {
	m := &MockUploadAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUploadAPI) UploadImage(ctx context.Context, token, name string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, token, name, content, contentType)

	return args.String(0), args.Error(1)
}

func (m *MockUploadAPI) DeleteImage(ctx context.Context, token, name string) error {
	args := m.Called(ctx, token, name)

	return args.Error(0)
}
