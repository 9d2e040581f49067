package mocks

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCartAPI mocks service.CartAPI.
type MockCartAPI struct {
	mock.Mock
}

// NewMockCartAPI creates a mock wired to the test's lifecycle.
func NewMockCartAPI(t *testing.T) *MockCartAPI {
	m := &MockCartAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartAPI) Get(ctx context.Context, token string) (*entity.Cart, error) {
	args := m.Called(ctx, token)

	return cartArg(args.Get(0)), args.Error(1)
}

func (m *MockCartAPI) Add(ctx context.Context, token, productID string, quantity int) (*entity.Cart, error) {
	args := m.Called(ctx, token, productID, quantity)

	return cartArg(args.Get(0)), args.Error(1)
}

func (m *MockCartAPI) UpdateItem(ctx context.Context, token, itemID string, quantity int) (*entity.Cart, error) {
	args := m.Called(ctx, token, itemID, quantity)

	return cartArg(args.Get(0)), args.Error(1)
}

func (m *MockCartAPI) RemoveItem(ctx context.Context, token, itemID string) (*entity.Cart, error) {
	args := m.Called(ctx, token, itemID)

	return cartArg(args.Get(0)), args.Error(1)
}

func (m *MockCartAPI) Clear(ctx context.Context, token string) (*entity.Cart, error) {
	args := m.Called(ctx, token)

	return cartArg(args.Get(0)), args.Error(1)
}

func (m *MockCartAPI) Count(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)

	return args.Int(0), args.Error(1)
}

func cartArg(v any) *entity.Cart {
	if v == nil {
		return nil
	}

	return v.(*entity.Cart)
}
