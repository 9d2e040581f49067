package mocks

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockOrderAPI mocks service.OrderAPI.
type MockOrderAPI struct {
	mock.Mock
}

// NewMockOrderAPI creates a mock wired to the test's lifecycle.
func NewMockOrderAPI(t *testing.T) *MockOrderAPI {
	m := &MockOrderAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderAPI) List(ctx context.Context, token string) ([]*entity.Order, error) {
	args := m.Called(ctx, token)

	if v := args.Get(0); v != nil {
		return v.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderAPI) Create(ctx context.Context, token string, params service.CreateOrderParams) (*entity.Order, error) {
	args := m.Called(ctx, token, params)

	return orderArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderAPI) ByNumber(ctx context.Context, token, orderNumber string) (*entity.Order, error) {
	args := m.Called(ctx, token, orderNumber)

	return orderArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderAPI) Cancel(ctx context.Context, token, orderNumber string) (*entity.Order, error) {
	args := m.Called(ctx, token, orderNumber)

	return orderArg(args.Get(0)), args.Error(1)
}

func (m *MockOrderAPI) ListAll(ctx context.Context, token string, filter service.OrderListFilter) (*service.OrderPage, error) {
	args := m.Called(ctx, token, filter)

	if v := args.Get(0); v != nil {
		return v.(*service.OrderPage), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderAPI) UpdateStatus(ctx context.Context, token, orderNumber string, status entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, token, orderNumber, status)

	return orderArg(args.Get(0)), args.Error(1)
}

func orderArg(v any) *entity.Order {
	if v == nil {
		return nil
	}

	return v.(*entity.Order)
}
