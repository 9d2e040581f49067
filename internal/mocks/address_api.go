package mocks

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockAddressAPI mocks service.AddressAPI.
type MockAddressAPI struct {
	mock.Mock
}

// NewMockAddressAPI creates a mock wired to the test's lifecycle.
func NewMockAddressAPI(t *testing.T) *MockAddressAPI {
	m := &MockAddressAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressAPI) List(ctx context.Context, token string) ([]*entity.Address, error) {
	args := m.Called(ctx, token)

	if v := args.Get(0); v != nil {
		return v.([]*entity.Address), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAddressAPI) Create(ctx context.Context, token string, input service.AddressInput) (*entity.Address, error) {
	args := m.Called(ctx, token, input)

	return addressArg(args.Get(0)), args.Error(1)
}

func (m *MockAddressAPI) Update(ctx context.Context, token, id string, input service.AddressInput) (*entity.Address, error) {
	args := m.Called(ctx, token, id, input)

	return addressArg(args.Get(0)), args.Error(1)
}

func (m *MockAddressAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)

	return args.Error(0)
}

func (m *MockAddressAPI) SetDefault(ctx context.Context, token, id string) (*entity.Address, error) {
	args := m.Called(ctx, token, id)

	return addressArg(args.Get(0)), args.Error(1)
}

func (m *MockAddressAPI) GetDefault(ctx context.Context, token string) (*entity.Address, error) {
	args := m.Called(ctx, token)

	return addressArg(args.Get(0)), args.Error(1)
}

func addressArg(v any) *entity.Address {
	if v == nil {
		return nil
	}

	return v.(*entity.Address)
}
