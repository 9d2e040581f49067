package mocks

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockProductAPI mocks service.ProductAPI.
type MockProductAPI struct {
	mock.Mock
}

// NewMockProductAPI creates a mock wired to the test's lifecycle.
func NewMockProductAPI(t *testing.T) *MockProductAPI {
	m := &MockProductAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductAPI) List(ctx context.Context, filter service.ProductFilter) (*service.ProductPage, error) {
	args := m.Called(ctx, filter)

	return productPageArg(args.Get(0)), args.Error(1)
}

func (m *MockProductAPI) ByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)

	return productArg(args.Get(0)), args.Error(1)
}

func (m *MockProductAPI) BySlug(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)

	return productArg(args.Get(0)), args.Error(1)
}

func (m *MockProductAPI) ByCategory(ctx context.Context, categorySlug string, filter service.ProductFilter) (*service.ProductPage, error) {
	args := m.Called(ctx, categorySlug, filter)

	return productPageArg(args.Get(0)), args.Error(1)
}

func (m *MockProductAPI) Specifications(ctx context.Context, id string) (map[string]string, error) {
	args := m.Called(ctx, id)

	if v := args.Get(0); v != nil {
		return v.(map[string]string), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductAPI) Create(ctx context.Context, token string, input service.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, token, input)

	return productArg(args.Get(0)), args.Error(1)
}

func (m *MockProductAPI) Update(ctx context.Context, token, id string, input service.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, token, id, input)

	return productArg(args.Get(0)), args.Error(1)
}

func (m *MockProductAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)

	return args.Error(0)
}

// MockCategoryAPI mocks service.CategoryAPI.
type MockCategoryAPI struct {
	mock.Mock
}

// NewMockCategoryAPI creates a mock wired to the test's lifecycle.
func NewMockCategoryAPI(t *testing.T) *MockCategoryAPI {
	m := &MockCategoryAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryAPI) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	if v := args.Get(0); v != nil {
		return v.([]*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryAPI) BySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)

	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryAPI) Hierarchy(ctx context.Context) ([]*entity.CategoryNode, error) {
	args := m.Called(ctx)

	if v := args.Get(0); v != nil {
		return v.([]*entity.CategoryNode), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryAPI) Specifications(ctx context.Context, slug string) ([]*entity.SpecificationField, error) {
	args := m.Called(ctx, slug)

	if v := args.Get(0); v != nil {
		return v.([]*entity.SpecificationField), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockBrandAPI mocks service.BrandAPI.
type MockBrandAPI struct {
	mock.Mock
}

// NewMockBrandAPI creates a mock wired to the test's lifecycle.
func NewMockBrandAPI(t *testing.T) *MockBrandAPI {
	m := &MockBrandAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBrandAPI) List(ctx context.Context) ([]*entity.Brand, error) {
	args := m.Called(ctx)

	if v := args.Get(0); v != nil {
		return v.([]*entity.Brand), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBrandAPI) Create(ctx context.Context, token string, input service.BrandInput) (*entity.Brand, error) {
	args := m.Called(ctx, token, input)

	if v := args.Get(0); v != nil {
		return v.(*entity.Brand), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBrandAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)

	return args.Error(0)
}

func productArg(v any) *entity.Product {
	if v == nil {
		return nil
	}

	return v.(*entity.Product)
}

func productPageArg(v any) *service.ProductPage {
	if v == nil {
		return nil
	}

	return v.(*service.ProductPage)
}
