package impl

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/mocks"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePriceRanges(t *testing.T) {
	cases := []struct {
		name   string
		ranges []usecase.PriceRange
		want   usecase.PriceRange
		ok     bool
	}{
		{
			name: "empty selection means no filter",
			ok:   false,
		},
		{
			name:   "single band",
			ranges: []usecase.PriceRange{{Min: 10000000, Max: 20000000}},
			want:   usecase.PriceRange{Min: 10000000, Max: 20000000},
			ok:     true,
		},
		{
			name: "disjoint bands span min to max",
			ranges: []usecase.PriceRange{
				{Min: 10000000, Max: 15000000},
				{Min: 20000000, Max: 25000000},
			},
			want: usecase.PriceRange{Min: 10000000, Max: 25000000},
			ok:   true,
		},
		{
			name: "unbounded band wins the upper bound",
			ranges: []usecase.PriceRange{
				{Min: 10000000, Max: 15000000},
				{Min: 30000000, Max: 0},
			},
			want: usecase.PriceRange{Min: 10000000, Max: 0},
			ok:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := usecase.MergePriceRanges(tc.ranges)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCatalogService_Browse_MergesPriceBandsIntoFilter(t *testing.T) {
	products := mocks.NewMockProductAPI(t)
	categories := mocks.NewMockCategoryAPI(t)
	brands := mocks.NewMockBrandAPI(t)
	svc := NewCatalogService(products, categories, brands, newDiscardLogger())

	ctx := context.Background()
	wantFilter := service.ProductFilter{
		Keyword:  "gaming",
		PriceMin: 10000000,
		PriceMax: 25000000,
		Page:     1,
		Limit:    12,
	}

	products.On("List", ctx, wantFilter).
		Return(&service.ProductPage{Items: nil, Total: 0, Page: 1, TotalPages: 0}, nil)
	brands.On("List", ctx).Return([]*entity.Brand{{ID: "b-1", Name: "Asus"}}, nil)

	result, err := svc.Browse(ctx, usecase.BrowseParams{
		Keyword: "gaming",
		PriceRanges: []usecase.PriceRange{
			{Min: 10000000, Max: 15000000},
			{Min: 20000000, Max: 25000000},
		},
		Page:  1,
		Limit: 12,
	})
	require.NoError(t, err)
	assert.Len(t, result.Brands, 1)
	assert.Empty(t, result.Breadcrumb)
}

func TestCatalogService_Browse_CategoryLoadsBreadcrumbAndSpecs(t *testing.T) {
	products := mocks.NewMockProductAPI(t)
	categories := mocks.NewMockCategoryAPI(t)
	brands := mocks.NewMockBrandAPI(t)
	svc := NewCatalogService(products, categories, brands, newDiscardLogger())

	ctx := context.Background()
	roots := []*entity.CategoryNode{
		{
			Category: entity.Category{ID: "c-1", Name: "Laptop", Slug: "laptop"},
			Children: []*entity.CategoryNode{
				{Category: entity.Category{ID: "c-2", Name: "Laptop Gaming", Slug: "laptop-gaming"}},
			},
		},
	}

	products.On("ByCategory", ctx, "laptop-gaming", service.ProductFilter{CategorySlug: "laptop-gaming"}).
		Return(&service.ProductPage{}, nil)
	brands.On("List", ctx).Return(nil, nil)
	categories.On("Hierarchy", ctx).Return(roots, nil)
	categories.On("Specifications", ctx, "laptop-gaming").
		Return([]*entity.SpecificationField{{Key: "ram", Label: "RAM"}}, nil)

	result, err := svc.Browse(ctx, usecase.BrowseParams{CategorySlug: "laptop-gaming"})
	require.NoError(t, err)

	require.Len(t, result.Breadcrumb, 2)
	assert.Equal(t, "Laptop", result.Breadcrumb[0].Name)
	assert.Equal(t, "Laptop Gaming", result.Breadcrumb[1].Name)
	require.Len(t, result.SpecFields, 1)
}
