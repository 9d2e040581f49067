package service

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// ProductFilter is the query for product listing. Zero values mean "not
// filtered"; a negative PriceMax means unbounded.
type ProductFilter struct {
	Keyword      string
	CategorySlug string
	BrandIDs     []string
	PriceMin     int64
	PriceMax     int64
	Specs        map[string]string
	Sort         string
	Page         int
	Limit        int
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items      []*entity.Product
	Total      int
	Page       int
	TotalPages int
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name            string
	Description     string
	Price           int64
	Discount        float64
	QuantityInStock int
	CategoryID      string
	BrandID         string
	Images          []string
	Specifications  map[string]string
}

// ProductAPI is the products resource group.
type ProductAPI interface {
	List(ctx context.Context, filter ProductFilter) (*ProductPage, error)
	ByID(ctx context.Context, id string) (*entity.Product, error)
	BySlug(ctx context.Context, slug string) (*entity.Product, error)
	ByCategory(ctx context.Context, categorySlug string, filter ProductFilter) (*ProductPage, error)
	Specifications(ctx context.Context, id string) (map[string]string, error)

	// Back-office operations; token must belong to a staff account.
	Create(ctx context.Context, token string, input ProductInput) (*entity.Product, error)
	Update(ctx context.Context, token, id string, input ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, token, id string) error
}

// CategoryAPI is the categories resource group.
type CategoryAPI interface {
	List(ctx context.Context) ([]*entity.Category, error)
	BySlug(ctx context.Context, slug string) (*entity.Category, error)
	Hierarchy(ctx context.Context) ([]*entity.CategoryNode, error)
	Specifications(ctx context.Context, slug string) ([]*entity.SpecificationField, error)
}

// BrandInput is the admin brand payload.
type BrandInput struct {
	Name string
	Logo string
}

// BrandAPI is the brands resource group.
type BrandAPI interface {
	List(ctx context.Context) ([]*entity.Brand, error)
	Create(ctx context.Context, token string, input BrandInput) (*entity.Brand, error)
	Delete(ctx context.Context, token, id string) error
}
