package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

// PriceRange is one selectable price-filter band. Max <= 0 means unbounded.
type PriceRange struct {
	Min int64
	Max int64
}

// MergePriceRanges collapses the selected bands into one backend filter:
// the lowest lower bound and the highest upper bound. Any unbounded band
// makes the merged upper bound unbounded. ok is false for an empty
// selection, meaning no price filter at all.
func MergePriceRanges(ranges []PriceRange) (merged PriceRange, ok bool) {
	if len(ranges) == 0 {
		return PriceRange{}, false
	}

	merged = ranges[0]
	unbounded := merged.Max <= 0

	for _, r := range ranges[1:] {
		if r.Min < merged.Min {
			merged.Min = r.Min
		}
		if r.Max <= 0 {
			unbounded = true
		} else if r.Max > merged.Max {
			merged.Max = r.Max
		}
	}

	if unbounded {
		merged.Max = 0
	}

	return merged, true
}

// BrowseParams is the storefront listing query after form decoding.
type BrowseParams struct {
	Keyword      string
	CategorySlug string
	BrandIDs     []string
	PriceRanges  []PriceRange
	Specs        map[string]string
	Sort         string
	Page         int
	Limit        int
}

// BrowseResult is everything the listing page renders.
type BrowseResult struct {
	Products   *service.ProductPage
	Breadcrumb []*entity.Category
	Brands     []*entity.Brand
	SpecFields []*entity.SpecificationField
}

// CatalogUsecase serves the public product catalog.
type CatalogUsecase interface {
	Browse(ctx context.Context, params BrowseParams) (*BrowseResult, error)
	ProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	ProductByID(ctx context.Context, id string) (*entity.Product, error)
	Categories(ctx context.Context) ([]*entity.Category, error)
	Hierarchy(ctx context.Context) ([]*entity.CategoryNode, error)
	Brands(ctx context.Context) ([]*entity.Brand, error)
}
