package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/nauteik/soa-project-sub001/internal/delivery/context"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products   service.ProductAPI
	categories service.CategoryAPI
	brands     service.BrandAPI
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	products service.ProductAPI,
	categories service.CategoryAPI,
	brands service.BrandAPI,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		products:   products,
		categories: categories,
		brands:     brands,
		logger:     logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse resolves the listing page: products under the merged filter plus
// the sidebar data (brands, breadcrumb and spec fields for the category).
func (srv *catalogService) Browse(ctx context.Context, params usecase.BrowseParams) (*usecase.BrowseResult, error) {
	filter := service.ProductFilter{
		Keyword:      params.Keyword,
		CategorySlug: params.CategorySlug,
		BrandIDs:     params.BrandIDs,
		Specs:        params.Specs,
		Sort:         params.Sort,
		Page:         params.Page,
		Limit:        params.Limit,
	}

	if merged, ok := usecase.MergePriceRanges(params.PriceRanges); ok {
		filter.PriceMin = merged.Min
		filter.PriceMax = merged.Max
	}

	var (
		page *service.ProductPage
		err  error
	)

	if params.CategorySlug != "" {
		page, err = srv.products.ByCategory(ctx, params.CategorySlug, filter)
	} else {
		page, err = srv.products.List(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	result := &usecase.BrowseResult{Products: page}

	brands, err := srv.brands.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load brand filter")
	}
	result.Brands = brands

	if params.CategorySlug != "" {
		roots, err := srv.categories.Hierarchy(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load category hierarchy")
		}
		result.Breadcrumb = entity.Breadcrumb(roots, params.CategorySlug)

		fields, err := srv.categories.Specifications(ctx, params.CategorySlug)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load specification filters")
		}
		result.SpecFields = fields
	}

	srv.log(ctx).Debug("Browsed catalog",
		"category", params.CategorySlug, "keyword", params.Keyword,
		"page", params.Page, "total", page.Total)

	return result, nil
}

func (srv *catalogService) ProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return srv.products.BySlug(ctx, slug)
}

func (srv *catalogService) ProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return srv.products.ByID(ctx, id)
}

func (srv *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	return srv.categories.List(ctx)
}

func (srv *catalogService) Hierarchy(ctx context.Context) ([]*entity.CategoryNode, error) {
	return srv.categories.Hierarchy(ctx)
}

func (srv *catalogService) Brands(ctx context.Context) ([]*entity.Brand, error) {
	return srv.brands.List(ctx)
}
