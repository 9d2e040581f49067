package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultPageSize = 12

// CatalogHandler holds dependencies for the public catalog pages.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	carts   usecase.CartUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, carts usecase.CartUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		carts:   carts,
		logger:  logger,
	}
}

type homeData struct {
	Featured   []*entity.Product
	Categories []*entity.CategoryNode
}

// Home renders the landing page with the newest products.
func (h *CatalogHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.catalog.Browse(ctx, usecase.BrowseParams{
		Sort:  "newest",
		Page:  1,
		Limit: 8,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	hierarchy, err := h.catalog.Hierarchy(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, h.carts, homeData{
		Featured:   result.Products.Items,
		Categories: hierarchy,
	})

	return c.Render(http.StatusOK, "home.html", page)
}

type productsData struct {
	Result *usecase.BrowseResult
	Params usecase.BrowseParams
	Query  string
}

// Products renders the filtered product listing.
func (h *CatalogHandler) Products(c echo.Context) error {
	params := browseParamsFromQuery(c)

	result, err := h.catalog.Browse(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	page := newPage(c, h.carts, productsData{
		Result: result,
		Params: params,
		Query:  c.QueryString(),
	})

	return c.Render(http.StatusOK, "products.html", page)
}

type productDetailData struct {
	Product    *entity.Product
	Breadcrumb []*entity.Category
}

// ProductDetail renders one product page.
func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalog.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	var breadcrumb []*entity.Category
	if product.CategoryID != "" {
		if roots, err := h.catalog.Hierarchy(ctx); err == nil {
			breadcrumb = breadcrumbForCategoryID(roots, product.CategoryID)
		}
	}

	page := newPage(c, h.carts, productDetailData{
		Product:    product,
		Breadcrumb: breadcrumb,
	})

	return c.Render(http.StatusOK, "product_detail.html", page)
}

// browseParamsFromQuery decodes the listing query string. Price bands come
// as repeated "min-max" values; an empty max means unbounded.
func browseParamsFromQuery(c echo.Context) usecase.BrowseParams {
	params := usecase.BrowseParams{
		Keyword:      c.QueryParam("q"),
		CategorySlug: c.QueryParam("category"),
		Sort:         c.QueryParam("sort"),
		Page:         1,
		Limit:        defaultPageSize,
	}

	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		params.Page = p
	}

	query := c.QueryParams()
	params.BrandIDs = query["brand"]

	for _, band := range query["price"] {
		lo, hi, ok := strings.Cut(band, "-")
		if !ok {
			continue
		}

		var r usecase.PriceRange
		r.Min, _ = strconv.ParseInt(lo, 10, 64)
		r.Max, _ = strconv.ParseInt(hi, 10, 64)
		params.PriceRanges = append(params.PriceRanges, r)
	}

	for key, values := range query {
		if spec, ok := strings.CutPrefix(key, "spec."); ok && len(values) > 0 {
			if params.Specs == nil {
				params.Specs = map[string]string{}
			}
			params.Specs[spec] = values[0]
		}
	}

	return params
}

func breadcrumbForCategoryID(roots []*entity.CategoryNode, id string) []*entity.Category {
	slug := findCategorySlug(roots, id)
	if slug == "" {
		return nil
	}

	return entity.Breadcrumb(roots, slug)
}

func findCategorySlug(nodes []*entity.CategoryNode, id string) string {
	for _, node := range nodes {
		if node.ID == id {
			return node.Slug
		}
		if slug := findCategorySlug(node.Children, id); slug != "" {
			return slug
		}
	}

	return ""
}
