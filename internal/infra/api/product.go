package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type productClient struct {
	c *Client
}

// NewProductAPI builds the products resource client.
func NewProductAPI(c *Client) service.ProductAPI {
	return &productClient{c: c}
}

// productPage is the wire shape of a paginated product listing.
type productPage struct {
	Items      []*entity.Product `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func filterQuery(filter service.ProductFilter) url.Values {
	q := url.Values{}
	if filter.Keyword != "" {
		q.Set("keyword", filter.Keyword)
	}
	if filter.CategorySlug != "" {
		q.Set("category", filter.CategorySlug)
	}
	if len(filter.BrandIDs) > 0 {
		q.Set("brands", strings.Join(filter.BrandIDs, ","))
	}
	if filter.PriceMin > 0 {
		q.Set("priceMin", strconv.FormatInt(filter.PriceMin, 10))
	}
	if filter.PriceMax > 0 {
		q.Set("priceMax", strconv.FormatInt(filter.PriceMax, 10))
	}
	for key, value := range filter.Specs {
		q.Set("spec."+key, value)
	}
	if filter.Sort != "" {
		q.Set("sort", filter.Sort)
	}

	return pageQuery(q, filter.Page, filter.Limit)
}

func (p *productClient) List(ctx context.Context, filter service.ProductFilter) (*service.ProductPage, error) {
	var page productPage
	err := p.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products",
		query:  filterQuery(filter),
		out:    &page,
	})
	if err != nil {
		return nil, err
	}

	return &service.ProductPage{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}, nil
}

func (p *productClient) ByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := p.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + url.PathEscape(id),
		out:    &product,
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) BySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	err := p.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/slug/" + url.PathEscape(slug),
		out:    &product,
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) ByCategory(ctx context.Context, categorySlug string, filter service.ProductFilter) (*service.ProductPage, error) {
	var page productPage
	err := p.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/category/" + url.PathEscape(categorySlug),
		query:  filterQuery(filter),
		out:    &page,
	})
	if err != nil {
		return nil, err
	}

	return &service.ProductPage{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}, nil
}

func (p *productClient) Specifications(ctx context.Context, id string) (map[string]string, error) {
	var specs map[string]string
	err := p.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + url.PathEscape(id) + "/specifications",
		out:    &specs,
	})
	if err != nil {
		return nil, err
	}

	return specs, nil
}

func productBody(input service.ProductInput) map[string]any {
	return map[string]any{
		"name":            input.Name,
		"description":     input.Description,
		"price":           input.Price,
		"discount":        input.Discount,
		"quantityInStock": input.QuantityInStock,
		"categoryId":      input.CategoryID,
		"brandId":         input.BrandID,
		"images":          input.Images,
		"specifications":  input.Specifications,
	}
}

func (p *productClient) Create(ctx context.Context, token string, input service.ProductInput) (*entity.Product, error) {
	var product entity.Product
	err := p.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/products",
		token:  token,
		body:   productBody(input),
		out:    &product,
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) Update(ctx context.Context, token, id string, input service.ProductInput) (*entity.Product, error) {
	var product entity.Product
	err := p.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/products/" + url.PathEscape(id),
		token:  token,
		body:   productBody(input),
		out:    &product,
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) Delete(ctx context.Context, token, id string) error {
	return p.c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/products/" + url.PathEscape(id),
		token:  token,
	})
}
