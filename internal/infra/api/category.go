package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type categoryClient struct {
	c *Client
}

// NewCategoryAPI builds the categories resource client.
func NewCategoryAPI(c *Client) service.CategoryAPI {
	return &categoryClient{c: c}
}

func (cc *categoryClient) List(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	err := cc.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/categories",
		out:    &categories,
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (cc *categoryClient) BySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	err := cc.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/categories/slug/" + url.PathEscape(slug),
		out:    &category,
	})
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (cc *categoryClient) Hierarchy(ctx context.Context) ([]*entity.CategoryNode, error) {
	var roots []*entity.CategoryNode
	err := cc.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/categories/hierarchy",
		out:    &roots,
	})
	if err != nil {
		return nil, err
	}

	return roots, nil
}

func (cc *categoryClient) Specifications(ctx context.Context, slug string) ([]*entity.SpecificationField, error) {
	var fields []*entity.SpecificationField
	err := cc.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/categories/" + url.PathEscape(slug) + "/specifications",
		out:    &fields,
	})
	if err != nil {
		return nil, err
	}

	return fields, nil
}
