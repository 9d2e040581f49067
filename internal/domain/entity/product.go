package entity

import (
	"math"
	"time"
)

// Product is a catalog item. Specifications is an open map of
// category-defined attributes (RAM, CPU, ...) used for filtering and display.
type Product struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description,omitempty"`
	Price           int64             `json:"price"`    // VND, no decimals
	Discount        float64           `json:"discount"` // percentage, 0..100
	QuantityInStock int               `json:"quantityInStock"`
	CategoryID      string            `json:"categoryId,omitempty"`
	BrandID         string            `json:"brandId,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// DiscountedPrice is the only price arithmetic done on this side:
// price * (1 - discount/100), rounded to whole VND. Rounding, not
// truncation: the float product can land just under the exact integer.
func (p *Product) DiscountedPrice() int64 {
	if p.Discount <= 0 {
		return p.Price
	}

	return int64(math.Round(float64(p.Price) * (1 - p.Discount/100)))
}

// InStock reports whether the product can still be added to a cart.
func (p *Product) InStock() bool {
	return p.QuantityInStock > 0
}

// SpecificationField describes one category-defined attribute, as returned by
// the category specifications endpoint.
type SpecificationField struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Unit     string   `json:"unit,omitempty"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}
