package entity

import "math"

// Cart is the server-owned shopping cart. TotalItems and TotalPrice are
// computed by the backend; this side never recomputes them.
type Cart struct {
	UserID     string      `json:"userId"`
	Items      []*CartItem `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice int64       `json:"totalPrice"`
}

// CartItem is one product line inside a cart.
type CartItem struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductSlug     string  `json:"productSlug,omitempty"`
	ProductImage    string  `json:"productImage,omitempty"`
	Price           int64   `json:"price"`
	Discount        float64 `json:"discount"`
	Quantity        int     `json:"quantity"`
	QuantityInStock int     `json:"quantityInStock"`
}

// DiscountedPrice applies the line's percentage discount, same rounding as
// Product.DiscountedPrice.
func (it *CartItem) DiscountedPrice() int64 {
	if it.Discount <= 0 {
		return it.Price
	}

	return int64(math.Round(float64(it.Price) * (1 - it.Discount/100)))
}

// LineTotal is the display amount for one line.
func (it *CartItem) LineTotal() int64 {
	return it.DiscountedPrice() * int64(it.Quantity)
}

// Empty reports whether the cart has no items.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// Item returns the line with the given item id, or nil.
func (c *Cart) Item(itemID string) *CartItem {
	for _, it := range c.Items {
		if it.ID == itemID {
			return it
		}
	}

	return nil
}
