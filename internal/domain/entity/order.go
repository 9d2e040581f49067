package entity

import "time"

// OrderStatus transitions are driven entirely by the backend; this side only
// displays the current value and may request a cancel.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipping   OrderStatus = "SHIPPING"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipping, OrderDelivered, OrderCancelled:
		return true
	}

	return false
}

// Cancellable reports whether a cancel request is worth sending at all.
// The backend still has the final say.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}

// Order is a placed order as returned by the order resource.
type Order struct {
	OrderNumber     string        `json:"orderNumber"`
	UserID          string        `json:"userId"`
	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Items           []*OrderItem  `json:"items"`
	ShippingAddress *Address      `json:"shippingAddress"`
	Note            string        `json:"note,omitempty"`
	Subtotal        int64         `json:"subtotal"`
	ShippingFee     int64         `json:"shippingFee"`
	Total           int64         `json:"total"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// OrderItem is a frozen product line; price and discount are captured at
// order time and do not follow later catalog changes.
type OrderItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Price        int64   `json:"price"`
	Discount     float64 `json:"discount"`
	Quantity     int     `json:"quantity"`
}
