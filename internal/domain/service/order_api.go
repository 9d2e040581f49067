package service

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// CreateOrderParams is the one checkout submission payload.
type CreateOrderParams struct {
	CartItemIDs   []string
	AddressID     string
	PaymentMethod entity.PaymentMethod
	Note          string
}

// OrderListFilter narrows the back-office order listing.
type OrderListFilter struct {
	Status entity.OrderStatus
	Page   int
	Limit  int
}

// OrderPage is one page of the back-office order listing.
type OrderPage struct {
	Items      []*entity.Order
	Total      int
	Page       int
	TotalPages int
}

// OrderAPI is the orders resource group.
type OrderAPI interface {
	List(ctx context.Context, token string) ([]*entity.Order, error)
	Create(ctx context.Context, token string, params CreateOrderParams) (*entity.Order, error)
	ByNumber(ctx context.Context, token, orderNumber string) (*entity.Order, error)
	Cancel(ctx context.Context, token, orderNumber string) (*entity.Order, error)

	// Back-office operations.
	ListAll(ctx context.Context, token string, filter OrderListFilter) (*OrderPage, error)
	UpdateStatus(ctx context.Context, token, orderNumber string, status entity.OrderStatus) (*entity.Order, error)
}
