package service

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// CartAPI is the cart resource group. Every mutating call returns the
// server's authoritative cart; callers must replace their copy with it.
type CartAPI interface {
	Get(ctx context.Context, token string) (*entity.Cart, error)
	Add(ctx context.Context, token, productID string, quantity int) (*entity.Cart, error)
	UpdateItem(ctx context.Context, token, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, token, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context, token string) (*entity.Cart, error)
	Count(ctx context.Context, token string) (int, error)
}
