package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// CartUsecase mirrors the server-side cart for the signed-in user. Every
// mutation replaces the local view with the backend's authoritative cart;
// totals are never recomputed here.
type CartUsecase interface {
	Get(ctx context.Context, snapshot *SessionSnapshot) (*entity.Cart, error)

	// Add rejects unauthenticated callers before any network call.
	Add(ctx context.Context, snapshot *SessionSnapshot, productID string, quantity int) (*entity.Cart, error)

	UpdateItem(ctx context.Context, snapshot *SessionSnapshot, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, snapshot *SessionSnapshot, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context, snapshot *SessionSnapshot) (*entity.Cart, error)
	Count(ctx context.Context, snapshot *SessionSnapshot) (int, error)
}
