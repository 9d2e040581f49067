package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// CheckoutView is everything the checkout page renders: the hand-off, the
// selected cart lines, and the saved addresses with the default first.
type CheckoutView struct {
	Session       *entity.CheckoutSession
	Items         []*entity.CartItem
	Addresses     []*entity.Address
	Subtotal      int64
	SelectedCount int
}

// CompleteParams is the checkout submission.
type CompleteParams struct {
	AddressID     string
	PaymentMethod entity.PaymentMethod
	Note          string
	AcceptTerms   bool
}

// CheckoutUsecase carries the cart-to-checkout hand-off as an explicit
// session resource instead of a shared storage key.
type CheckoutUsecase interface {
	// Begin records the selected cart item ids; empty selections are
	// rejected so the cart page cannot proceed with nothing selected.
	Begin(ctx context.Context, snapshot *SessionSnapshot, cartItemIDs []string) (*entity.CheckoutSession, error)

	Load(ctx context.Context, snapshot *SessionSnapshot, checkoutID string) (*CheckoutView, error)

	// Complete performs exactly one create-order call. Success clears the
	// hand-off; failure leaves it intact for retry.
	Complete(ctx context.Context, snapshot *SessionSnapshot, checkoutID string, params CompleteParams) (*entity.Order, error)

	Abandon(ctx context.Context, snapshot *SessionSnapshot, checkoutID string) error
}
