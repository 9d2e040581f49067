package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/nauteik/soa-project-sub001/internal/delivery/context"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"
)

// cartService implements the CartUsecase interface. Every mutation returns
// the backend's authoritative cart; nothing is recomputed locally.
type cartService struct {
	cartAPI  service.CartAPI
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartAPI service.CartAPI,
	sessions usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartAPI:  cartAPI,
		sessions: sessions,
		logger:   logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAuth short-circuits unauthenticated callers before any network
// call is issued.
func (srv *cartService) requireAuth(snapshot *usecase.SessionSnapshot) error {
	if !snapshot.Authenticated() {
		return apierr.Unauthenticated("Vui lòng đăng nhập để sử dụng giỏ hàng")
	}

	return nil
}

// handleRejection signs the session out when the backend rejected its
// credential. The session service guarantees at most one live removal, so
// concurrent failing calls do not stack sign-outs.
func (srv *cartService) handleRejection(ctx context.Context, snapshot *usecase.SessionSnapshot, err error) {
	if !apierr.IsAuth(err) {
		return
	}

	removed, invErr := srv.sessions.Invalidate(ctx, snapshot.SessionID)
	if invErr != nil {
		srv.log(ctx).Warn("Failed to invalidate rejected session",
			"sessionID", snapshot.SessionID, "error", invErr)

		return
	}

	if removed {
		srv.log(ctx).Info("Signed out after cart credential rejection", "sessionID", snapshot.SessionID)
	}
}

func (srv *cartService) Get(ctx context.Context, snapshot *usecase.SessionSnapshot) (*entity.Cart, error) {
	if err := srv.requireAuth(snapshot); err != nil {
		return nil, err
	}

	cart, err := srv.cartAPI.Get(ctx, snapshot.Token)
	if err != nil {
		srv.handleRejection(ctx, snapshot, err)

		return nil, err
	}

	return cart, nil
}

func (srv *cartService) Add(ctx context.Context, snapshot *usecase.SessionSnapshot, productID string, quantity int) (*entity.Cart, error) {
	if err := srv.requireAuth(snapshot); err != nil {
		return nil, err
	}

	if quantity < 1 {
		return nil, apierr.Validation(map[string]string{
			"quantity": "Số lượng phải lớn hơn 0",
		})
	}

	cart, err := srv.cartAPI.Add(ctx, snapshot.Token, productID, quantity)
	if err != nil {
		srv.handleRejection(ctx, snapshot, err)

		return nil, err
	}

	srv.log(ctx).Debug("Added product to cart",
		"productID", productID, "quantity", quantity, "totalItems", cart.TotalItems)

	return cart, nil
}

func (srv *cartService) UpdateItem(ctx context.Context, snapshot *usecase.SessionSnapshot, itemID string, quantity int) (*entity.Cart, error) {
	if err := srv.requireAuth(snapshot); err != nil {
		return nil, err
	}

	if quantity < 1 {
		return nil, apierr.Validation(map[string]string{
			"quantity": "Số lượng phải lớn hơn 0",
		})
	}

	cart, err := srv.cartAPI.UpdateItem(ctx, snapshot.Token, itemID, quantity)
	if err != nil {
		srv.handleRejection(ctx, snapshot, err)

		return nil, err
	}

	return cart, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, snapshot *usecase.SessionSnapshot, itemID string) (*entity.Cart, error) {
	if err := srv.requireAuth(snapshot); err != nil {
		return nil, err
	}

	cart, err := srv.cartAPI.RemoveItem(ctx, snapshot.Token, itemID)
	if err != nil {
		srv.handleRejection(ctx, snapshot, err)

		return nil, err
	}

	return cart, nil
}

func (srv *cartService) Clear(ctx context.Context, snapshot *usecase.SessionSnapshot) (*entity.Cart, error) {
	if err := srv.requireAuth(snapshot); err != nil {
		return nil, err
	}

	cart, err := srv.cartAPI.Clear(ctx, snapshot.Token)
	if err != nil {
		srv.handleRejection(ctx, snapshot, err)

		return nil, err
	}

	return cart, nil
}

// Count reports the badge number. Signed-out sessions read zero without a
// network call; backend totals are passed through untouched.
func (srv *cartService) Count(ctx context.Context, snapshot *usecase.SessionSnapshot) (int, error) {
	if !snapshot.Authenticated() {
		return 0, nil
	}

	count, err := srv.cartAPI.Count(ctx, snapshot.Token)
	if err != nil {
		srv.handleRejection(ctx, snapshot, err)

		return 0, err
	}

	return count, nil
}
