package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	deliverycontext "github.com/nauteik/soa-project-sub001/internal/delivery/context"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const checkoutKeyPrefix = "checkout:"

// checkoutService implements the CheckoutUsecase interface. The selection
// hand-off lives in the session store as its own keyed resource, so the cart
// and checkout pages never share a mutable slot.
type checkoutService struct {
	carts     usecase.CartUsecase
	orders    service.OrderAPI
	addresses service.AddressAPI
	store     service.SessionStore
	ttl       time.Duration
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	carts usecase.CartUsecase,
	orders service.OrderAPI,
	addresses service.AddressAPI,
	store service.SessionStore,
	ttl time.Duration,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		carts:     carts,
		orders:    orders,
		addresses: addresses,
		store:     store,
		ttl:       ttl,
		logger:    logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin records the selected cart item ids as a fresh checkout session.
// Empty selections and ids not present in the live cart are rejected.
func (srv *checkoutService) Begin(ctx context.Context, snapshot *usecase.SessionSnapshot, cartItemIDs []string) (*entity.CheckoutSession, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để thanh toán")
	}

	if len(cartItemIDs) == 0 {
		return nil, apierr.Validation(map[string]string{
			"items": "Vui lòng chọn ít nhất một sản phẩm",
		})
	}

	cart, err := srv.carts.Get(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	for _, id := range cartItemIDs {
		if cart.Item(id) == nil {
			return nil, apierr.Validation(map[string]string{
				"items": "Sản phẩm đã chọn không còn trong giỏ hàng",
			})
		}
	}

	cs := &entity.CheckoutSession{
		ID:          uuid.New().String(),
		UserID:      snapshot.User.ID,
		CartItemIDs: cartItemIDs,
		CreatedAt:   time.Now(),
	}

	if err := srv.persist(ctx, cs); err != nil {
		return nil, errors.Wrap(err, "failed to persist checkout session")
	}

	srv.log(ctx).Info("Checkout started",
		"checkoutID", cs.ID, "selected", len(cartItemIDs))

	return cs, nil
}

// Load resolves everything the checkout page renders. The address list is
// ordered with the default address first so it can be preselected.
func (srv *checkoutService) Load(ctx context.Context, snapshot *usecase.SessionSnapshot, checkoutID string) (*usecase.CheckoutView, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để thanh toán")
	}

	cs, err := srv.load(ctx, snapshot, checkoutID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.carts.Get(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	view := &usecase.CheckoutView{Session: cs}

	for _, id := range cs.CartItemIDs {
		item := cart.Item(id)
		if item == nil {
			// The line was removed since selection; drop it from the view.
			continue
		}

		view.Items = append(view.Items, item)
		view.Subtotal += item.DiscountedPrice() * int64(item.Quantity)
		view.SelectedCount += item.Quantity
	}

	addresses, err := srv.addresses.List(ctx, snapshot.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses")
	}

	sort.SliceStable(addresses, func(i, j int) bool {
		return addresses[i].IsDefault && !addresses[j].IsDefault
	})
	view.Addresses = addresses

	return view, nil
}

// Complete performs exactly one create-order call. Success clears the
// hand-off; failure leaves it intact so the user can retry.
func (srv *checkoutService) Complete(ctx context.Context, snapshot *usecase.SessionSnapshot, checkoutID string, params usecase.CompleteParams) (*entity.Order, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để thanh toán")
	}

	cs, err := srv.load(ctx, snapshot, checkoutID)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if params.AddressID == "" {
		fields["addressId"] = "Vui lòng chọn địa chỉ giao hàng"
	}
	if !params.PaymentMethod.Valid() {
		fields["paymentMethod"] = "Phương thức thanh toán không hợp lệ"
	}
	if !params.AcceptTerms {
		fields["terms"] = "Vui lòng đồng ý với điều khoản sử dụng"
	}
	if len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}

	order, err := srv.orders.Create(ctx, snapshot.Token, service.CreateOrderParams{
		CartItemIDs:   cs.CartItemIDs,
		AddressID:     params.AddressID,
		PaymentMethod: params.PaymentMethod,
		Note:          params.Note,
	})
	if err != nil {
		return nil, err
	}

	if err := srv.store.Delete(ctx, checkoutKeyPrefix+checkoutID); err != nil {
		srv.log(ctx).Warn("Failed to clear completed checkout session",
			"checkoutID", checkoutID, "error", err)
	}

	srv.log(ctx).Info("Order placed",
		"orderNumber", order.OrderNumber, "paymentMethod", params.PaymentMethod)

	return order, nil
}

// Abandon discards the hand-off; absent sessions are a no-op.
func (srv *checkoutService) Abandon(ctx context.Context, snapshot *usecase.SessionSnapshot, checkoutID string) error {
	if checkoutID == "" {
		return nil
	}

	if err := srv.store.Delete(ctx, checkoutKeyPrefix+checkoutID); err != nil {
		return errors.Wrap(err, "failed to abandon checkout session")
	}

	return nil
}

func (srv *checkoutService) persist(ctx context.Context, cs *entity.CheckoutSession) error {
	raw, err := json.Marshal(cs)
	if err != nil {
		return errors.Wrap(err, "failed to encode checkout session")
	}

	return srv.store.Set(ctx, checkoutKeyPrefix+cs.ID, raw, srv.ttl)
}

// load fetches the checkout session and verifies ownership. Expired or
// foreign sessions read as not found.
func (srv *checkoutService) load(ctx context.Context, snapshot *usecase.SessionSnapshot, checkoutID string) (*entity.CheckoutSession, error) {
	notFound := apierr.FromResponse(http.StatusNotFound, "CHECKOUT_NOT_FOUND",
		"Phiên thanh toán đã hết hạn, vui lòng chọn lại sản phẩm")

	if checkoutID == "" {
		return nil, notFound
	}

	raw, err := srv.store.Get(ctx, checkoutKeyPrefix+checkoutID)
	if err != nil {
		if errors.Is(err, service.ErrStoreKeyNotFound) {
			return nil, notFound
		}

		return nil, errors.Wrap(err, "failed to load checkout session")
	}

	var cs entity.CheckoutSession
	if err := json.Unmarshal(raw, &cs); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session")
	}

	if cs.UserID != snapshot.User.ID {
		return nil, notFound
	}

	return &cs, nil
}
