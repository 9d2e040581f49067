package impl

import (
	"context"
	"testing"
	"time"

	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/infra/storage"
	"github.com/nauteik/soa-project-sub001/internal/mocks"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc       usecase.CheckoutUsecase
	cartAPI   *mocks.MockCartAPI
	orders    *mocks.MockOrderAPI
	addresses *mocks.MockAddressAPI
	store     service.SessionStore
	snap      *usecase.SessionSnapshot
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	cartAPI := mocks.NewMockCartAPI(t)
	carts, _, snap := signedInFixture(t, cartAPI)

	orders := mocks.NewMockOrderAPI(t)
	addresses := mocks.NewMockAddressAPI(t)
	store := storage.NewMemoryStore()

	return &checkoutFixture{
		svc:       NewCheckoutService(carts, orders, addresses, store, 30*time.Minute, newDiscardLogger()),
		cartAPI:   cartAPI,
		orders:    orders,
		addresses: addresses,
		store:     store,
		snap:      snap,
	}
}

func serverCart() *entity.Cart {
	return &entity.Cart{
		UserID: "u-1",
		Items: []*entity.CartItem{
			{ID: "i-1", ProductID: "p-1", Price: 20000000, Discount: 10, Quantity: 1},
			{ID: "i-2", ProductID: "p-2", Price: 15000000, Quantity: 2},
			{ID: "i-3", ProductID: "p-3", Price: 5000000, Quantity: 1},
		},
		TotalItems: 4,
		TotalPrice: 55000000,
	}
}

func TestCheckoutService_Begin_RejectsEmptySelection(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Begin(context.Background(), f.snap, nil)
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestCheckoutService_Begin_RejectsUnknownCartLines(t *testing.T) {
	f := newCheckoutFixture(t)
	f.cartAPI.On("Get", context.Background(), "tok-1").Return(serverCart(), nil)

	_, err := f.svc.Begin(context.Background(), f.snap, []string{"i-1", "i-404"})
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestCheckoutService_Load_SelectedLinesAndDefaultFirst(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.cartAPI.On("Get", ctx, "tok-1").Return(serverCart(), nil)

	cs, err := f.svc.Begin(ctx, f.snap, []string{"i-1", "i-2"})
	require.NoError(t, err)

	f.addresses.On("List", ctx, "tok-1").Return([]*entity.Address{
		{ID: "a-1", FullName: "Home"},
		{ID: "a-2", FullName: "Office", IsDefault: true},
	}, nil)

	view, err := f.svc.Load(ctx, f.snap, cs.ID)
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	// 20000000 with 10% off plus two full-price lines of 15000000.
	assert.Equal(t, int64(18000000+30000000), view.Subtotal)
	assert.Equal(t, 3, view.SelectedCount)
	assert.Equal(t, "a-2", view.Addresses[0].ID)
}

func TestCheckoutService_Load_ExpiredSessionIsNotFound(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Load(context.Background(), f.snap, "gone")
	require.Error(t, err)
	assert.Equal(t, apierr.KindRequest, apierr.KindOf(err))
}

func TestCheckoutService_Complete_SubmitsOnceAndClearsHandOff(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.cartAPI.On("Get", ctx, "tok-1").Return(serverCart(), nil)

	cs, err := f.svc.Begin(ctx, f.snap, []string{"i-1", "i-2"})
	require.NoError(t, err)

	wantParams := service.CreateOrderParams{
		CartItemIDs:   []string{"i-1", "i-2"},
		AddressID:     "a-2",
		PaymentMethod: entity.PaymentCOD,
		Note:          "Giao giờ hành chính",
	}
	f.orders.On("Create", ctx, "tok-1", wantParams).
		Return(&entity.Order{OrderNumber: "ORD-2024-0001", Total: 48000000}, nil).
		Once()

	order, err := f.svc.Complete(ctx, f.snap, cs.ID, usecase.CompleteParams{
		AddressID:     "a-2",
		PaymentMethod: entity.PaymentCOD,
		Note:          "Giao giờ hành chính",
		AcceptTerms:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-0001", order.OrderNumber)

	// The hand-off is gone: the success page cannot re-submit.
	_, err = f.store.Get(ctx, "checkout:"+cs.ID)
	assert.ErrorIs(t, err, service.ErrStoreKeyNotFound)
}

func TestCheckoutService_Complete_FailureKeepsHandOffForRetry(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.cartAPI.On("Get", ctx, "tok-1").Return(serverCart(), nil)

	cs, err := f.svc.Begin(ctx, f.snap, []string{"i-1"})
	require.NoError(t, err)

	f.orders.On("Create", ctx, "tok-1", service.CreateOrderParams{
		CartItemIDs:   []string{"i-1"},
		AddressID:     "a-1",
		PaymentMethod: entity.PaymentVNPay,
	}).Return(nil, apierr.FromResponse(500, "INTERNAL", ""))

	_, err = f.svc.Complete(ctx, f.snap, cs.ID, usecase.CompleteParams{
		AddressID:     "a-1",
		PaymentMethod: entity.PaymentVNPay,
		AcceptTerms:   true,
	})
	require.Error(t, err)

	_, err = f.store.Get(ctx, "checkout:"+cs.ID)
	assert.NoError(t, err)
}

func TestCheckoutService_Complete_ValidatesSubmission(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.cartAPI.On("Get", ctx, "tok-1").Return(serverCart(), nil)

	cs, err := f.svc.Begin(ctx, f.snap, []string{"i-1"})
	require.NoError(t, err)

	_, err = f.svc.Complete(ctx, f.snap, cs.ID, usecase.CompleteParams{
		PaymentMethod: "WIRE",
	})
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	fields := apiErr.Fields()
	assert.Contains(t, fields, "addressId")
	assert.Contains(t, fields, "paymentMethod")
	assert.Contains(t, fields, "terms")
}

func TestCheckoutService_Load_RejectsForeignSession(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.cartAPI.On("Get", ctx, "tok-1").Return(serverCart(), nil)

	cs, err := f.svc.Begin(ctx, f.snap, []string{"i-1"})
	require.NoError(t, err)

	other := &usecase.SessionSnapshot{
		SessionID: "sess-2",
		Token:     "tok-1",
		User:      &entity.User{ID: "u-2", Role: entity.RoleUser},
	}

	_, err = f.svc.Load(ctx, other, cs.ID)
	require.Error(t, err)
	assert.Equal(t, apierr.KindRequest, apierr.KindOf(err))
}
