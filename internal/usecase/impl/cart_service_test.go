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

func testSnapshot() *usecase.SessionSnapshot {
	return &usecase.SessionSnapshot{SessionID: "sess-1", Token: "tok-1", User: testUser()}
}

// signedInFixture logs a real session into the store so invalidation has
// something live to remove.
func signedInFixture(t *testing.T, cartAPI service.CartAPI) (usecase.CartUsecase, usecase.SessionUsecase, *usecase.SessionSnapshot) {
	t.Helper()

	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	sessions := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	authAPI.On("Login", context.Background(), "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1", User: testUser()}, nil)

	snap, err := sessions.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)

	carts := NewCartService(cartAPI, sessions, newDiscardLogger())

	return carts, sessions, snap
}

func TestCartService_Add_UnauthenticatedNeverCallsNetwork(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	sessions := NewSessionService(mocks.NewMockAuthAPI(t), storage.NewMemoryStore(),
		mocks.NewMockTokenInspector(t), time.Hour, newDiscardLogger())
	carts := NewCartService(cartAPI, sessions, newDiscardLogger())

	// No expectations on cartAPI: any call would fail the test.
	var snap *usecase.SessionSnapshot
	_, err := carts.Add(context.Background(), snap, "p-1", 1)
	require.Error(t, err)
	assert.True(t, apierr.IsAuth(err))
	assert.Equal(t, "Vui lòng đăng nhập để sử dụng giỏ hàng", apierr.MessageOf(err))
}

func TestCartService_Add_ReplacesWithServerCart(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	carts, _, snap := signedInFixture(t, cartAPI)

	server := &entity.Cart{
		UserID:     "u-1",
		Items:      []*entity.CartItem{{ID: "i-1", ProductID: "p-1", Quantity: 3}},
		TotalItems: 3,
		TotalPrice: 45000000,
	}
	cartAPI.On("Add", context.Background(), "tok-1", "p-1", 1).Return(server, nil)

	cart, err := carts.Add(context.Background(), snap, "p-1", 1)
	require.NoError(t, err)

	// The badge value is the server's totalItems, not a local increment.
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, int64(45000000), cart.TotalPrice)
}

func TestCartService_Add_RejectsNonPositiveQuantity(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	carts, _, snap := signedInFixture(t, cartAPI)

	_, err := carts.Add(context.Background(), snap, "p-1", 0)
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestCartService_Count_SignedOutReadsZero(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	sessions := NewSessionService(mocks.NewMockAuthAPI(t), storage.NewMemoryStore(),
		mocks.NewMockTokenInspector(t), time.Hour, newDiscardLogger())
	carts := NewCartService(cartAPI, sessions, newDiscardLogger())

	count, err := carts.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_Count_PassesThroughServerTotal(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	carts, _, snap := signedInFixture(t, cartAPI)

	cartAPI.On("Count", context.Background(), "tok-1").Return(7, nil)

	count, err := carts.Count(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCartService_CredentialRejection_SignsOutExactlyOnce(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	carts, sessions, snap := signedInFixture(t, cartAPI)

	rejected := apierr.FromResponse(401, "UNAUTHORIZED", "")
	cartAPI.On("Get", context.Background(), "tok-1").Return(nil, rejected).Times(3)

	// A burst of failing calls with the same stale credential.
	for i := 0; i < 3; i++ {
		_, err := carts.Get(context.Background(), snap)
		require.Error(t, err)
		assert.True(t, apierr.IsAuth(err))
	}

	// The session was removed by the first rejection; later invalidations
	// find nothing live.
	removed, err := sessions.Invalidate(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.False(t, removed)

	restored, err := sessions.Restore(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestCartService_NonAuthErrorKeepsSession(t *testing.T) {
	cartAPI := mocks.NewMockCartAPI(t)
	carts, sessions, snap := signedInFixture(t, cartAPI)

	cartAPI.On("Get", context.Background(), "tok-1").
		Return(nil, apierr.FromResponse(500, "INTERNAL", ""))

	_, err := carts.Get(context.Background(), snap)
	require.Error(t, err)
	assert.False(t, apierr.IsAuth(err))

	// A server fault must not sign the user out.
	removed, err := sessions.Invalidate(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.True(t, removed)
}
