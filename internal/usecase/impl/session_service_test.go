package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/infra/storage"
	"github.com/nauteik/soa-project-sub001/internal/mocks"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser() *entity.User {
	return &entity.User{ID: "u-1", Name: "Nguyen Van A", Email: "a@example.com", Role: entity.RoleUser}
}

func TestSessionService_Login_PersistsSession(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1", User: testUser()}, nil)

	snap, err := svc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)
	require.True(t, snap.Authenticated())
	assert.Equal(t, "tok-1", snap.Token)
	assert.Equal(t, "u-1", snap.User.ID)

	raw, err := store.Get(ctx, "session:"+snap.SessionID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "tok-1")
}

func TestSessionService_Login_RejectsCredentialsWithoutUser(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1"}, nil)

	snap, err := svc.Login(ctx, "a@example.com", "secret")
	require.Error(t, err)
	assert.Nil(t, snap)
}

func TestSessionService_Restore_NoSessionIsSignedOut(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	snap, err := svc.Restore(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, snap)
	assert.False(t, snap.Authenticated())
}

func TestSessionService_Restore_ExpiredTokenClearsWithoutNetwork(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-old", User: testUser()}, nil)
	snap, err := svc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	tokens.On("Expired", "tok-old", mock.AnythingOfType("time.Time")).Return(true)

	restored, err := svc.Restore(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.Nil(t, restored)

	// No Me expectation was set: an expired token must never reach the
	// backend, and the stored session is gone.
	_, err = store.Get(ctx, "session:"+snap.SessionID)
	assert.ErrorIs(t, err, service.ErrStoreKeyNotFound)
}

func TestSessionService_Restore_RejectedTokenSignsOut(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1", User: testUser()}, nil)
	snap, err := svc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	tokens.On("Expired", "tok-1", mock.AnythingOfType("time.Time")).Return(false)
	authAPI.On("Me", ctx, "tok-1").
		Return(nil, apierr.FromResponse(401, "UNAUTHORIZED", ""))

	restored, err := svc.Restore(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.Nil(t, restored)

	_, err = store.Get(ctx, "session:"+snap.SessionID)
	assert.ErrorIs(t, err, service.ErrStoreKeyNotFound)
}

func TestSessionService_Restore_RefreshesStoredUser(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1", User: testUser()}, nil)
	snap, err := svc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	renamed := testUser()
	renamed.Name = "Nguyen Van B"

	tokens.On("Expired", "tok-1", mock.AnythingOfType("time.Time")).Return(false)
	authAPI.On("Me", ctx, "tok-1").Return(renamed, nil)

	restored, err := svc.Restore(ctx, snap.SessionID)
	require.NoError(t, err)
	require.True(t, restored.Authenticated())
	assert.Equal(t, "Nguyen Van B", restored.User.Name)
}

func TestSessionService_LoginBackOffice_RejectsCustomerRole(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1", User: testUser()}, nil)

	snap, err := svc.LoginBackOffice(ctx, "a@example.com", "secret")
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Equal(t, apierr.KindRequest, apierr.KindOf(err))
}

func TestSessionService_LoginBackOffice_AllowsStaff(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	staff := testUser()
	staff.Role = entity.RoleStaff

	ctx := context.Background()
	authAPI.On("Login", ctx, "s@example.com", "secret").
		Return(&service.Credentials{Token: "tok-s", User: staff}, nil)

	snap, err := svc.LoginBackOffice(ctx, "s@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, snap.Authenticated())
}

func TestSessionService_Invalidate_ReportsLiveRemovalOnce(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	ctx := context.Background()
	authAPI.On("Login", ctx, "a@example.com", "secret").
		Return(&service.Credentials{Token: "tok-1", User: testUser()}, nil)
	snap, err := svc.Login(ctx, "a@example.com", "secret")
	require.NoError(t, err)

	removed, err := svc.Invalidate(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Repeated invalidations of the same session report nothing removed.
	removed, err = svc.Invalidate(ctx, snap.SessionID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSessionService_Logout_IsIdempotent(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	assert.NoError(t, svc.Logout(context.Background(), "never-existed"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestSessionService_UpdateProfile_RequiresAuth(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	tokens := mocks.NewMockTokenInspector(t)
	store := storage.NewMemoryStore()
	svc := NewSessionService(authAPI, store, tokens, time.Hour, newDiscardLogger())

	var snap *usecase.SessionSnapshot
	_, err := svc.UpdateProfile(context.Background(), snap, service.UpdateProfileParams{Name: "X"})
	require.Error(t, err)
	assert.True(t, apierr.IsAuth(err))
}
