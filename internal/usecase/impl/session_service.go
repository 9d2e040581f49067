// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "github.com/nauteik/soa-project-sub001/internal/delivery/context"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionKeyPrefix = "session:"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authAPI service.AuthAPI
	store   service.SessionStore
	tokens  service.TokenInspector
	ttl     time.Duration
	logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authAPI service.AuthAPI,
	store service.SessionStore,
	tokens service.TokenInspector,
	ttl time.Duration,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authAPI: authAPI,
		store:   store,
		tokens:  tokens,
		ttl:     ttl,
		logger:  logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Restore loads the persisted session and revalidates its token against the
// backend. Expired or rejected credentials clear the stored session and
// report signed-out rather than erroring.
func (srv *sessionService) Restore(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	if sessionID == "" {
		return nil, nil
	}

	sess, err := srv.load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrStoreKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if srv.tokens.Expired(sess.Token, time.Now()) {
		srv.log(ctx).Debug("Stored token expired, signing out", "sessionID", sessionID)
		srv.clear(ctx, sessionID)

		return nil, nil
	}

	user, err := srv.authAPI.Me(ctx, sess.Token)
	if err != nil {
		srv.log(ctx).Info("Session revalidation failed, signing out",
			"sessionID", sessionID, "kind", apierr.KindOf(err))
		srv.clear(ctx, sessionID)

		return nil, nil
	}

	sess.User = user
	sess.UpdatedAt = time.Now()

	if err := srv.persist(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return snapshotOf(sess), nil
}

// Login exchanges credentials for a token and persists a fresh session.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*usecase.SessionSnapshot, error) {
	creds, err := srv.authAPI.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return srv.begin(ctx, creds)
}

// Register creates the account and signs the new user in.
func (srv *sessionService) Register(ctx context.Context, params service.RegisterParams) (*usecase.SessionSnapshot, error) {
	creds, err := srv.authAPI.Register(ctx, params)
	if err != nil {
		return nil, err
	}

	return srv.begin(ctx, creds)
}

// LoginBackOffice rejects non-staff accounts before persisting anything.
func (srv *sessionService) LoginBackOffice(ctx context.Context, email, password string) (*usecase.SessionSnapshot, error) {
	creds, err := srv.authAPI.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if creds.User == nil || !creds.User.CanAccessBackOffice() {
		srv.log(ctx).Info("Back-office login rejected for non-staff account", "email", email)

		return nil, apierr.FromResponse(http.StatusForbidden, "FORBIDDEN",
			"Tài khoản không có quyền truy cập trang quản trị")
	}

	return srv.begin(ctx, creds)
}

// Logout clears the persisted session. Absent sessions are a no-op.
func (srv *sessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.store.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

// Invalidate force-clears a session after the backend rejected its token.
// Only the removal of a live session reports true, so a burst of rejected
// calls triggers a single sign-out downstream.
func (srv *sessionService) Invalidate(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	if _, err := srv.store.Get(ctx, sessionKeyPrefix+sessionID); err != nil {
		if errors.Is(err, service.ErrStoreKeyNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check session")
	}

	if err := srv.store.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return false, errors.Wrap(err, "failed to invalidate session")
	}

	srv.log(ctx).Info("Session invalidated after credential rejection", "sessionID", sessionID)

	return true, nil
}

// UpdateProfile pushes the profile change and refreshes the stored user.
func (srv *sessionService) UpdateProfile(ctx context.Context, snapshot *usecase.SessionSnapshot, params service.UpdateProfileParams) (*usecase.SessionSnapshot, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để tiếp tục")
	}

	user, err := srv.authAPI.UpdateProfile(ctx, snapshot.Token, params)
	if err != nil {
		return nil, err
	}

	sess, err := srv.load(ctx, snapshot.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session for profile update")
	}

	sess.User = user
	sess.UpdatedAt = time.Now()

	if err := srv.persist(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to persist updated profile")
	}

	return snapshotOf(sess), nil
}

func (srv *sessionService) ChangePassword(ctx context.Context, snapshot *usecase.SessionSnapshot, currentPassword, newPassword string) error {
	if !snapshot.Authenticated() {
		return apierr.Unauthenticated("Vui lòng đăng nhập để tiếp tục")
	}

	return srv.authAPI.UpdatePassword(ctx, snapshot.Token, currentPassword, newPassword)
}

func (srv *sessionService) VerifyAccount(ctx context.Context, email, code string) error {
	return srv.authAPI.Verify(ctx, email, code)
}

func (srv *sessionService) ForgotPassword(ctx context.Context, email string) error {
	return srv.authAPI.ForgotPassword(ctx, email)
}

func (srv *sessionService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return srv.authAPI.ResetPassword(ctx, resetToken, newPassword)
}

// begin persists a brand-new session for freshly issued credentials.
func (srv *sessionService) begin(ctx context.Context, creds *service.Credentials) (*usecase.SessionSnapshot, error) {
	if creds.User == nil {
		return nil, apierr.Unknown(errors.New("credentials response carried no user"))
	}

	now := time.Now()
	sess := &entity.Session{
		ID:        uuid.New().String(),
		Token:     creds.Token,
		User:      creds.User,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.persist(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Info("Session started", "sessionID", sess.ID, "userID", creds.User.ID)

	return snapshotOf(sess), nil
}

func (srv *sessionService) load(ctx context.Context, sessionID string) (*entity.Session, error) {
	raw, err := srv.store.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}

	var sess entity.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &sess, nil
}

func (srv *sessionService) persist(ctx context.Context, sess *entity.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	return srv.store.Set(ctx, sessionKeyPrefix+sess.ID, raw, srv.ttl)
}

// clear is a best-effort removal used on revalidation failure paths.
func (srv *sessionService) clear(ctx context.Context, sessionID string) {
	if err := srv.store.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		srv.log(ctx).Warn("Failed to clear rejected session", "sessionID", sessionID, "error", err)
	}
}

func snapshotOf(sess *entity.Session) *usecase.SessionSnapshot {
	snap := &usecase.SessionSnapshot{
		SessionID: sess.ID,
		Token:     sess.Token,
	}
	if sess.User != nil {
		user := *sess.User
		snap.User = &user
	}

	return snap
}
