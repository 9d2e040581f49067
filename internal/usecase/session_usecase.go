// Package usecase contains the application-facing services both web apps
// are built on. Interfaces live here, implementations under impl.
package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

// SessionSnapshot is the immutable view of one session handed to handlers.
// A nil snapshot means signed out.
type SessionSnapshot struct {
	SessionID string
	Token     string
	User      *entity.User
}

// Authenticated reports whether the snapshot carries a usable credential.
func (s *SessionSnapshot) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// SessionUsecase is the dependency-injected session store. It owns the
// persisted token+user pair and never leaks mutable state.
type SessionUsecase interface {
	// Restore loads a persisted session and revalidates the credential
	// against the backend. Any failure clears the stored session and
	// reports signed-out (nil, nil); only infrastructure faults error.
	Restore(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	Login(ctx context.Context, email, password string) (*SessionSnapshot, error)
	Register(ctx context.Context, params service.RegisterParams) (*SessionSnapshot, error)

	// LoginBackOffice rejects accounts without a staff role before
	// persisting anything.
	LoginBackOffice(ctx context.Context, email, password string) (*SessionSnapshot, error)

	// Logout clears the persisted session; absent sessions are a no-op.
	Logout(ctx context.Context, sessionID string) error

	// Invalidate force-clears a session after the backend rejected its
	// credential. Reports whether a live session was actually removed,
	// so a burst of rejected calls signs out once.
	Invalidate(ctx context.Context, sessionID string) (bool, error)

	UpdateProfile(ctx context.Context, snapshot *SessionSnapshot, params service.UpdateProfileParams) (*SessionSnapshot, error)
	ChangePassword(ctx context.Context, snapshot *SessionSnapshot, currentPassword, newPassword string) error

	VerifyAccount(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
