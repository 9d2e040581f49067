package service

import "time"

// TokenInspector inspects backend-issued credentials locally. The backend
// signs and verifies; this side only reads claims to skip hopeless calls.
type TokenInspector interface {
	// Expired reports whether the token's exp claim was before now.
	// Unreadable tokens or tokens without exp report false and are left
	// for the backend to judge.
	Expired(token string, now time.Time) bool
}
