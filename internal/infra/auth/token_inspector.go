// Package auth provides local credential inspection. Tokens are issued and
// verified by the backend; nothing here holds a signing secret.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for the claims-only token reader.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{parser: jwt.NewParser()}
}

// Expired decodes the token without verification and checks the exp claim.
func (t *tokenInspector) Expired(token string, now time.Time) bool {
	parsed, _, err := t.parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return false
	}

	return expiresAt.Before(now)
}
