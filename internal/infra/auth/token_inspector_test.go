package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return token
}

func TestTokenInspector_Expired(t *testing.T) {
	inspector := NewTokenInspector()
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "live token",
			token: signedToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(time.Hour).Unix()}),
			want:  false,
		},
		{
			name:  "expired token",
			token: signedToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(-time.Hour).Unix()}),
			want:  true,
		},
		{
			name:  "no exp claim",
			token: signedToken(t, jwt.MapClaims{"sub": "u1"}),
			want:  false,
		},
		{
			name:  "garbage token",
			token: "not-a-jwt",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspector.Expired(tt.token, now))
		})
	}
}
