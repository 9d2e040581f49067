package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "http://localhost:8080",
		},
		"session": map[string]any{
			"cookieName":  "shop_session",
			"checkoutTtl": "30m",
		},
		"paymentQr": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_CHECKOUTTTL", want: "session.checkoutTtl"},
		{envKey: "PAYMENTQR_ERRORCORRECTIONLEVEL", want: "paymentQr.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
