package qrcode

import (
	"bytes"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, tt.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GeneratePaymentQR(service.PaymentQR{
		OrderNumber: "ORD-2025-0042",
		Amount:      21_590_000,
		Method:      entity.PaymentVNPay,
	})

	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)
	// PNG signature
	assert.True(t, bytes.HasPrefix(pngBytes, []byte{0x89, 'P', 'N', 'G'}))
}
