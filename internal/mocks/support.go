package mocks

import (
	"testing"
	"time"

	"github.com/nauteik/soa-project-sub001/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock wired to the test's lifecycle.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GeneratePaymentQR(payload service.PaymentQR) ([]byte, error) {
	args := m.Called(payload)

	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockTokenInspector mocks service.TokenInspector.
type MockTokenInspector struct {
	mock.Mock
}

// NewMockTokenInspector creates a mock wired to the test's lifecycle.
func NewMockTokenInspector(t *testing.T) *MockTokenInspector {
	m := &MockTokenInspector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenInspector) Expired(token string, now time.Time) bool {
	args := m.Called(token, now)

	return args.Bool(0)
}
