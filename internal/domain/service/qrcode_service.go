package service

import "github.com/nauteik/soa-project-sub001/internal/domain/entity"

// PaymentQR is the payload encoded into a gateway payment QR code.
type PaymentQR struct {
	OrderNumber string               `json:"orderNumber"`
	Amount      int64                `json:"amount"`
	Method      entity.PaymentMethod `json:"method"`
}

// QRCodeService renders payment QR codes for the order-success page.
type QRCodeService interface {
	GeneratePaymentQR(payload PaymentQR) ([]byte, error)
}
