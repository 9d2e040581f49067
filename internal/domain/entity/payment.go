package entity

// PaymentMethod is the fixed set of checkout payment options.
type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "COD"
	PaymentVNPay PaymentMethod = "VNPAY"
	PaymentMoMo  PaymentMethod = "MOMO"
)

// Valid reports whether the method is one of the supported values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentVNPay, PaymentMoMo:
		return true
	}

	return false
}

// RequiresGatewayQR reports whether the order-success page should render a
// payment QR code for this method.
func (m PaymentMethod) RequiresGatewayQR() bool {
	return m == PaymentVNPay || m == PaymentMoMo
}

// PaymentStatus mirrors the backend's payment state for an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
	PaymentRefund  PaymentStatus = "REFUNDED"
)
