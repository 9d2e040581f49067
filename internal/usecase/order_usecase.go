package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// OrderUsecase serves the customer's own orders.
type OrderUsecase interface {
	List(ctx context.Context, snapshot *SessionSnapshot) ([]*entity.Order, error)
	ByNumber(ctx context.Context, snapshot *SessionSnapshot, orderNumber string) (*entity.Order, error)
	Cancel(ctx context.Context, snapshot *SessionSnapshot, orderNumber string) (*entity.Order, error)

	// PaymentQR renders the gateway QR PNG for VNPAY/MOMO orders; COD
	// orders have none.
	PaymentQR(ctx context.Context, snapshot *SessionSnapshot, orderNumber string) ([]byte, error)
}
