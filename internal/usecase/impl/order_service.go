package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "github.com/nauteik/soa-project-sub001/internal/delivery/context"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders service.OrderAPI
	qr     service.QRCodeService
	logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders service.OrderAPI,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders: orders,
		qr:     qr,
		logger: logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) List(ctx context.Context, snapshot *usecase.SessionSnapshot) ([]*entity.Order, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để xem đơn hàng")
	}

	return srv.orders.List(ctx, snapshot.Token)
}

func (srv *orderService) ByNumber(ctx context.Context, snapshot *usecase.SessionSnapshot, orderNumber string) (*entity.Order, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để xem đơn hàng")
	}

	return srv.orders.ByNumber(ctx, snapshot.Token, orderNumber)
}

// Cancel asks the backend to cancel; only pending/confirmed orders qualify
// and the backend is the judge, the local check just saves a hopeless call.
func (srv *orderService) Cancel(ctx context.Context, snapshot *usecase.SessionSnapshot, orderNumber string) (*entity.Order, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để xem đơn hàng")
	}

	order, err := srv.orders.ByNumber(ctx, snapshot.Token, orderNumber)
	if err != nil {
		return nil, err
	}

	if !order.Status.Cancellable() {
		return nil, apierr.FromResponse(http.StatusConflict, "ORDER_NOT_CANCELLABLE",
			"Đơn hàng ở trạng thái hiện tại không thể hủy")
	}

	cancelled, err := srv.orders.Cancel(ctx, snapshot.Token, orderNumber)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order cancelled", "orderNumber", orderNumber)

	return cancelled, nil
}

// PaymentQR renders the gateway QR PNG for VNPAY/MOMO orders. COD orders
// have no QR and report a request error.
func (srv *orderService) PaymentQR(ctx context.Context, snapshot *usecase.SessionSnapshot, orderNumber string) ([]byte, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để xem đơn hàng")
	}

	order, err := srv.orders.ByNumber(ctx, snapshot.Token, orderNumber)
	if err != nil {
		return nil, err
	}

	if !order.PaymentMethod.RequiresGatewayQR() {
		return nil, apierr.FromResponse(http.StatusBadRequest, "QR_NOT_AVAILABLE",
			"Phương thức thanh toán này không dùng mã QR")
	}

	png, err := srv.qr.GeneratePaymentQR(service.PaymentQR{
		OrderNumber: order.OrderNumber,
		Amount:      order.Total,
		Method:      order.PaymentMethod,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment QR")
	}

	return png, nil
}
