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
)

// adminService implements the AdminUsecase interface. Every call gates on a
// staff credential before touching the backend; the backend enforces the
// same rule server-side.
type adminService struct {
	products service.ProductAPI
	brands   service.BrandAPI
	orders   service.OrderAPI
	users    service.UserAdminAPI
	uploads  service.UploadAPI
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	products service.ProductAPI,
	brands service.BrandAPI,
	orders service.OrderAPI,
	users service.UserAdminAPI,
	uploads service.UploadAPI,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		products: products,
		brands:   brands,
		orders:   orders,
		users:    users,
		uploads:  uploads,
		logger:   logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) requireStaff(snapshot *usecase.SessionSnapshot) error {
	if !snapshot.Authenticated() {
		return apierr.Unauthenticated("Vui lòng đăng nhập trang quản trị")
	}

	if !snapshot.User.CanAccessBackOffice() {
		return apierr.FromResponse(http.StatusForbidden, "FORBIDDEN",
			"Tài khoản không có quyền truy cập trang quản trị")
	}

	return nil
}

func (srv *adminService) Products(ctx context.Context, snapshot *usecase.SessionSnapshot, filter service.ProductFilter) (*service.ProductPage, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	return srv.products.List(ctx, filter)
}

func (srv *adminService) Product(ctx context.Context, snapshot *usecase.SessionSnapshot, id string) (*entity.Product, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	return srv.products.ByID(ctx, id)
}

// SaveProduct creates when id is empty, updates otherwise.
func (srv *adminService) SaveProduct(ctx context.Context, snapshot *usecase.SessionSnapshot, id string, input service.ProductInput) (*entity.Product, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	if fields := validateProductInput(input); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}

	if id == "" {
		product, err := srv.products.Create(ctx, snapshot.Token, input)
		if err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Product created", "productID", product.ID, "name", product.Name)

		return product, nil
	}

	product, err := srv.products.Update(ctx, snapshot.Token, id, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated", "productID", id)

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, snapshot *usecase.SessionSnapshot, id string) error {
	if err := srv.requireStaff(snapshot); err != nil {
		return err
	}

	if err := srv.products.Delete(ctx, snapshot.Token, id); err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", "productID", id)

	return nil
}

func (srv *adminService) UploadImage(ctx context.Context, snapshot *usecase.SessionSnapshot, name string, content []byte, contentType string) (string, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return "", err
	}

	if len(content) == 0 {
		return "", apierr.Validation(map[string]string{
			"file": "Vui lòng chọn tệp ảnh",
		})
	}

	return srv.uploads.UploadImage(ctx, snapshot.Token, name, content, contentType)
}

func (srv *adminService) DeleteImage(ctx context.Context, snapshot *usecase.SessionSnapshot, name string) error {
	if err := srv.requireStaff(snapshot); err != nil {
		return err
	}

	return srv.uploads.DeleteImage(ctx, snapshot.Token, name)
}

func (srv *adminService) Brands(ctx context.Context, snapshot *usecase.SessionSnapshot) ([]*entity.Brand, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	return srv.brands.List(ctx)
}

func (srv *adminService) SaveBrand(ctx context.Context, snapshot *usecase.SessionSnapshot, input service.BrandInput) (*entity.Brand, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, apierr.Validation(map[string]string{
			"name": "Tên thương hiệu là bắt buộc",
		})
	}

	return srv.brands.Create(ctx, snapshot.Token, input)
}

func (srv *adminService) DeleteBrand(ctx context.Context, snapshot *usecase.SessionSnapshot, id string) error {
	if err := srv.requireStaff(snapshot); err != nil {
		return err
	}

	return srv.brands.Delete(ctx, snapshot.Token, id)
}

func (srv *adminService) Orders(ctx context.Context, snapshot *usecase.SessionSnapshot, filter service.OrderListFilter) (*service.OrderPage, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	return srv.orders.ListAll(ctx, snapshot.Token, filter)
}

func (srv *adminService) UpdateOrderStatus(ctx context.Context, snapshot *usecase.SessionSnapshot, orderNumber string, status entity.OrderStatus) (*entity.Order, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, apierr.Validation(map[string]string{
			"status": "Trạng thái đơn hàng không hợp lệ",
		})
	}

	order, err := srv.orders.UpdateStatus(ctx, snapshot.Token, orderNumber, status)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated", "orderNumber", orderNumber, "status", status)

	return order, nil
}

func (srv *adminService) Users(ctx context.Context, snapshot *usecase.SessionSnapshot, page, limit int) (*service.UserPage, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	return srv.users.List(ctx, snapshot.Token, page, limit)
}

func (srv *adminService) UpdateUserRole(ctx context.Context, snapshot *usecase.SessionSnapshot, userID string, role entity.Role) (*entity.User, error) {
	if err := srv.requireStaff(snapshot); err != nil {
		return nil, err
	}

	if !role.Valid() {
		return nil, apierr.Validation(map[string]string{
			"role": "Vai trò không hợp lệ",
		})
	}

	user, err := srv.users.UpdateRole(ctx, snapshot.Token, userID, role)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User role updated", "userID", userID, "role", role)

	return user, nil
}

func validateProductInput(input service.ProductInput) map[string]string {
	fields := map[string]string{}

	if input.Name == "" {
		fields["name"] = "Tên sản phẩm là bắt buộc"
	}
	if input.Price <= 0 {
		fields["price"] = "Giá phải lớn hơn 0"
	}
	if input.Discount < 0 || input.Discount > 100 {
		fields["discount"] = "Giảm giá phải trong khoảng 0-100%"
	}
	if input.QuantityInStock < 0 {
		fields["quantityInStock"] = "Tồn kho không được âm"
	}
	if input.CategoryID == "" {
		fields["categoryId"] = "Vui lòng chọn danh mục"
	}

	return fields
}
