package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
)

// AdminUsecase is the back-office surface: catalog and order management on
// behalf of a staff session. Every call requires a staff credential.
type AdminUsecase interface {
	Products(ctx context.Context, snapshot *SessionSnapshot, filter service.ProductFilter) (*service.ProductPage, error)
	Product(ctx context.Context, snapshot *SessionSnapshot, id string) (*entity.Product, error)

	// SaveProduct creates (empty id) or updates a product.
	SaveProduct(ctx context.Context, snapshot *SessionSnapshot, id string, input service.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, snapshot *SessionSnapshot, id string) error

	UploadImage(ctx context.Context, snapshot *SessionSnapshot, name string, content []byte, contentType string) (string, error)
	DeleteImage(ctx context.Context, snapshot *SessionSnapshot, name string) error

	Brands(ctx context.Context, snapshot *SessionSnapshot) ([]*entity.Brand, error)
	SaveBrand(ctx context.Context, snapshot *SessionSnapshot, input service.BrandInput) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, snapshot *SessionSnapshot, id string) error

	Orders(ctx context.Context, snapshot *SessionSnapshot, filter service.OrderListFilter) (*service.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, snapshot *SessionSnapshot, orderNumber string, status entity.OrderStatus) (*entity.Order, error)

	Users(ctx context.Context, snapshot *SessionSnapshot, page, limit int) (*service.UserPage, error)
	UpdateUserRole(ctx context.Context, snapshot *SessionSnapshot, userID string, role entity.Role) (*entity.User, error)
}
