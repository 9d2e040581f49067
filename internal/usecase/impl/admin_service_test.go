package impl

import (
	"context"
	"testing"

	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/mocks"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (usecase.AdminUsecase, *mocks.MockProductAPI, *mocks.MockOrderAPI, *mocks.MockUserAdminAPI) {
	t.Helper()

	products := mocks.NewMockProductAPI(t)
	orders := mocks.NewMockOrderAPI(t)
	users := mocks.NewMockUserAdminAPI(t)
	svc := NewAdminService(products, mocks.NewMockBrandAPI(t), orders, users,
		mocks.NewMockUploadAPI(t), newDiscardLogger())

	return svc, products, orders, users
}

func staffSnapshot() *usecase.SessionSnapshot {
	return &usecase.SessionSnapshot{
		SessionID: "sess-s",
		Token:     "tok-s",
		User:      &entity.User{ID: "u-s", Role: entity.RoleStaff},
	}
}

func TestAdminService_RejectsCustomerRole(t *testing.T) {
	svc, _, _, _ := newAdminFixture(t)

	_, err := svc.Products(context.Background(), testSnapshot(), service.ProductFilter{})
	require.Error(t, err)
	assert.Equal(t, apierr.KindRequest, apierr.KindOf(err))
}

func TestAdminService_RejectsSignedOut(t *testing.T) {
	svc, _, _, _ := newAdminFixture(t)

	_, err := svc.Products(context.Background(), nil, service.ProductFilter{})
	require.Error(t, err)
	assert.True(t, apierr.IsAuth(err))
}

func TestAdminService_SaveProduct_CreateVsUpdate(t *testing.T) {
	svc, products, _, _ := newAdminFixture(t)
	ctx := context.Background()

	input := service.ProductInput{
		Name:       "Asus ROG Strix",
		Price:      35000000,
		CategoryID: "c-1",
	}

	products.On("Create", ctx, "tok-s", input).
		Return(&entity.Product{ID: "p-new", Name: input.Name}, nil)
	created, err := svc.SaveProduct(ctx, staffSnapshot(), "", input)
	require.NoError(t, err)
	assert.Equal(t, "p-new", created.ID)

	products.On("Update", ctx, "tok-s", "p-new", input).
		Return(&entity.Product{ID: "p-new", Name: input.Name}, nil)
	_, err = svc.SaveProduct(ctx, staffSnapshot(), "p-new", input)
	require.NoError(t, err)
}

func TestAdminService_SaveProduct_ValidatesInput(t *testing.T) {
	svc, _, _, _ := newAdminFixture(t)

	_, err := svc.SaveProduct(context.Background(), staffSnapshot(), "", service.ProductInput{
		Discount: 150,
	})
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	fields := apiErr.Fields()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "discount")
	assert.Contains(t, fields, "categoryId")
}

func TestAdminService_DeleteImage(t *testing.T) {
	products := mocks.NewMockProductAPI(t)
	uploads := mocks.NewMockUploadAPI(t)
	svc := NewAdminService(products, mocks.NewMockBrandAPI(t), mocks.NewMockOrderAPI(t),
		mocks.NewMockUserAdminAPI(t), uploads, newDiscardLogger())

	ctx := context.Background()
	uploads.On("DeleteImage", ctx, "tok-s", "products/p-1-front.jpg").Return(nil)

	require.NoError(t, svc.DeleteImage(ctx, staffSnapshot(), "products/p-1-front.jpg"))

	err := svc.DeleteImage(ctx, testSnapshot(), "products/p-1-front.jpg")
	require.Error(t, err)
	assert.Equal(t, apierr.KindRequest, apierr.KindOf(err))
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	svc, _, orders, _ := newAdminFixture(t)
	ctx := context.Background()

	orders.On("UpdateStatus", ctx, "tok-s", "ORD-1", entity.OrderShipping).
		Return(&entity.Order{OrderNumber: "ORD-1", Status: entity.OrderShipping}, nil)

	order, err := svc.UpdateOrderStatus(ctx, staffSnapshot(), "ORD-1", entity.OrderShipping)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipping, order.Status)

	_, err = svc.UpdateOrderStatus(ctx, staffSnapshot(), "ORD-1", "TELEPORTED")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	svc, _, _, users := newAdminFixture(t)
	ctx := context.Background()

	users.On("UpdateRole", ctx, "tok-s", "u-2", entity.RoleStaff).
		Return(&entity.User{ID: "u-2", Role: entity.RoleStaff}, nil)

	user, err := svc.UpdateUserRole(ctx, staffSnapshot(), "u-2", entity.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, user.Role)

	_, err = svc.UpdateUserRole(ctx, staffSnapshot(), "u-2", "SUPERADMIN")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}
