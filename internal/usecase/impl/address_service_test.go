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

func validAddressForm() usecase.AddressForm {
	return usecase.AddressForm{
		FullName: "Nguyen Van A",
		MobileNo: "0901234567",
		Street:   "123 Lê Lợi",
		Ward:     "Phường Bến Nghé",
		District: "Quận 1",
		City:     "TP. Hồ Chí Minh",
		Country:  "Việt Nam",
	}
}

func TestAddressService_Validate_PhoneNumbers(t *testing.T) {
	svc := NewAddressService(mocks.NewMockAddressAPI(t), newDiscardLogger())

	cases := []struct {
		phone string
		valid bool
	}{
		{"0901234567", true},
		{"+84901234567", true},
		{"0351234567", true},
		{"12345", false},
		{"090123456", false},
		{"09012345678", false},
		{"abcdefghij", false},
		{"", false},
	}

	for _, tc := range cases {
		form := validAddressForm()
		form.MobileNo = tc.phone

		fields := svc.Validate(form)
		if tc.valid {
			assert.NotContains(t, fields, "mobileNo", "phone %q", tc.phone)
		} else {
			assert.Contains(t, fields, "mobileNo", "phone %q", tc.phone)
		}
	}
}

func TestAddressService_Validate_RequiredFields(t *testing.T) {
	svc := NewAddressService(mocks.NewMockAddressAPI(t), newDiscardLogger())

	fields := svc.Validate(usecase.AddressForm{})
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "mobileNo")
	assert.Contains(t, fields, "street")
	assert.Contains(t, fields, "ward")
	assert.Contains(t, fields, "district")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "country")
	// Postal code is optional.
	assert.NotContains(t, fields, "postalCode")
}

func TestAddressService_Compose(t *testing.T) {
	svc := NewAddressService(mocks.NewMockAddressAPI(t), newDiscardLogger())

	form := validAddressForm()
	assert.Equal(t,
		"123 Lê Lợi, Phường Bến Nghé, Quận 1, TP. Hồ Chí Minh, Việt Nam",
		svc.Compose(form))

	// A hand-edited full address suspends composition.
	form.FullAddressEdited = true
	form.FullAddress = "Tòa nhà Bitexco, Quận 1, TP. Hồ Chí Minh"
	assert.Equal(t, "Tòa nhà Bitexco, Quận 1, TP. Hồ Chí Minh", svc.Compose(form))
}

func TestAddressService_Save_CreatesWithComposedAddress(t *testing.T) {
	addresses := mocks.NewMockAddressAPI(t)
	svc := NewAddressService(addresses, newDiscardLogger())

	ctx := context.Background()
	form := validAddressForm()

	addresses.On("Create", ctx, "tok-1", service.AddressInput{
		FullName:    form.FullName,
		MobileNo:    form.MobileNo,
		Street:      form.Street,
		Ward:        form.Ward,
		District:    form.District,
		City:        form.City,
		Country:     form.Country,
		FullAddress: "123 Lê Lợi, Phường Bến Nghé, Quận 1, TP. Hồ Chí Minh, Việt Nam",
	}).Return(&entity.Address{ID: "a-1"}, nil)

	addr, err := svc.Save(ctx, testSnapshot(), form)
	require.NoError(t, err)
	assert.Equal(t, "a-1", addr.ID)
}

func TestAddressService_Save_ValidationFailureNeverCallsNetwork(t *testing.T) {
	addresses := mocks.NewMockAddressAPI(t)
	svc := NewAddressService(addresses, newDiscardLogger())

	form := validAddressForm()
	form.MobileNo = "12345"

	_, err := svc.Save(context.Background(), testSnapshot(), form)
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind())
	assert.Contains(t, apiErr.Fields(), "mobileNo")
}
