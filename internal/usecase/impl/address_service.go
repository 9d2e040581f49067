package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "github.com/nauteik/soa-project-sub001/internal/delivery/context"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	// Vietnamese mobile numbers: 0 or +84 prefix, then a 9-digit subscriber
	// number starting with 3, 5, 7, 8 or 9.
	vnMobilePattern = regexp.MustCompile(`^(0|\+84)[35789]\d{8}$`)
	vnPostalPattern = regexp.MustCompile(`^\d{5,6}$`)
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addresses service.AddressAPI
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addresses service.AddressAPI,
	logger *slog.Logger,
) usecase.AddressUsecase {
	v := validator.New()

	// Registration only fails for blank tags or nil funcs; both are fixed
	// at compile time here.
	_ = v.RegisterValidation("vnmobile", func(fl validator.FieldLevel) bool {
		return vnMobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("vnpostal", func(fl validator.FieldLevel) bool {
		return vnPostalPattern.MatchString(fl.Field().String())
	})

	return &addressService{
		addresses: addresses,
		validate:  v,
		logger:    logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) List(ctx context.Context, snapshot *usecase.SessionSnapshot) ([]*entity.Address, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để quản lý địa chỉ")
	}

	return srv.addresses.List(ctx, snapshot.Token)
}

func (srv *addressService) Default(ctx context.Context, snapshot *usecase.SessionSnapshot) (*entity.Address, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để quản lý địa chỉ")
	}

	return srv.addresses.GetDefault(ctx, snapshot.Token)
}

// Validate runs the field rules and maps violations to per-field Vietnamese
// messages. An empty map means the form passes.
func (srv *addressService) Validate(form usecase.AddressForm) map[string]string {
	fields := map[string]string{}

	err := srv.validate.Struct(form)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["form"] = "Thông tin địa chỉ không hợp lệ"

		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		fields[name] = addressFieldMessage(fe)
	}

	return fields
}

func addressFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Trường này là bắt buộc"
	case "vnmobile":
		return "Số điện thoại không hợp lệ"
	case "vnpostal":
		return "Mã bưu chính không hợp lệ"
	case "min":
		return "Giá trị quá ngắn"
	case "max":
		return "Giá trị quá dài"
	}

	return "Giá trị không hợp lệ"
}

// Compose returns the auto-composed display address, unless the user edited
// the full-address field directly, which suspends composition for good.
func (srv *addressService) Compose(form usecase.AddressForm) string {
	if form.FullAddressEdited && strings.TrimSpace(form.FullAddress) != "" {
		return form.FullAddress
	}

	a := entity.Address{
		Street:   form.Street,
		Ward:     form.Ward,
		District: form.District,
		City:     form.City,
		Country:  form.Country,
	}

	return a.ComposeFullAddress()
}

// Save validates then creates or updates. Validation failures come back as
// a validation-kind error carrying the field map, never as a network call.
func (srv *addressService) Save(ctx context.Context, snapshot *usecase.SessionSnapshot, form usecase.AddressForm) (*entity.Address, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để quản lý địa chỉ")
	}

	if fields := srv.Validate(form); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}

	input := service.AddressInput{
		FullName:    form.FullName,
		MobileNo:    form.MobileNo,
		Street:      form.Street,
		Ward:        form.Ward,
		District:    form.District,
		City:        form.City,
		Country:     form.Country,
		PostalCode:  form.PostalCode,
		FullAddress: srv.Compose(form),
		IsDefault:   form.IsDefault,
	}

	if form.ID == "" {
		addr, err := srv.addresses.Create(ctx, snapshot.Token, input)
		if err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Address created", "addressID", addr.ID)

		return addr, nil
	}

	addr, err := srv.addresses.Update(ctx, snapshot.Token, form.ID, input)
	if err != nil {
		return nil, err
	}

	return addr, nil
}

func (srv *addressService) Delete(ctx context.Context, snapshot *usecase.SessionSnapshot, id string) error {
	if !snapshot.Authenticated() {
		return apierr.Unauthenticated("Vui lòng đăng nhập để quản lý địa chỉ")
	}

	return srv.addresses.Delete(ctx, snapshot.Token, id)
}

func (srv *addressService) SetDefault(ctx context.Context, snapshot *usecase.SessionSnapshot, id string) (*entity.Address, error) {
	if !snapshot.Authenticated() {
		return nil, apierr.Unauthenticated("Vui lòng đăng nhập để quản lý địa chỉ")
	}

	return srv.addresses.SetDefault(ctx, snapshot.Token, id)
}
