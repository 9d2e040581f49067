package usecase

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// AddressForm is the add/edit address form. An empty ID means add.
// FullAddressEdited suspends auto-composition of FullAddress once the user
// has typed in that field directly.
type AddressForm struct {
	ID                string
	FullName          string `validate:"required,min=2,max=100"`
	MobileNo          string `validate:"required,vnmobile"`
	Street            string `validate:"required,max=200"`
	Ward              string `validate:"required,max=100"`
	District          string `validate:"required,max=100"`
	City              string `validate:"required,max=100"`
	Country           string `validate:"required,max=100"`
	PostalCode        string `validate:"omitempty,vnpostal"`
	FullAddress       string `validate:"max=500"`
	IsDefault         bool
	FullAddressEdited bool
}

// AddressUsecase manages the user's saved shipping addresses.
type AddressUsecase interface {
	List(ctx context.Context, snapshot *SessionSnapshot) ([]*entity.Address, error)
	Default(ctx context.Context, snapshot *SessionSnapshot) (*entity.Address, error)

	// Validate runs the field rules and returns per-field messages,
	// empty when the form passes.
	Validate(form AddressForm) map[string]string

	// Compose returns the auto-composed full address for the form, or the
	// user's own text when composition is suspended.
	Compose(form AddressForm) string

	// Save validates then creates (empty ID) or updates. Validation
	// failures come back as a validation-kind error carrying the field map.
	Save(ctx context.Context, snapshot *SessionSnapshot, form AddressForm) (*entity.Address, error)

	Delete(ctx context.Context, snapshot *SessionSnapshot, id string) error
	SetDefault(ctx context.Context, snapshot *SessionSnapshot, id string) (*entity.Address, error)
}
