package service

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// AddressInput carries the address form fields. FullAddress may be empty, in
// which case the service composes it from the structured parts.
type AddressInput struct {
	FullName    string
	MobileNo    string
	Street      string
	Ward        string
	District    string
	City        string
	Country     string
	PostalCode  string
	FullAddress string
	IsDefault   bool
}

// AddressAPI is the addresses resource group.
type AddressAPI interface {
	List(ctx context.Context, token string) ([]*entity.Address, error)
	Create(ctx context.Context, token string, input AddressInput) (*entity.Address, error)
	Update(ctx context.Context, token, id string, input AddressInput) (*entity.Address, error)
	Delete(ctx context.Context, token, id string) error
	SetDefault(ctx context.Context, token, id string) (*entity.Address, error)
	GetDefault(ctx context.Context, token string) (*entity.Address, error)
}
