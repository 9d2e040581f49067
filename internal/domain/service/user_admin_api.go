package service

import (
	"context"

	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
)

// UserPage is one page of the back-office user listing.
type UserPage struct {
	Items      []*entity.User
	Total      int
	Page       int
	TotalPages int
}

// UserAdminAPI is the back-office user management resource group.
type UserAdminAPI interface {
	List(ctx context.Context, token string, page, limit int) (*UserPage, error)
	UpdateRole(ctx context.Context, token, userID string, role entity.Role) (*entity.User, error)
}
