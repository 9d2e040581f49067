// Package entity contains the records mirrored from the backend API.
// The backend owns every one of them; the frontend copy is a cache that is
// replaced wholesale after each refetch, never merged.
package entity

import "time"

// User is the account record returned by the auth resource.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CanAccessBackOffice reports whether the user may sign in to the admin app.
func (u *User) CanAccessBackOffice() bool {
	return u.Role == RoleStaff || u.Role == RoleManager
}
