package entity

// Role is the closed set of account roles the backend issues.
type Role string

const (
	RoleUser    Role = "USER"
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleManager:
		return true
	}

	return false
}
