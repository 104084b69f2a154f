package entity

import "time"

// Valid roles for User.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleSuperadmin || r == RoleAdmin || r == RoleUser
}

// User represents a back-office account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         string // superadmin, admin, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
