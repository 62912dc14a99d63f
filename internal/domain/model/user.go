package model

import "time"

// Role restricts what parts of the store a user may touch.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered shopper.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may access administrative routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
