package models

import (
	"time"
)

type Role string

const (
	RoleVendor   Role = "vendor"
	RoleSupplier Role = "supplier"
)

// ValidRole reports whether r is a role users may register with.
func ValidRole(r Role) bool {
	return r == RoleVendor || r == RoleSupplier
}

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never expose in JSON
	Role         Role       `json:"role"`
	Phone        *string    `json:"phone,omitempty"`
	Location     *string    `json:"location,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// IsVendor checks if the user has the vendor role
func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}

// IsSupplier checks if the user has the supplier role
func (u *User) IsSupplier() bool {
	return u.Role == RoleSupplier
}

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     Role    `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
}

// LoginRequest is the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful login/register
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
