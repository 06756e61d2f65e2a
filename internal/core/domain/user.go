package domain

import (
	"errors"
	"time"
)

// Role values match the enum on the shared users table. Only RoleUser and
// RoleAdmin are ever assigned by this service; the rest are managed by the
// main backend.
const (
	RoleUser         = "user"
	RoleAdmin        = "admin"
	RoleSuperAdmin   = "super_admin"
	RoleAirlineAdmin = "airline_admin"
	RoleFinance      = "finance"
	RoleOps          = "ops"
	RoleSupport      = "support"
)

// LoginMethodPassword tags accounts created through this service. Accounts
// created by the main backend via social login carry other tags and no
// password hash.
const LoginMethodPassword = "password"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials covers every login failure (unknown email, account
// without a password, wrong password) so callers cannot probe which emails
// are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

var validRoles = map[string]struct{}{
	RoleUser:         {},
	RoleAdmin:        {},
	RoleSuperAdmin:   {},
	RoleAirlineAdmin: {},
	RoleFinance:      {},
	RoleOps:          {},
	RoleSupport:      {},
}

// ValidRole reports whether role is one of the seven enumerated values.
func ValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}

// User maps a row of the shared users table. OpenID is assigned once at
// registration and never changes; it identifies the user across systems
// independently of email.
type User struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"openId"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	LoginMethod  string    `json:"loginMethod,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}
