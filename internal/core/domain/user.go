package domain

import (
	"errors"
	"time"
)

// Role names form a small closed set. Route guards list allowed roles
// explicitly; there is no implied hierarchy (OWNER must be named in a gate
// to pass it).
const (
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
	RoleAgent = "AGENT"
)

// Role ids as seeded by the migrations.
const (
	RoleIDOwner = 1
	RoleIDAdmin = 2
	RoleIDAgent = 3
)

// Account lifecycle status. Accounts are soft-deactivated, never deleted.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrAgentNotFound      = errors.New("agent not found")
	ErrAgentInactive      = errors.New("agent is already inactive")
	ErrAgentActive        = errors.New("agent is already active")
)

// User models an authenticated actor. PasswordHash never leaves the auth
// service; the json tag guards against accidental exposure.
type User struct {
	ID            int64     `json:"user_id"`
	RoleID        int       `json:"role_id"`
	RoleName      string    `json:"role_name"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	FullName      string    `json:"full_name,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	CompanyAddr   string    `json:"company_address,omitempty"`
	PasswordHash  string    `json:"-"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_date"`
	UpdatedAt     time.Time `json:"updated_date"`
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
