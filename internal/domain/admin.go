package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for admin operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminRole is the privilege level of an admin account.
type AdminRole string

const (
	AdminRoleSuperAdmin AdminRole = "super-admin"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleModerator  AdminRole = "moderator"
)

// Admin represents a dashboard administrator account.
// swagger:model Admin
type Admin struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         AdminRole  `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(adminID, email string, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated admin ID.
type TokenVerifier interface {
	Verify(token string) (adminID string, err error)
}

// AdminRepository defines the interface for admin account storage.
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// AuthService defines admin authentication.
type AuthService interface {
	// Login verifies credentials and returns a bearer token plus the admin
	// record. Inactive accounts and unknown emails both fail with
	// ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *Admin, error)
}
