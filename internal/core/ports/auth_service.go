package ports

import (
	"context"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/token"
)

// AuthService authenticates credentials and resolves bearer tokens.
type AuthService interface {
	// Login verifies email+password and returns a signed token plus the
	// authenticated profile. All credential failures (unknown email,
	// inactive account, wrong password) surface as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// VerifyToken decodes a bearer token and round-trips the subject
	// against the store, so a deactivated account fails verification even
	// before its token expires.
	VerifyToken(ctx context.Context, raw string) (*token.Claims, *domain.User, error)

	Profile(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
