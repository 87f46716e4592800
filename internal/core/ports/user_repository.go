package ports

import (
	"context"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// UpdateAgentInput carries the optional fields of a partial agent update.
// Nil pointers mean "leave unchanged".
type UpdateAgentInput struct {
	Email         *string
	Username      *string
	FullName      *string
	ContactNumber *string
	CompanyName   *string
	CompanyAddr   *string
	Status        *string
}

// UserRepository defines persistence operations for identities.
//
// FindByEmail and FindByID are restricted to ACTIVE rows by contract:
// inactive accounts are invisible to authentication lookups. Lookups are
// exact-match and case-sensitive. "Not found" is domain.ErrUserNotFound,
// never a storage error.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// Agent management. Agent lookups are scoped to role AGENT but not to
	// status, so deactivated agents remain manageable.
	FindAgentByID(ctx context.Context, id int64) (*domain.User, error)
	ListAgents(ctx context.Context) ([]*domain.User, error)
	CreateAgent(ctx context.Context, agent *domain.User) (int64, error)
	UpdateAgent(ctx context.Context, id int64, in UpdateAgentInput) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)

	// ListUsers returns every identity regardless of status, newest first.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
