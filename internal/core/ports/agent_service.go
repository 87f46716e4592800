package ports

import (
	"context"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// CreateAgentInput carries the fields for provisioning a new agent account.
// Role is always AGENT and status always ACTIVE on creation.
type CreateAgentInput struct {
	Email         string
	Username      string
	Password      string
	FullName      string
	ContactNumber string
	CompanyName   string
	CompanyAddr   string
}

// AgentService defines the administrative agent-account operations.
type AgentService interface {
	Create(ctx context.Context, in CreateAgentInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateAgentInput) error
	UpdatePassword(ctx context.Context, id int64, newPassword string) error
	Deactivate(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) error
}
