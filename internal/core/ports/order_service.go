package ports

import (
	"context"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// CreateOrderInput carries all data needed to place a new order.
type CreateOrderInput struct {
	Description string
	ProductID   int64
	Quantity    int
	CompanyName string
	AgentID     *int64
	CreatedBy   int64
	// IdempotencyKey, when non-empty and already seen, causes the previous
	// result to be replayed without creating a second order.
	IdempotencyKey string
}

// CreateOrderResult is returned by the service after creating an order.
type CreateOrderResult struct {
	OrderID int64
	Status  domain.OrderStatus
	// AlreadyExisted is true when the Idempotency-Key matched a previous
	// submission.
	AlreadyExisted bool
}

// OrderService defines use-case operations for orders and the catalog.
type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error)
	UpdateStatus(ctx context.Context, id int64, status string, actorID int64) error
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (*domain.OrderStatistics, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

// OrderEventInput is the unit of work handed to the audit dispatcher.
type OrderEventInput struct {
	OrderID int64
	Status  domain.OrderStatus
	ActorID int64
	Note    string
}

// AuditService consumes order events off the dispatcher and persists them.
type AuditService interface {
	Process(ctx context.Context, in OrderEventInput) error
}
