package ports

import (
	"context"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// List returns all orders joined with product and agent details,
	// newest first. An empty status lists everything.
	List(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (*domain.OrderStatistics, error)
}

// ProductRepository exposes the read-only product catalog.
type ProductRepository interface {
	// ListActive returns ACTIVE products ordered by name.
	ListActive(ctx context.Context) ([]*domain.Product, error)
	// FindActiveByID returns domain.ErrProductNotFound for missing or
	// inactive products.
	FindActiveByID(ctx context.Context, id int64) (*domain.Product, error)
}

// OrderEventRepository persists the order audit trail.
type OrderEventRepository interface {
	Insert(ctx context.Context, event *domain.OrderEvent) error
}
