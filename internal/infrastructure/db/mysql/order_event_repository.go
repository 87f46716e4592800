package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// OrderEventRepository persists the order audit trail on MySQL.
type OrderEventRepository struct {
	db *sql.DB
}

func NewOrderEventRepository(db *sql.DB) *OrderEventRepository {
	return &OrderEventRepository{db: db}
}

func (r *OrderEventRepository) Insert(ctx context.Context, event *domain.OrderEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_events (order_id, status, actor_id, note, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		event.OrderID, string(event.Status), event.ActorID, event.Note, event.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}
	return nil
}
