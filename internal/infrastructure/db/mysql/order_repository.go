package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// OrderRepository implements ports.OrderRepository on MySQL.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns orders joined with product and agent details, newest first.
// An empty status returns everything.
func (r *OrderRepository) List(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	query := `
		SELECT
			o.id, o.description, o.product_id, o.quantity, o.company_name,
			o.agent_id, o.status, o.created_by, o.created_at, o.updated_at,
			COALESCE(p.name, ''), COALESCE(p.category, ''), COALESCE(p.unit_price, 0),
			COALESCE(u.full_name, ''), COALESCE(u.email, ''), COALESCE(u.contact_number, '')
		FROM orders o
		LEFT JOIN products p ON o.product_id = p.id
		LEFT JOIN users u ON o.agent_id = u.id`
	var args []any
	if status != "" {
		query += " WHERE o.status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	var agentID sql.NullInt64
	err := row.Scan(
		&o.ID, &o.Description, &o.ProductID, &o.Quantity, &o.CompanyName,
		&agentID, &o.Status, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		&o.ProductName, &o.ProductCategory, &o.UnitPrice,
		&o.AgentName, &o.AgentEmail, &o.AgentContact,
	)
	if err != nil {
		return nil, err
	}
	if agentID.Valid {
		o.AgentID = &agentID.Int64
	}
	return &o, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT
			o.id, o.description, o.product_id, o.quantity, o.company_name,
			o.agent_id, o.status, o.created_by, o.created_at, o.updated_at,
			COALESCE(p.name, ''), COALESCE(p.category, ''), COALESCE(p.unit_price, 0),
			COALESCE(u.full_name, ''), COALESCE(u.email, ''), COALESCE(u.contact_number, '')
		FROM orders o
		LEFT JOIN products p ON o.product_id = p.id
		LEFT JOIN users u ON o.agent_id = u.id
		WHERE o.id = ?`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (int64, error) {
	var agentID any
	if order.AgentID != nil {
		agentID = *order.AgentID
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (description, product_id, quantity, company_name, agent_id, status, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.Description, order.ProductID, order.Quantity, order.CompanyName,
		agentID, string(order.Status), order.CreatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert order: last id: %w", err)
	}
	return id, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = ? WHERE id = ?", string(status), id); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepository) Statistics(ctx context.Context) (*domain.OrderStatistics, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'PENDING'   THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'REJECTED'  THEN 1 ELSE 0 END), 0),
			COUNT(DISTINCT company_name)
		FROM orders`

	var stats domain.OrderStatistics
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalOrders, &stats.PendingOrders, &stats.CompletedOrders,
		&stats.RejectedOrders, &stats.TotalCompanies,
	)
	if err != nil {
		return nil, fmt.Errorf("order statistics: %w", err)
	}
	return &stats, nil
}
