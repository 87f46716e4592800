package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ims-platform/inventory-system/internal/core/domain"
)

// ProductRepository implements the read-only catalog on MySQL.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
	id, name, COALESCE(description, ''), category,
	unit_price, stock_quantity, min_stock_level, status`

func (r *ProductRepository) ListActive(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE status = 'ACTIVE' ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE id = ? AND status = 'ACTIVE'`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&p.UnitPrice, &p.StockQuantity, &p.MinStockLevel, &p.Status,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
