package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderRejected  OrderStatus = "REJECTED"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderStatus = errors.New("invalid status. Must be PENDING, COMPLETED, or REJECTED")

// ValidOrderStatus reports whether s is a member of the closed status set.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderCompleted, OrderRejected:
		return true
	}
	return false
}

// Order is a product order placed for a company, optionally assigned to an
// agent. CreatedBy records the user who placed it.
type Order struct {
	ID          int64       `json:"order_id"`
	Description string      `json:"description"`
	ProductID   int64       `json:"product_id"`
	Quantity    int         `json:"quantity"`
	CompanyName string      `json:"company_name"`
	AgentID     *int64      `json:"agent_id,omitempty"`
	Status      OrderStatus `json:"status"`
	CreatedBy   int64       `json:"created_by"`
	CreatedAt   time.Time   `json:"created_date"`
	UpdatedAt   time.Time   `json:"updated_date"`

	// Denormalised join columns for list views.
	ProductName     string  `json:"product_name,omitempty"`
	ProductCategory string  `json:"product_category,omitempty"`
	UnitPrice       float64 `json:"unit_price,omitempty"`
	AgentName       string  `json:"agent_name,omitempty"`
	AgentEmail      string  `json:"agent_email,omitempty"`
	AgentContact    string  `json:"agent_contact,omitempty"`
}

// OrderStatistics aggregates order counts per status.
type OrderStatistics struct {
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	RejectedOrders  int64 `json:"rejected_orders"`
	TotalCompanies  int64 `json:"total_companies"`
}

// OrderEvent records a single status change on an order for the audit trail.
type OrderEvent struct {
	OrderID    int64
	Status     OrderStatus
	ActorID    int64
	Note       string
	RecordedAt time.Time
}
