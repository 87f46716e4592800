package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

// IdempotencyStore abstracts the replay store (Redis) used to make order
// creation safe to retry.
type IdempotencyStore interface {
	// Lookup returns the order id previously stored under key, or 0.
	Lookup(ctx context.Context, key string) (int64, error)
	Store(ctx context.Context, key string, orderID int64) error
}

// AuditSink receives order events for asynchronous persistence.
type AuditSink interface {
	Enqueue(event ports.OrderEventInput)
}

// OrderService implements order management and the read-only catalog.
type OrderService struct {
	orders      ports.OrderRepository
	products    ports.ProductRepository
	users       ports.UserRepository
	idempotency IdempotencyStore
	audit       AuditSink
	log         zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	users ports.UserRepository,
	idempotency IdempotencyStore,
	audit AuditSink,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		products:    products,
		users:       users,
		idempotency: idempotency,
		audit:       audit,
		log:         log,
	}
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orders.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ListByStatus(ctx context.Context, status string) ([]*domain.Order, error) {
	st := domain.OrderStatus(strings.ToUpper(status))
	if !domain.ValidOrderStatus(st) {
		return nil, domain.ErrInvalidOrderStatus
	}
	orders, err := s.orders.List(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return orders, nil
}

// Create places a new PENDING order. The referenced product must exist and
// be ACTIVE; an assigned agent, when given, must be an ACTIVE agent. If an
// idempotency key is provided and already seen, the previously created
// order is returned without side effects.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*ports.CreateOrderResult, error) {
	if in.IdempotencyKey != "" {
		existingID, err := s.idempotency.Lookup(ctx, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if existingID != 0 {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("order_id", existingID).Msg("idempotent replay")
			return &ports.CreateOrderResult{OrderID: existingID, Status: domain.OrderPending, AlreadyExisted: true}, nil
		}
	}

	if _, err := s.products.FindActiveByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	if in.AgentID != nil {
		agent, err := s.users.FindAgentByID(ctx, *in.AgentID)
		if err != nil {
			if errors.Is(err, domain.ErrAgentNotFound) {
				return nil, domain.ErrAgentNotFound
			}
			return nil, fmt.Errorf("create order: %w", err)
		}
		if !agent.IsActive() {
			return nil, domain.ErrAgentNotFound
		}
	}

	order := &domain.Order{
		Description: in.Description,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		CompanyName: in.CompanyName,
		AgentID:     in.AgentID,
		Status:      domain.OrderPending,
		CreatedBy:   in.CreatedBy,
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	if in.IdempotencyKey != "" {
		if err := s.idempotency.Store(ctx, in.IdempotencyKey, id); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.log.Info().Int64("order_id", id).Str("company", in.CompanyName).Msg("order created")
	s.audit.Enqueue(ports.OrderEventInput{OrderID: id, Status: domain.OrderPending, ActorID: in.CreatedBy, Note: "order created"})

	return &ports.CreateOrderResult{OrderID: id, Status: domain.OrderPending}, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string, actorID int64) error {
	st := domain.OrderStatus(strings.ToUpper(status))
	if !domain.ValidOrderStatus(st) {
		return domain.ErrInvalidOrderStatus
	}

	if _, err := s.orders.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("update order status: %w", err)
	}

	if err := s.orders.UpdateStatus(ctx, id, st); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	s.log.Info().Int64("order_id", id).Str("status", string(st)).Msg("order status updated")
	s.audit.Enqueue(ports.OrderEventInput{OrderID: id, Status: st, ActorID: actorID, Note: "status updated"})
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("delete order: %w", err)
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}

func (s *OrderService) Statistics(ctx context.Context) (*domain.OrderStatistics, error) {
	stats, err := s.orders.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("order statistics: %w", err)
	}
	return stats, nil
}

func (s *OrderService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
