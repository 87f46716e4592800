package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

type auditService struct {
	events ports.OrderEventRepository
	log    zerolog.Logger
}

// NewAuditService returns an AuditService that persists order events to the
// audit trail. It runs behind the queue dispatcher; a failed insert is
// logged and dropped, never propagated back to the request that caused it.
func NewAuditService(events ports.OrderEventRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{events: events, log: log}
}

func (s *auditService) Process(ctx context.Context, in ports.OrderEventInput) error {
	event := &domain.OrderEvent{
		OrderID:    in.OrderID,
		Status:     in.Status,
		ActorID:    in.ActorID,
		Note:       in.Note,
		RecordedAt: time.Now().UTC(),
	}

	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Error().Err(err).Int64("order_id", in.OrderID).Msg("audit insert failed")
		return fmt.Errorf("audit event: %w", err)
	}

	s.log.Debug().Int64("order_id", in.OrderID).Str("status", string(in.Status)).Msg("order event recorded")
	return nil
}
