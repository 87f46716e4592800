package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []ports.OrderEventInput
}

func (s *recordingAuditService) Process(_ context.Context, in ports.OrderEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, in)
	return nil
}

func (s *recordingAuditService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *recordingAuditService) forOrder(orderID int64) []ports.OrderEventInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ports.OrderEventInput
	for _, e := range s.events {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_DeliversAll(t *testing.T) {
	svc := &recordingAuditService{}
	d := NewDispatcher(3, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := int64(1); i <= 20; i++ {
		d.Enqueue(ports.OrderEventInput{OrderID: i, Status: domain.OrderPending})
	}

	waitFor(t, func() bool { return svc.count() == 20 })
}

func TestDispatcher_PerOrderOrdering(t *testing.T) {
	svc := &recordingAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	statuses := []domain.OrderStatus{domain.OrderPending, domain.OrderCompleted, domain.OrderRejected}
	for _, st := range statuses {
		d.Enqueue(ports.OrderEventInput{OrderID: 7, Status: st})
	}

	waitFor(t, func() bool { return len(svc.forOrder(7)) == 3 })

	// Same order id always lands on the same worker, so events arrive in
	// submission order.
	got := svc.forOrder(7)
	for i, st := range statuses {
		if got[i].Status != st {
			t.Fatalf("event %d out of order: got %s want %s", i, got[i].Status, st)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingAuditService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
