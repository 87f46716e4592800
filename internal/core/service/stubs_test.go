package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ims-platform/inventory-system/internal/core/domain"
	"github.com/ims-platform/inventory-system/internal/core/ports"
)

var testLog = zerolog.Nop()

// stubUserRepo is a map-backed ports.UserRepository honouring the same
// contracts as the real one: credential lookups see ACTIVE rows only and
// match emails exactly, agent lookups are role-scoped but status-blind.
type stubUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := cloneUser(u)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = copy
	return cloneUser(copy)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.Status == domain.StatusActive {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.Status != domain.StatusActive {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAgentByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.RoleID != domain.RoleIDAgent {
		return nil, domain.ErrAgentNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ListAgents(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if u.RoleID == domain.RoleIDAgent {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) CreateAgent(_ context.Context, agent *domain.User) (int64, error) {
	created := r.add(agent)
	return created.ID, nil
}

func (r *stubUserRepo) UpdateAgent(_ context.Context, id int64, in ports.UpdateAgentInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrAgentNotFound
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.ContactNumber != nil {
		u.ContactNumber = *in.ContactNumber
	}
	if in.CompanyName != nil {
		u.CompanyName = *in.CompanyName
	}
	if in.CompanyAddr != nil {
		u.CompanyAddr = *in.CompanyAddr
	}
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrAgentNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrAgentNotFound
	}
	u.Status = status
	return nil
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ListUsers(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// stubOrderRepo is a map-backed ports.OrderRepository.
type stubOrderRepo struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{nextID: 1, orders: make(map[int64]*domain.Order)}
}

func (r *stubOrderRepo) List(_ context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	r.nextID++
	r.orders[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) Statistics(_ context.Context) (*domain.OrderStatistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &domain.OrderStatistics{}
	companies := make(map[string]struct{})
	for _, o := range r.orders {
		stats.TotalOrders++
		companies[o.CompanyName] = struct{}{}
		switch o.Status {
		case domain.OrderPending:
			stats.PendingOrders++
		case domain.OrderCompleted:
			stats.CompletedOrders++
		case domain.OrderRejected:
			stats.RejectedOrders++
		}
	}
	stats.TotalCompanies = int64(len(companies))
	return stats, nil
}

// stubProductRepo serves a fixed active catalog.
type stubProductRepo struct {
	products map[int64]*domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[int64]*domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) ListActive(_ context.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if p.Status == domain.StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindActiveByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.Status != domain.StatusActive {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// stubIdempotencyStore records keys in memory.
type stubIdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]int64
}

func newStubIdempotencyStore() *stubIdempotencyStore {
	return &stubIdempotencyStore{keys: make(map[string]int64)}
}

func (s *stubIdempotencyStore) Lookup(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key], nil
}

func (s *stubIdempotencyStore) Store(_ context.Context, key string, orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = orderID
	return nil
}

// stubAuditSink collects enqueued events synchronously.
type stubAuditSink struct {
	mu     sync.Mutex
	events []ports.OrderEventInput
}

func (s *stubAuditSink) Enqueue(event ports.OrderEventInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *stubAuditSink) all() []ports.OrderEventInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.OrderEventInput, len(s.events))
	copy(out, s.events)
	return out
}

// stubEventRepo collects persisted audit rows.
type stubEventRepo struct {
	mu     sync.Mutex
	events []*domain.OrderEvent
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}
