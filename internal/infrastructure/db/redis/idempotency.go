package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps Idempotency-Key headers to the order id created for
// them, so retried submissions replay the original result.
// Key format: idem:order:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the order id previously stored under key, or 0 when the
// key has not been seen.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, error) {
	id, err := s.client.Get(ctx, s.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Store records the order id created for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Store(ctx context.Context, key string, orderID int64) error {
	return s.client.Set(ctx, s.key(key), orderID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(k string) string {
	return "idem:order:" + k
}
