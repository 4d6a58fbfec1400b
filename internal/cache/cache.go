package cache

import (
	"context"
	"time"
)

// Cache stores serialized calculation results keyed by their parameters.
// A zero TTL means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
