package mongodb

import (
	"context"
	"time"
)

// CacheService is the read-through cache used by repositories. A nil cache
// is valid; repositories fall back to the store.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
