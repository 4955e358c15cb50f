package cache

import (
	"context"
	"time"
)

// Index remembers which article URLs (by hash) were already archived
type Index interface {
	IsProcessed(ctx context.Context, hash string) (bool, error)
	MarkProcessed(ctx context.Context, hash string, ttl time.Duration) error
	Close() error
}
