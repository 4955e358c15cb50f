package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryIndex is the in-process Index used when no Redis URL is configured
type MemoryIndex struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryIndex) Close() error {
	return nil
}

func (m *MemoryIndex) IsProcessed(ctx context.Context, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.expires[hash]
	if !ok {
		return false, nil
	}
	if !exp.IsZero() && !m.now().Before(exp) {
		delete(m.expires, hash)
		return false, nil
	}
	return true, nil
}

// MarkProcessed records hash; a ttl <= 0 never expires.
func (m *MemoryIndex) MarkProcessed(ctx context.Context, hash string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = m.now().Add(ttl)
	}
	m.expires[hash] = exp
	return nil
}
