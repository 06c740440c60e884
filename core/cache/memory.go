package cache

import (
	"context"
	"sync"
	"time"
)

type memoryCache struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryCache is used when no redis is configured and in tests. State is
// local to the process.
func NewMemoryCache() Cache {
	return &memoryCache{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (c *memoryCache) RevokeSession(_ context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for id, exp := range c.revoked {
		if now.After(exp) {
			delete(c.revoked, id)
		}
	}
	c.revoked[sessionID] = now.Add(ttl)
	return nil
}

func (c *memoryCache) IsSessionRevoked(_ context.Context, sessionID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	exp, ok := c.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if c.now().After(exp) {
		delete(c.revoked, sessionID)
		return false, nil
	}
	return true, nil
}

func (c *memoryCache) Close() error {
	return nil
}
