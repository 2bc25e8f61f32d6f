package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/application/storefront"
)

// InMemoryProjectionCache implements storefront.ProjectionCache with a
// process-local map. Used when no Redis instance is configured.
type InMemoryProjectionCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	resp      *storefront.Response
	expiresAt time.Time
}

// NewInMemoryProjectionCache creates an in-memory storefront projection cache
func NewInMemoryProjectionCache(ttl time.Duration) *InMemoryProjectionCache {
	return &InMemoryProjectionCache{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves the cached projection for a store
func (c *InMemoryProjectionCache) Get(_ context.Context, storeID uuid.UUID) (*storefront.Response, bool) {
	c.mu.RLock()
	entry, ok := c.entries[storeID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, storeID)
		c.mu.Unlock()
		return nil, false
	}
	return entry.resp, true
}

// Set stores the projection for a store
func (c *InMemoryProjectionCache) Set(_ context.Context, storeID uuid.UUID, resp *storefront.Response) {
	if resp == nil {
		return
	}
	c.mu.Lock()
	c.entries[storeID] = memoryEntry{
		resp:      resp,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// InvalidateStore drops the cached projection for a store
func (c *InMemoryProjectionCache) InvalidateStore(_ context.Context, storeID uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, storeID)
	c.mu.Unlock()
}

var _ storefront.ProjectionCache = (*InMemoryProjectionCache)(nil)
