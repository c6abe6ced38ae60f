package cache

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
)

type memoryEntry struct {
	status    domain.FiscalYearStatus
	expiresAt time.Time
}

// MemoryYearStatusCache keeps fiscal year statuses in process memory.
// It is only correct for single-instance deployments: a close on another
// instance is seen here only after the TTL expires.
type MemoryYearStatusCache struct {
	mu      sync.RWMutex
	entries map[int]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryYearStatusCache creates an in-process cache. A zero ttl never expires entries.
func NewMemoryYearStatusCache(ttl time.Duration) *MemoryYearStatusCache {
	return &MemoryYearStatusCache{
		entries: make(map[int]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

var _ portsrepo.YearStatusCache = (*MemoryYearStatusCache)(nil)

func (c *MemoryYearStatusCache) Get(_ context.Context, year int) (domain.FiscalYearStatus, bool) {
	c.mu.RLock()
	entry, ok := c.entries[year]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, year)
		c.mu.Unlock()
		return "", false
	}
	return entry.status, true
}

func (c *MemoryYearStatusCache) Set(_ context.Context, year int, status domain.FiscalYearStatus) {
	entry := memoryEntry{status: status}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[year] = entry
	c.mu.Unlock()
}

func (c *MemoryYearStatusCache) Invalidate(_ context.Context, year int) {
	c.mu.Lock()
	delete(c.entries, year)
	c.mu.Unlock()
}
