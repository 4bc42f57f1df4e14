package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// locationEntry holds the cached assets of one location.
type locationEntry struct {
	assets []Asset
	built  time.Time
}

// CachedRegistry decorates a Registry with TTL caching of location lookups.
// Code lookups always reach the underlying registry.
type CachedRegistry struct {
	next Registry
	ttl  time.Duration
	now  func() time.Time

	// lookupTimeout bounds a shared rebuild, which no single caller can cancel.
	lookupTimeout time.Duration

	mu      sync.RWMutex
	entries map[string]locationEntry
	sf      singleflight.Group
}

const defaultLookupTimeout = 30 * time.Second

// NewCachedRegistry wraps next. A zero ttl disables caching.
func NewCachedRegistry(next Registry, ttl time.Duration) *CachedRegistry {
	return &CachedRegistry{
		next:          next,
		ttl:           ttl,
		now:           time.Now,
		lookupTimeout: defaultLookupTimeout,
		entries:       make(map[string]locationEntry),
	}
}

func (c *CachedRegistry) FindByCode(ctx context.Context, code string) (*Asset, error) {
	return c.next.FindByCode(ctx, code)
}

func (c *CachedRegistry) FindByCodes(ctx context.Context, codes []string) ([]Asset, error) {
	return c.next.FindByCodes(ctx, codes)
}

// FindByLocation serves fresh entries from the cache and rebuilds stale ones once,
// however many callers ask concurrently.
func (c *CachedRegistry) FindByLocation(ctx context.Context, location string) ([]Asset, error) {
	if c.ttl <= 0 {
		return c.next.FindByLocation(ctx, location)
	}

	if assets, ok := c.fresh(location); ok {
		return assets, nil
	}

	ch := c.sf.DoChan(location, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if assets, ok := c.fresh(location); ok {
			return assets, nil
		}

		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.lookupTimeout)
		defer cancel()

		assets, err := c.next.FindByLocation(lookupCtx, location)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[location] = locationEntry{assets: assets, built: c.now()}
		c.mu.Unlock()

		return assets, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return copyAssets(res.Val.([]Asset)), nil
	}
}

func (c *CachedRegistry) fresh(location string) ([]Asset, bool) {
	c.mu.RLock()
	entry, ok := c.entries[location]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return copyAssets(entry.assets), true
}

// copyAssets keeps callers from mutating the cached slice.
func copyAssets(in []Asset) []Asset {
	out := make([]Asset, len(in))
	copy(out, in)
	return out
}
