package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ngopi/config"
	"ngopi/internal/usecase"
)

// loaderFunc refetches the value behind a cache entry.
type loaderFunc func(ctx context.Context) (any, error)

// cacheEntry is one cached listing plus its bookkeeping. reload is the
// closure that fetched the value, kept so the background sweep can refresh
// the entry without knowing what it holds.
type cacheEntry struct {
	data       any
	fetchedAt  time.Time
	lastAccess time.Time
	reload     loaderFunc
}

// ListingCache is the process-wide read cache for cafe and rating listings.
// A fresh process starts cold; nothing survives restarts.
type ListingCache struct {
	freshFor        time.Duration
	retainFor       time.Duration
	revalidateEvery time.Duration

	pacer  usecase.StorePacer
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*cacheEntry
	now     func() time.Time
}

// NewListingCache creates the cache shared by the cafe and rating services.
func NewListingCache(cfg *config.Config, pacer usecase.StorePacer, logger *slog.Logger) *ListingCache {
	return &ListingCache{
		freshFor:        cfg.Cache.FreshFor,
		retainFor:       cfg.Cache.RetainFor,
		revalidateEvery: cfg.Cache.RevalidateEvery,
		pacer:           pacer,
		logger:          logger,
		entries:         make(map[string]*cacheEntry),
		now:             time.Now,
	}
}

// lookup returns the cached value and its fetch time, marking the entry as
// used. The last return is false on a miss.
func (c *ListingCache) lookup(key string) (any, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, time.Time{}, false
	}
	entry.lastAccess = c.now()

	return entry.data, entry.fetchedAt, true
}

// store saves a freshly fetched value together with the closure that fetched it.
func (c *ListingCache) store(key string, data any, reload loaderFunc) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		data:       data,
		fetchedAt:  now,
		lastAccess: now,
		reload:     reload,
	}
}

// invalidate drops the given keys.
func (c *ListingCache) invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// invalidatePrefix drops every key with the given prefix. Mutations use it
// to clear all listing queries at once.
func (c *ListingCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Run drives eviction and background revalidation until ctx is cancelled.
// The entrypoint starts it in its own goroutine.
func (c *ListingCache) Run(ctx context.Context) {
	ticker := time.NewTicker(c.revalidateEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

// sweep is one maintenance pass: evict entries unused for retainFor, then
// refresh the stale survivors. Each refresh waits for a limiter slot so
// maintenance traffic never starves foreground requests.
func (c *ListingCache) sweep(ctx context.Context) {
	if evicted := c.evictUnused(); evicted > 0 {
		c.logger.Debug("evicted unused cache entries", slog.Int("count", evicted))
	}

	for _, key := range c.staleKeys() {
		if err := c.refresh(ctx, key); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("background revalidation failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
}

// evictUnused drops entries whose last read is older than retainFor.
func (c *ListingCache) evictUnused() int {
	cutoff := c.now().Add(-c.retainFor)

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, entry := range c.entries {
		if entry.lastAccess.Before(cutoff) {
			delete(c.entries, key)
			evicted++
		}
	}

	return evicted
}

// staleKeys lists entries past the freshness window.
func (c *ListingCache) staleKeys() []string {
	cutoff := c.now().Add(-c.freshFor)

	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for key, entry := range c.entries {
		if entry.fetchedAt.Before(cutoff) {
			keys = append(keys, key)
		}
	}

	return keys
}

// refresh refetches one entry through its stored loader. lastAccess is left
// alone; a revalidation is not a use.
func (c *ListingCache) refresh(ctx context.Context, key string) error {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	if err := c.pacer.WaitForSlot(ctx); err != nil {
		return err
	}

	data, err := entry.reload(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if current, ok := c.entries[key]; ok {
		current.data = data
		current.fetchedAt = c.now()
	}
	c.mu.Unlock()

	return nil
}
