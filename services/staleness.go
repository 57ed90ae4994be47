package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"khatapro-client/storage"
)

// ListCache is a staleness-gated list snapshot. Entering a screen
// calls OnFocus: if the cache was populated less than TTL ago the
// network round-trip is skipped entirely; otherwise the list is
// refetched and both the in-memory copy and the persisted snapshot are
// updated. A pull-to-refresh calls Refresh, which bypasses the gate.
type ListCache[T any] struct {
	TTL    time.Duration
	Store  storage.Store
	Key    string
	Fetch  func(context.Context) ([]T, error)
	Logger *zap.Logger

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time

	mu        sync.Mutex
	items     []T
	populated bool
	lastFetch time.Time
}

type snapshot[T any] struct {
	Items     []T   `json:"items"`
	FetchedAt int64 `json:"fetched_at"`
}

// OnFocus returns the current list, fetching only when the cache is
// stale or has never been populated. fetched reports whether a network
// call happened.
func (c *ListCache[T]) OnFocus(ctx context.Context) (items []T, fetched bool, err error) {
	c.mu.Lock()
	if c.populated && c.now().Sub(c.lastFetch) < c.TTL {
		items = c.items
		c.mu.Unlock()
		return items, false, nil
	}
	c.mu.Unlock()

	items, err = c.Refresh(ctx)
	return items, true, err
}

// Refresh always hits the network and replaces the cache. A persist
// failure is logged and otherwise ignored; the fetch still succeeds.
func (c *ListCache[T]) Refresh(ctx context.Context) ([]T, error) {
	items, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items = items
	c.populated = true
	c.lastFetch = c.now()
	fetchedAt := c.lastFetch.UnixMilli()
	c.mu.Unlock()

	if c.Store != nil && c.Key != "" {
		raw, err := json.Marshal(snapshot[T]{Items: items, FetchedAt: fetchedAt})
		if err == nil {
			if err := c.Store.Set(ctx, c.Key, string(raw)); err != nil {
				c.Logger.Warn("failed to persist cache snapshot", zap.String("key", c.Key), zap.Error(err))
			}
		}
	}
	return items, nil
}

// LoadPersisted seeds the in-memory cache from the persisted snapshot,
// as an offline-read fallback. The snapshot's age still gates the next
// OnFocus. Returns false when nothing usable was stored.
func (c *ListCache[T]) LoadPersisted(ctx context.Context) bool {
	if c.Store == nil || c.Key == "" {
		return false
	}
	raw, err := c.Store.Get(ctx, c.Key)
	if err != nil || raw == "" {
		return false
	}
	var snap snapshot[T]
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return false
	}

	c.mu.Lock()
	c.items = snap.Items
	c.populated = true
	c.lastFetch = time.UnixMilli(snap.FetchedAt)
	c.mu.Unlock()
	return true
}

// Items returns the in-memory copy without any fetching.
func (c *ListCache[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *ListCache[T]) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
