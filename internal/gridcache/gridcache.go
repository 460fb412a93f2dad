// Package gridcache memoizes lunar month grids.
//
// The cache is owned by its caller; nothing is shared through package
// state. Entries are evicted least-recently-used once the configured size
// is reached. Concurrent misses on the same month share a single build and
// every waiter receives the same grid or the same error. Failed builds are
// not cached.
package gridcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/golang/groupcache/singleflight"

	"github.com/zapponejosh/lunar-api/internal/lunar"
)

// DefaultSize holds twenty years of months.
const DefaultSize = 240

// BuildFunc produces the grid for a Gregorian month.
type BuildFunc func(year int, month time.Month) (lunar.Grid, error)

// Stats contains cache statistics.
type Stats struct {
	Hits      int64
	Misses    int64
	Builds    int64
	Evictions int64
	Size      int
	MaxSize   int
}

type key struct {
	year  int
	month time.Month
}

func (k key) String() string {
	return fmt.Sprintf("%04d-%02d", k.year, k.month)
}

// Cache is a bounded, compute-once cache of month grids.
// All methods are safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache
	size    int
	stats   Stats

	flight singleflight.Group
	build  BuildFunc
}

// New creates a cache holding up to size grids. A size of zero or less
// selects DefaultSize; a nil build selects lunar.MonthGrid.
func New(size int, build BuildFunc) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	if build == nil {
		build = lunar.MonthGrid
	}
	c := &Cache{size: size, build: build}
	c.entries = c.newLRU()
	return c
}

// newLRU must be called with c.mu held or before c is shared.
func (c *Cache) newLRU() *lru.Cache {
	entries := lru.New(c.size)
	entries.OnEvicted = func(lru.Key, interface{}) {
		c.stats.Evictions++
	}
	return entries
}

// Get returns the grid for a Gregorian month, building it on a miss.
// Waiting for another caller's build stops when ctx is done; the build
// itself carries on and fills the cache.
func (c *Cache) Get(ctx context.Context, year int, month time.Month) (lunar.Grid, error) {
	k := key{year: year, month: month}

	if g, ok := c.lookup(k, true); ok {
		return g, nil
	}
	if err := ctx.Err(); err != nil {
		return lunar.Grid{}, err
	}

	type result struct {
		v   interface{}
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := c.flight.Do(k.String(), func() (interface{}, error) {
			// A flight that finished just before this one may have
			// stored the grid already.
			if g, ok := c.lookup(k, false); ok {
				return g, nil
			}
			g, err := c.build(year, month)
			if err != nil {
				return nil, err
			}
			c.mu.Lock()
			c.stats.Builds++
			c.entries.Add(k, g)
			c.mu.Unlock()
			return g, nil
		})
		done <- result{v: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return lunar.Grid{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return lunar.Grid{}, r.err
		}
		return r.v.(lunar.Grid), nil
	}
}

func (c *Cache) lookup(k key, count bool) (lunar.Grid, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(k)
	if count {
		if ok {
			c.stats.Hits++
		} else {
			c.stats.Misses++
		}
	}
	if !ok {
		return lunar.Grid{}, false
	}
	return v.(lunar.Grid), true
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Size = c.entries.Len()
	s.MaxSize = c.size
	return s
}

// Len returns the number of cached grids.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge drops every cached grid. Purged entries are not counted as
// evictions.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = c.newLRU()
}
