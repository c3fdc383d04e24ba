package bitgrid

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// TableCache memoizes Tables per (shape, backend). Lookups for a shape that
// is being built wait for that build instead of starting another one.
// Least recently used entries are evicted once the capacity is reached.
//
// TableCache is safe for concurrent use. The returned tables are shared.
type TableCache struct {
	mu        sync.Mutex
	capacity  int
	items     map[tableKey]*list.Element
	evictList *list.List
	group     singleflight.Group

	logger  *Logger
	metrics MetricsCollector

	hits   atomic.Int64
	misses atomic.Int64
}

type tableKey struct {
	shape Shape
	kind  Kind
}

func (k tableKey) String() string { return k.shape.String() + "/" + k.kind.String() }

type cacheEntry struct {
	key   tableKey
	value any
}

// NewTableCache creates a cache configured by opts.
func NewTableCache(opts ...Option) *TableCache {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &TableCache{
		capacity:  o.capacity,
		items:     make(map[tableKey]*list.Element),
		evictList: list.New(),
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}
}

// Word returns the tables for a Word-backed grid of shape s.
func (c *TableCache) Word(ctx context.Context, s Shape) (*Tables[*Word], error) {
	v, err := c.load(ctx, tableKey{s, KindWord}, func() any {
		return NewTables(EmptyWord(s.Width, s.Height, s.ColumnMajor))
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables[*Word]), nil
}

// DoubleWord returns the tables for a DoubleWord-backed grid of shape s.
func (c *TableCache) DoubleWord(ctx context.Context, s Shape) (*Tables[*DoubleWord], error) {
	v, err := c.load(ctx, tableKey{s, KindDoubleWord}, func() any {
		return NewTables(EmptyDoubleWord(s.Width, s.Height, s.ColumnMajor))
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables[*DoubleWord]), nil
}

// WordArray returns the tables for a WordArray-backed grid of shape s.
func (c *TableCache) WordArray(ctx context.Context, s Shape) (*Tables[*WordArray], error) {
	v, err := c.load(ctx, tableKey{s, KindWordArray}, func() any {
		return NewTables(EmptyWordArray(s.Width, s.Height, s.ColumnMajor))
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables[*WordArray]), nil
}

func (c *TableCache) load(ctx context.Context, key tableKey, build func() any) (any, error) {
	if err := CheckCapacity(key.shape, key.kind); err != nil {
		return nil, err
	}
	if v, ok := c.get(key); ok {
		c.metrics.RecordCacheHit()
		return v, nil
	}
	c.metrics.RecordCacheMiss()

	ch := c.group.DoChan(key.String(), func() (any, error) {
		// Another caller may have finished the build while we waited.
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		start := time.Now()
		v := build()
		took := time.Since(start)
		c.metrics.RecordTableBuild(key.kind, took, nil)
		c.logger.LogTableBuild(ctx, key.shape, key.kind, took, nil)
		c.set(ctx, key, v)
		return v, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *TableCache) get(key tableKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*cacheEntry).value, true
	}
	c.misses.Add(1)
	return nil, false
}

func (c *TableCache) peek(key tableKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		return ent.Value.(*cacheEntry).value, true
	}
	return nil, false
}

func (c *TableCache) set(ctx context.Context, key tableKey, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value.(*cacheEntry).value = v
		return
	}

	c.items[key] = c.evictList.PushFront(&cacheEntry{key: key, value: v})
	for c.evictList.Len() > c.capacity {
		ent := c.evictList.Back()
		if ent == nil {
			break
		}
		c.removeElement(ent)
		c.metrics.RecordEviction()
		c.logger.LogCacheEvict(ctx, ent.Value.(*cacheEntry).key.shape, ent.Value.(*cacheEntry).key.kind)
	}
}

func (c *TableCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	delete(c.items, e.Value.(*cacheEntry).key)
}

// Len returns the number of cached table sets.
func (c *TableCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Purge drops every cached table set.
func (c *TableCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[tableKey]*list.Element)
	c.evictList.Init()
}

// Stats returns the number of lookups served from the cache and the number
// that had to build.
func (c *TableCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
