package table

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes loaded tables by source path so repeated UI interactions
// do not re-read the file. Entries live until Invalidate or Reload; there is
// no TTL. First loads of the same source are deduplicated with singleflight.
type Cache struct {
	loader *Loader
	logger *zap.Logger

	mu     sync.RWMutex
	tables map[string]*Table
	group  singleflight.Group

	// Statistics (accessed atomically)
	hits   uint64
	misses uint64
}

// NewCache creates a cache backed by the given loader.
func NewCache(loader *Loader, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		loader: loader,
		logger: logger,
		tables: make(map[string]*Table),
	}
}

// Get returns the cached table for source, loading it on first use.
func (c *Cache) Get(source string) (*Table, error) {
	c.mu.RLock()
	tbl, ok := c.tables[source]
	c.mu.RUnlock()
	if ok {
		atomic.AddUint64(&c.hits, 1)
		return tbl, nil
	}

	atomic.AddUint64(&c.misses, 1)
	v, err, _ := c.group.Do(source, func() (interface{}, error) {
		loaded, err := c.loader.Load(source)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.tables[source] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

// Invalidate drops the cached table for source. The next Get re-reads it.
func (c *Cache) Invalidate(source string) {
	c.mu.Lock()
	delete(c.tables, source)
	c.mu.Unlock()

	c.logger.Debug("Table cache invalidated", zap.String("source", source))
}

// Reload drops the cached entry and loads the source again immediately.
// On load failure the stale entry stays evicted, so a later Get surfaces
// the same error instead of silently serving old data.
func (c *Cache) Reload(source string) (*Table, error) {
	c.Invalidate(source)
	return c.Get(source)
}

// Stats returns cache hit/miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}
