// Package translit memoizes transliterations behind a bounded, sliding-expiry cache.
package translit

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// ConvertFunc is the expensive conversion fronted by the cache.
type ConvertFunc func(input string) (string, error)

// Cache maps raw input strings to their converted form.
//
// Entries expire after SlidingWindow without a read. A background sweep runs
// every PollInterval, drops expired entries and then evicts least recently
// used entries until the estimated size fits MaxBytes.
type Cache struct {
	shards []*shard
	mask   uint64

	maxBytes int64
	window   time.Duration

	bytes      atomic.Int64
	hits       atomic.Uint64
	misses     atomic.Uint64
	evictions  atomic.Uint64
	generation atomic.Uint64

	flights singleflight.Group
	metrics ports.CacheMetrics

	closed    atomic.Bool
	closeOnce sync.Once
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a cache and starts its sweep goroutine.
// A nil metrics sink discards all signals.
func New(cfg domain.CacheConfig, metrics ports.CacheMetrics) *Cache {
	if metrics == nil {
		metrics = discardMetrics{}
	}
	if cfg.SlidingWindow <= 0 {
		cfg.SlidingWindow = domain.DefaultSlidingWindow
	}

	n := shardCount(cfg.Shards)
	c := &Cache{
		shards:   make([]*shard, n),
		mask:     uint64(n - 1), //nolint:gosec // n is a positive power of two
		maxBytes: cfg.MaxBytes,
		window:   cfg.SlidingWindow,
		metrics:  metrics,
	}
	for i := range c.shards {
		c.shards[i] = newShard()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	if cfg.PollInterval > 0 {
		c.wg.Add(1)
		go c.sweepLoop(ctx, cfg.PollInterval)
	}

	return c
}

// Get returns the converted form of input.
//
// When enabled is false the input is returned as is and the cache is not
// touched. Otherwise a live entry is returned and its expiry slid forward, or
// convert is called once for all concurrent callers missing the same key.
// A failed conversion is returned unchanged and nothing is stored.
func (c *Cache) Get(input string, enabled bool, convert ConvertFunc) (string, error) {
	if !enabled {
		return input, nil
	}
	if c.closed.Load() {
		return "", domain.ErrCacheClosed
	}

	sh := c.shardFor(input)
	value, ok, evicted := sh.lookup(input, time.Now(), c.window)
	if evicted != nil {
		c.released(evicted, domain.EvictExpired)
	}
	if ok {
		c.hits.Add(1)
		c.metrics.Hit()
		return value, nil
	}

	c.misses.Add(1)
	c.metrics.Miss()

	gen := c.generation.Load()
	result, err, _ := c.flights.Do(flightKey(gen, input), func() (any, error) {
		// A flight that finished just before this one started may already have stored the value.
		v, hit, stale := sh.lookup(input, time.Now(), c.window)
		if stale != nil {
			c.released(stale, domain.EvictExpired)
		}
		if hit {
			return v, nil
		}

		converted, err := convert(input)
		if err != nil {
			return "", err
		}

		if c.generation.Load() == gen && !c.closed.Load() {
			c.bytes.Add(sh.store(input, converted, time.Now().Add(c.window)))
		}
		return converted, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil //nolint:forcetypeassert // flights only return strings
}

// Purge drops every entry. Conversions already in flight do not store their result.
func (c *Cache) Purge() {
	c.generation.Add(1)
	for _, sh := range c.shards {
		_, bytes := sh.reset()
		c.bytes.Add(-bytes)
	}
	c.reportSize()
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *Cache) Len() int {
	total := 0
	for _, sh := range c.shards {
		total += sh.count()
	}
	return total
}

// Bytes returns the estimated memory held by stored entries.
func (c *Cache) Bytes() int64 {
	return c.bytes.Load()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() domain.CacheStats {
	return domain.CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.Len(),
		Bytes:     c.Bytes(),
	}
}

// Close stops the sweep goroutine. Get fails with domain.ErrCacheClosed afterwards.
func (c *Cache) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.cancel()
		c.wg.Wait()
	})
	return nil
}

func (c *Cache) shardFor(key string) *shard {
	return c.shards[xxhash.Sum64String(key)&c.mask]
}

func (c *Cache) released(e *entry, reason domain.EvictReason) {
	c.bytes.Add(-e.size)
	c.evictions.Add(1)
	c.metrics.Evict(reason)
}

func (c *Cache) reportSize() {
	c.metrics.Size(c.Len(), c.Bytes())
}

func flightKey(gen uint64, input string) string {
	return strconv.FormatUint(gen, 36) + "\x00" + input
}

func shardCount(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

type discardMetrics struct{}

func (discardMetrics) Hit()                     {}
func (discardMetrics) Miss()                    {}
func (discardMetrics) Evict(domain.EvictReason) {}
func (discardMetrics) Size(int, int64)          {}
