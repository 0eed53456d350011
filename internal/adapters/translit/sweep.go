package translit

import (
	"context"
	"time"

	"go.trai.ch/wisp/internal/core/domain"
)

func (c *Cache) sweepLoop(ctx context.Context, interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Sweep removes expired entries, then evicts least recently used entries
// until the estimated size is within the budget. Each removal takes a single
// shard lock, so concurrent Get calls wait for at most one removal.
func (c *Cache) Sweep() {
	now := time.Now()

	for _, sh := range c.shards {
		for {
			e, ok := sh.popExpired(now)
			if !ok {
				break
			}
			c.released(e, domain.EvictExpired)
		}
	}

	if c.maxBytes > 0 {
		for c.bytes.Load() > c.maxBytes {
			sh := c.oldestShard()
			if sh == nil {
				break
			}
			if e, ok := sh.popOldest(); ok {
				c.released(e, domain.EvictCapacity)
			}
		}
	}

	c.reportSize()
}

// oldestShard returns the shard whose least recently used entry is the
// oldest across the cache, or nil when the cache is empty.
func (c *Cache) oldestShard() *shard {
	var (
		victim *shard
		oldest time.Time
	)
	for _, sh := range c.shards {
		expiresAt, ok := sh.oldest()
		if !ok {
			continue
		}
		if victim == nil || expiresAt.Before(oldest) {
			victim, oldest = sh, expiresAt
		}
	}
	return victim
}
