package translit

// EntryOverhead exposes the fixed per-entry size estimate.
const EntryOverhead = entryOverhead

// ShardCountForTest exports shardCount.
func ShardCountForTest(n int) int {
	return shardCount(n)
}

// Contains reports whether key is stored, without sliding its expiry.
func (c *Cache) Contains(key string) bool {
	sh := c.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, ok := sh.items[key]
	return ok
}
