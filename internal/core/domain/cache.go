package domain

// CacheStats is a point-in-time snapshot of the transliteration cache.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
	Bytes     int64
}

// EvictReason explains why an entry left the cache.
type EvictReason string

const (
	// EvictExpired marks entries removed because their sliding window elapsed.
	EvictExpired EvictReason = "expired"
	// EvictCapacity marks entries removed to get back under the memory budget.
	EvictCapacity EvictReason = "capacity"
)
