package domain

import (
	"log/slog"
	"time"
)

const (
	// DefaultCacheMaxBytes is the transliteration cache budget (30 MB).
	DefaultCacheMaxBytes int64 = 30 * 1000 * 1000

	// DefaultSlidingWindow is how long an unread cache entry stays alive.
	DefaultSlidingWindow = 12 * time.Hour

	// DefaultPollInterval is how often the cache sweep runs.
	DefaultPollInterval = 5 * time.Minute

	// DefaultCacheShards is the number of independently locked cache shards.
	DefaultCacheShards = 16
)

// CacheConfig configures the transliteration cache.
type CacheConfig struct {
	// MaxBytes is the soft memory budget enforced by the sweep. Zero disables it.
	MaxBytes int64
	// SlidingWindow is the idle time after which an entry expires.
	SlidingWindow time.Duration
	// PollInterval is the period of the eviction sweep. Zero disables the sweep goroutine.
	PollInterval time.Duration
	// Shards is the number of cache shards; rounded up to a power of two.
	Shards int
}

// DefaultCacheConfig returns the cache configuration used when nothing is configured.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxBytes:      DefaultCacheMaxBytes,
		SlidingWindow: DefaultSlidingWindow,
		PollInterval:  DefaultPollInterval,
		Shards:        DefaultCacheShards,
	}
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool
	Level slog.Level
}

// AppConfig is the process configuration loaded from wisp.yaml.
type AppConfig struct {
	// DataRoot overrides the resolved data directory when non-empty.
	DataRoot string
	// Portable stores data next to the executable instead of the user config directory.
	Portable bool
	Cache    CacheConfig
	Log      LogConfig
}

// DefaultAppConfig returns the configuration used when no config file exists.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Cache: DefaultCacheConfig(),
		Log:   LogConfig{Level: slog.LevelInfo},
	}
}
