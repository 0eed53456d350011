package ports

import "go.trai.ch/wisp/internal/core/domain"

// CacheMetrics receives transliteration cache signals.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type CacheMetrics interface {
	Hit()
	Miss()
	Evict(reason domain.EvictReason)
	Size(entries int, bytes int64)
}
