package ports

import "go.trai.ch/wisp/internal/core/domain"

// SettingsStore defines the interface for persisting the settings document.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SettingsStore interface {
	// Load returns the stored settings, or the defaults if none were saved yet.
	// A corrupt document yields the defaults together with domain.ErrStoreCorrupt.
	Load() (domain.Settings, error)

	// Save replaces the stored settings atomically.
	Save(settings domain.Settings) error

	// Path returns the location of the settings document.
	Path() string
}
