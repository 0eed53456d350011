package ports

import "go.trai.ch/wisp/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns it merged over the defaults.
	// A missing file is not an error when optional is true.
	Load(path string, optional bool) (domain.AppConfig, error)
}
