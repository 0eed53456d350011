// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wisp/internal/adapters/config"
	_ "go.trai.ch/wisp/internal/adapters/i18n"
	_ "go.trai.ch/wisp/internal/adapters/logger"
	_ "go.trai.ch/wisp/internal/adapters/metrics"
	_ "go.trai.ch/wisp/internal/adapters/pinyin"
	_ "go.trai.ch/wisp/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/wisp/internal/app"
)
