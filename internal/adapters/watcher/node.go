package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wisp/internal/adapters/logger"
	"go.trai.ch/wisp/internal/core/ports"
)

// NodeID is the unique identifier for the settings watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.FileWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FileWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(DefaultDebounceWindow, log), nil
		},
	})
}
