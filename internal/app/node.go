package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wisp/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/i18n"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/pinyin"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			pinyin.NodeID,
			i18n.NodeID,
			watcher.NodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	converter, err := graft.Dep[ports.Converter](ctx)
	if err != nil {
		return nil, err
	}

	translator, err := graft.Dep[ports.Translator](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.FileWatcher](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[*metrics.Collector](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, converter, translator, fileWatcher, collector), nil
}
