package pinyin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wisp/internal/core/ports"
)

// NodeID is the unique identifier for the converter Graft node.
const NodeID graft.ID = "adapter.converter"

func init() {
	graft.Register(graft.Node[ports.Converter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Converter, error) {
			return NewConverter(), nil
		},
	})
}
