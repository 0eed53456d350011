package i18n

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wisp/internal/core/ports"
)

// NodeID is the unique identifier for the translator Graft node.
const NodeID graft.ID = "adapter.translator"

func init() {
	graft.Register(graft.Node[ports.Translator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Translator, error) {
			return NewTranslator()
		},
	})
}
