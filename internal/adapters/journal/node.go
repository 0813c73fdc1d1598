package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/masonbuild/mason/internal/core/ports"
)

// NodeID is the unique identifier for the JournalStore Graft node.
const NodeID graft.ID = "adapter.journal"

func init() {
	graft.Register(graft.Node[ports.JournalStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.JournalStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
