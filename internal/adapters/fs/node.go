package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/masonbuild/mason/internal/core/ports"
)

// StamperNodeID is the unique identifier for the Stamper Graft node.
const StamperNodeID graft.ID = "adapter.fs.stamper"

func init() {
	graft.Register(graft.Node[ports.Timestamper]{
		ID:        StamperNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Timestamper, error) {
			return NewStamper(), nil
		},
	})
}
