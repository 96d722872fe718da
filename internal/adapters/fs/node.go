package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tscache/internal/core/ports"
)

// LocatorNodeID is the unique identifier for the root locator Graft node.
const LocatorNodeID graft.ID = "adapter.fs.locator"

func init() {
	graft.Register(graft.Node[ports.RootLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RootLocator, error) {
			return NewLocator(), nil
		},
	})
}
