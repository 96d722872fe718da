package s3cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tscache/internal/core/ports"
)

// NodeID is the unique identifier for the S3 remote opener Graft node.
const NodeID graft.ID = "adapter.s3cache.opener"

func init() {
	graft.Register(graft.Node[ports.RemoteOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RemoteOpener, error) {
			return NewOpener(), nil
		},
	})
}
