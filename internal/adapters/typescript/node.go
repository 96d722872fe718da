package typescript

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the TypeScript compiler Graft node.
const NodeID graft.ID = "adapter.compiler.typescript"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Compiler, error) {
			return NewCompiler(), nil
		},
	})
}
