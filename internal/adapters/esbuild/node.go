package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the esbuild compiler Graft node.
const NodeID graft.ID = "adapter.compiler.esbuild"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Compiler, error) {
			return NewCompiler(), nil
		},
	})
}
