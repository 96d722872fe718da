package transpiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tscache/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tscache/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tscache/internal/core/ports"
)

// NodeID is the unique identifier for the transpiler factory Graft node.
const NodeID graft.ID = "engine.transpiler"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LocatorNodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			locator, err := graft.Dep[ports.RootLocator](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(locator, tracer), nil
		},
	})
}
