package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tscache/internal/adapters/s3cache" //nolint:depguard // Remote tier wired into the cache factory
	"go.trai.ch/tscache/internal/core/ports"
)

const (
	// FactoryNodeID is the unique identifier for the cache factory Graft node.
	FactoryNodeID graft.ID = "adapter.cas.factory"
	// InspectorNodeID is the unique identifier for the cache inspector Graft node.
	InspectorNodeID graft.ID = "adapter.cas.inspector"
)

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{s3cache.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			remote, err := graft.Dep[ports.RemoteOpener](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(remote), nil
		},
	})

	graft.Register(graft.Node[ports.CacheInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheInspector, error) {
			return NewInspector(), nil
		},
	})
}
