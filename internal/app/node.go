package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tscache/internal/adapters/cas"        //nolint:depguard // Wired in app layer
	"go.trai.ch/tscache/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tscache/internal/adapters/esbuild"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tscache/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tscache/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tscache/internal/adapters/typescript" //nolint:depguard // Wired in app layer
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/tscache/internal/engine/transpiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			transpiler.NodeID,
			cas.FactoryNodeID,
			cas.InspectorNodeID,
			esbuild.NodeID,
			typescript.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	transpilers, err := graft.Dep[*transpiler.Factory](ctx)
	if err != nil {
		return nil, err
	}

	caches, err := graft.Dep[*cas.Factory](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.CacheInspector](ctx)
	if err != nil {
		return nil, err
	}

	esb, err := graft.Dep[*esbuild.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	tsc, err := graft.Dep[*typescript.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	compilers := map[string]ports.Compiler{
		domain.CompilerEsbuild:    esb,
		domain.CompilerTypeScript: tsc,
	}

	return New(loader, transpilers, caches, inspector, compilers, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
