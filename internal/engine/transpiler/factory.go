package transpiler

import "go.trai.ch/tscache/internal/core/ports"

// Factory creates Transpilers that share a root locator and tracer.
type Factory struct {
	locator ports.RootLocator
	tracer  ports.Tracer
}

// NewFactory creates a new Factory.
func NewFactory(locator ports.RootLocator, tracer ports.Tracer) *Factory {
	return &Factory{
		locator: locator,
		tracer:  tracer,
	}
}

// New creates a Transpiler for compiler, persisting through cacheFactory.
func (f *Factory) New(compiler ports.Compiler, cacheFactory ports.CacheFactory, opts Options) *Transpiler {
	return New(compiler, f.locator, cacheFactory, f.tracer, opts)
}

// Locator returns the root locator shared by every Transpiler of this factory.
func (f *Factory) Locator() ports.RootLocator {
	return f.locator
}
