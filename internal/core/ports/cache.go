package ports

import (
	"context"

	"go.trai.ch/tscache/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache is a content-addressed store of compiled output.
type Cache interface {
	// Get returns the cached output for key. The boolean is false on a miss.
	Get(ctx context.Context, key domain.CacheParams) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key domain.CacheParams, value string) error
}

// CacheFactory constructs the cache for a resolved cache folder.
type CacheFactory interface {
	// Open returns a Cache persisting under dir, which is absolute.
	Open(ctx context.Context, dir string) (Cache, error)
}

// CacheProvider binds a CacheFactory to a project configuration.
type CacheProvider interface {
	// WithConfig returns a CacheFactory honoring the cache settings of cfg.
	WithConfig(cfg *domain.Config) CacheFactory
}

// CacheInspector reports on and removes cache folders.
type CacheInspector interface {
	// Stats counts the entries stored under dir.
	Stats(dir string) (domain.CacheStats, error)

	// Clear removes the entries stored under dir. dir itself and any other
	// files in it are left in place.
	Clear(dir string) error
}
