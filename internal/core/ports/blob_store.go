package ports

import (
	"context"

	"go.trai.ch/tscache/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=blob_store.go -destination=mocks/mock_blob_store.go -package=mocks

// BlobStore persists encoded cache entries under an opaque address.
type BlobStore interface {
	// Get returns the blob stored at address. The boolean is false when absent.
	Get(ctx context.Context, address string) ([]byte, bool, error)

	// Put stores data at address, replacing any previous blob.
	Put(ctx context.Context, address string, data []byte) error
}

// RemoteOpener connects to the remote cache tier.
type RemoteOpener interface {
	// Open returns a BlobStore for the configured remote.
	Open(ctx context.Context, cfg domain.RemoteCacheConfig) (BlobStore, error)
}
