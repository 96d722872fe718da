package cas

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/zerr"
)

// FilesystemFunc returns the filesystem rooted at a cache folder.
type FilesystemFunc func(dir string) billy.Filesystem

// OSFilesystem roots an osfs filesystem at dir.
func OSFilesystem(dir string) billy.Filesystem {
	return osfs.New(dir)
}

// Factory implements ports.CacheFactory. It builds a local disk tier and, when
// a remote is configured, a remote tier behind it.
type Factory struct {
	remote   ports.RemoteOpener
	newFS    FilesystemFunc
	compress bool
	cfg      domain.RemoteCacheConfig
}

// NewFactory creates a Factory with compression enabled and no remote tier.
func NewFactory(remote ports.RemoteOpener) *Factory {
	return &Factory{
		remote:   remote,
		newFS:    OSFilesystem,
		compress: true,
	}
}

// WithConfig returns a copy of f configured from cfg.
func (f *Factory) WithConfig(cfg *domain.Config) ports.CacheFactory {
	c := *f
	c.compress = cfg.Compress
	c.cfg = cfg.Remote
	return &c
}

// WithFilesystem returns a copy of f that roots cache folders through fn.
func (f *Factory) WithFilesystem(fn FilesystemFunc) *Factory {
	c := *f
	c.newFS = fn
	return &c
}

// Open builds the cache persisting under dir.
func (f *Factory) Open(ctx context.Context, dir string) (ports.Cache, error) {
	codec, err := NewCodec(f.compress)
	if err != nil {
		return nil, err
	}

	tiers := []ports.BlobStore{NewDiskStore(f.newFS(dir))}

	if f.cfg.Enabled() {
		if f.remote == nil {
			return nil, zerr.With(domain.ErrRemoteCacheFailed, "bucket", f.cfg.Bucket)
		}
		remote, err := f.remote.Open(ctx, f.cfg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteCacheFailed.Error()), "bucket", f.cfg.Bucket)
		}
		tiers = append(tiers, remote)
	}

	return NewCache(codec, tiers...), nil
}
