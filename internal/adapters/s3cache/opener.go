package s3cache

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener implements ports.RemoteOpener for S3 buckets.
type Opener struct {
	load LoadFunc
}

// NewOpener creates an Opener using the default AWS configuration chain.
func NewOpener() *Opener {
	return &Opener{load: config.LoadDefaultConfig}
}

// NewOpenerWithLoader creates an Opener that loads AWS configuration through load.
func NewOpenerWithLoader(load LoadFunc) *Opener {
	return &Opener{load: load}
}

// Open connects to the configured bucket.
func (o *Opener) Open(ctx context.Context, cfg domain.RemoteCacheConfig) (ports.BlobStore, error) {
	awsCfg, err := loadAWSConfig(ctx, o.load, cfg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteCacheFailed.Error()), "bucket", cfg.Bucket)
	}
	return NewStore(newClient(awsCfg, cfg), cfg.Bucket, cfg.Prefix), nil
}
