package s3cache

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.trai.ch/tscache/internal/core/domain"
)

// LoadFunc loads the AWS SDK configuration.
type LoadFunc func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)

// loadAWSConfig inherits the shell's AWS setup (AWS_PROFILE, shared config,
// env, IMDS); profile and region from cfg override it when set.
func loadAWSConfig(ctx context.Context, load LoadFunc, cfg domain.RemoteCacheConfig) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	return load(ctx, loadOpts...)
}

// newClient builds an S3 client. A custom endpoint (MinIO, R2, LocalStack)
// switches to path-style addressing.
func newClient(awsCfg aws.Config, cfg domain.RemoteCacheConfig) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}
