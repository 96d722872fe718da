// Package s3cache implements the remote cache tier on Amazon S3.
package s3cache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

const contentType = "application/json"

// Client is the subset of the S3 API the store uses.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store implements ports.BlobStore with one object per blob.
type Store struct {
	client Client
	bucket string
	prefix string
}

// NewStore creates a Store writing below prefix in bucket.
func NewStore(client Client, bucket, prefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: prefix}
}

// Get downloads the object at address.
func (s *Store) Get(ctx context.Context, address string) ([]byte, bool, error) {
	objectKey := s.objectKey(address)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, false, nil
		}
		return nil, false, s.wrap(err, objectKey)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, s.wrap(err, objectKey)
	}
	return data, true, nil
}

// Put uploads data to address.
func (s *Store) Put(ctx context.Context, address string, data []byte) error {
	objectKey := s.objectKey(address)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return s.wrap(err, objectKey)
	}
	return nil
}

func (s *Store) objectKey(address string) string {
	return path.Join(s.prefix, address)
}

func (s *Store) wrap(err error, objectKey string) error {
	err = zerr.With(zerr.Wrap(err, domain.ErrRemoteCacheFailed.Error()), "bucket", s.bucket)
	return zerr.With(err, "key", objectKey)
}
