// Package cas implements the content addressable cache of compiled output.
package cas

import (
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompressionZstd marks entries whose output is zstd compressed.
const CompressionZstd = "zstd"

// Codec maps cache keys to addresses and cache values to stored blobs.
// A Codec is safe for concurrent use.
type Codec struct {
	compress bool
	enc      *zstd.Encoder
	dec      *zstd.Decoder
	now      func() time.Time
}

// NewCodec creates a Codec. When compress is false, output is stored as is;
// compressed entries remain readable either way.
func NewCodec(compress bool) (*Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCompressFailed.Error())
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCompressFailed.Error())
	}
	return &Codec{
		compress: compress,
		enc:      enc,
		dec:      dec,
		now:      time.Now,
	}, nil
}

// Address returns the storage address of key, sharded by the first byte of
// its digest: "ab/cdef0123456789.json".
func (c *Codec) Address(key domain.CacheParams) string {
	d := xxhash.New()
	_, _ = d.WriteString(key.FilePath)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(key.FileContent)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(key.FileExtension)

	sum := fmt.Sprintf("%016x", d.Sum64())
	return path.Join(sum[:2], sum[2:]+domain.EntryExtension)
}

// Encode serializes value as the entry for key.
func (c *Codec) Encode(key domain.CacheParams, value string) ([]byte, error) {
	entry := domain.CacheEntry{
		FilePath:      key.FilePath,
		FileExtension: key.FileExtension,
		ContentHash:   contentHash(key.FileContent),
		Output:        []byte(value),
		CreatedAt:     c.now().UTC().Truncate(time.Second),
	}
	if c.compress {
		entry.Compression = CompressionZstd
		entry.Output = c.enc.EncodeAll(entry.Output, nil)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}
	return data, nil
}

// Decode returns the value stored in data. The boolean is false when the
// entry belongs to a different key, which happens only on a digest collision.
// Entries that are malformed are reported as ErrCacheUnmarshalFailed.
func (c *Codec) Decode(key domain.CacheParams, data []byte) (string, bool, error) {
	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}

	switch entry.Compression {
	case "", CompressionZstd:
	default:
		return "", false, zerr.With(domain.ErrCacheUnmarshalFailed, "compression", entry.Compression)
	}
	if entry.FilePath == "" || entry.FileExtension == "" || entry.ContentHash == "" {
		return "", false, zerr.With(domain.ErrCacheUnmarshalFailed, "reason", "missing key fields")
	}

	if entry.FilePath != key.FilePath ||
		entry.FileExtension != key.FileExtension ||
		entry.ContentHash != contentHash(key.FileContent) {
		return "", false, nil
	}

	if entry.Compression == "" {
		return string(entry.Output), true, nil
	}
	out, err := c.dec.DecodeAll(entry.Output, nil)
	if err != nil {
		return "", false, zerr.Wrap(err, domain.ErrCacheCompressFailed.Error())
	}
	return string(out), true, nil
}

func contentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
