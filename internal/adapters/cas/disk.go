package cas

import (
	"context"
	"errors"
	"io/fs"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

// DiskStore implements ports.BlobStore on a billy filesystem rooted at a
// cache folder. Blobs live below the entries directory.
type DiskStore struct {
	fs billy.Filesystem
}

// NewDiskStore creates a DiskStore on fsys.
func NewDiskStore(fsys billy.Filesystem) *DiskStore {
	return &DiskStore{fs: fsys}
}

// Get reads the blob at address.
func (s *DiskStore) Get(_ context.Context, address string) ([]byte, bool, error) {
	name := entryName(address)
	data, err := util.ReadFile(s.fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "address", address)
	}
	return data, true, nil
}

// Put writes the blob at address. The blob is written to a temporary file
// first and renamed into place, so readers never see a partial entry.
func (s *DiskStore) Put(_ context.Context, address string, data []byte) error {
	name := entryName(address)
	dir := path.Dir(name)
	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "dir", dir)
	}

	tmp, err := util.TempFile(s.fs, dir, ".tmp-")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "address", address)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "address", address)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "address", address)
	}

	if err := s.fs.Rename(tmpName, name); err != nil {
		_ = s.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "address", address)
	}
	return nil
}

func entryName(address string) string {
	return path.Join(domain.EntriesDirName, address)
}
