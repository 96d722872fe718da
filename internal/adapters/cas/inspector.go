package cas

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Inspector implements ports.CacheInspector for disk cache folders.
type Inspector struct {
	newFS FilesystemFunc
}

// NewInspector creates an Inspector over the OS filesystem.
func NewInspector() *Inspector {
	return &Inspector{newFS: OSFilesystem}
}

// NewInspectorWithFilesystem creates an Inspector that roots cache folders through fn.
func NewInspectorWithFilesystem(fn FilesystemFunc) *Inspector {
	return &Inspector{newFS: fn}
}

// Stats counts the entries below dir and their total size on disk.
// A missing cache folder is empty.
func (i *Inspector) Stats(dir string) (domain.CacheStats, error) {
	stats := domain.CacheStats{Dir: dir}
	fsys := i.newFS(dir)

	shards, err := fsys.ReadDir(domain.EntriesDirName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stats, nil
		}
		return stats, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "dir", dir)
	}

	for _, shard := range shards {
		if !shard.IsDir() {
			continue
		}
		files, err := fsys.ReadDir(path.Join(domain.EntriesDirName, shard.Name()))
		if err != nil {
			return stats, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "dir", dir)
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), domain.EntryExtension) {
				continue
			}
			stats.Entries++
			stats.Bytes += f.Size()
		}
	}

	return stats, nil
}

// Clear removes every entry below dir.
func (i *Inspector) Clear(dir string) error {
	if err := util.RemoveAll(i.newFS(dir), domain.EntriesDirName); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "dir", dir)
	}
	return nil
}
