package domain

import "path/filepath"

const (
	// ManifestFileName is the marker file that identifies the project root.
	ManifestFileName = "package.json"

	// ConfigFileName is the name of the optional tscache configuration file.
	ConfigFileName = "tscache.yaml"

	// CacheDirName is the default cache folder, relative to the project root.
	CacheDirName = ".tscache"

	// GlobalCacheDirName is the cache folder name below the user cache home.
	GlobalCacheDirName = "tscache"

	// EntriesDirName holds the cache entries inside a cache folder.
	EntriesDirName = "entries"

	// OutputExtension is the extension of transpiled output.
	OutputExtension = ".js"

	// EntryExtension is the extension of a stored cache entry.
	EntryExtension = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache folder relative to the project root.
func DefaultCachePath() string {
	return CacheDirName
}

// EntriesPath returns the directory holding entries below a cache folder.
func EntriesPath(cacheDir string) string {
	return filepath.Join(cacheDir, EntriesDirName)
}
