// Package domain contains the core types of tscache.
package domain

import "time"

// CacheParams addresses one cached artifact: the canonical absolute path of the
// source, its content, and the extension of the compiled output.
type CacheParams struct {
	FilePath      string
	FileContent   string
	FileExtension string
}

// CacheEntry is the persisted form of a cached artifact.
type CacheEntry struct {
	FilePath      string    `json:"file_path"`
	FileExtension string    `json:"file_extension"`
	ContentHash   string    `json:"content_hash"`
	Compression   string    `json:"compression,omitzero"`
	Output        []byte    `json:"output"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// CacheStats summarizes the contents of a cache folder.
type CacheStats struct {
	Dir     string
	Entries int
	Bytes   int64
}
