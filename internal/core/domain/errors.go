package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectRootNotFound is returned when no package manifest is found above the start directory.
	ErrProjectRootNotFound = zerr.New("could not find package.json in any parent directory")

	// ErrInvalidPath is returned when a real file does not exist at its resolved path.
	ErrInvalidPath = zerr.New("invalid path")

	// ErrPathOutsideRoot is returned when a file path resolves outside the project root.
	ErrPathOutsideRoot = zerr.New("path is outside project root")

	// ErrFileReadFailed is returned when a source file exists but cannot be read.
	ErrFileReadFailed = zerr.New("failed to read source file")

	// ErrTranspileFailed is returned when the compiler reports diagnostics.
	ErrTranspileFailed = zerr.New("transpile failed")

	// ErrCompilerFailed is returned when the compiler itself fails to run.
	ErrCompilerFailed = zerr.New("compiler invocation failed")

	// ErrCacheOpenFailed is returned when the cache collaborator cannot be constructed.
	ErrCacheOpenFailed = zerr.New("failed to open cache")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheMarshalFailed is returned when a cache entry cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrCacheUnmarshalFailed is returned when a cache entry cannot be unmarshaled.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrCacheCompressFailed is returned when cached output cannot be compressed or decompressed.
	ErrCacheCompressFailed = zerr.New("failed to compress cache entry")

	// ErrCacheClearFailed is returned when the cache folder cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear cache")

	// ErrRemoteCacheFailed is returned when the remote cache tier fails.
	ErrRemoteCacheFailed = zerr.New("remote cache request failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCompiler is returned when the configured compiler is unknown.
	ErrInvalidCompiler = zerr.New("invalid compiler, expected 'esbuild' or 'typescript'")

	// ErrInvalidModuleFormat is returned when the configured module format is unknown.
	ErrInvalidModuleFormat = zerr.New("invalid module format, expected 'commonjs', 'esm' or 'preserve'")

	// ErrInvalidTarget is returned when the configured language target is unknown.
	ErrInvalidTarget = zerr.New("invalid target, expected 'es5', 'es2015' through 'es2024' or 'esnext'")

	// ErrInvalidSourceMap is returned when the configured source map mode is unknown.
	ErrInvalidSourceMap = zerr.New("invalid source map mode, expected 'none', 'inline' or 'external'")

	// ErrManifestReadFailed is returned when the package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package.json")

	// ErrNoInputFiles is returned when the compile command receives nothing to compile.
	ErrNoInputFiles = zerr.New("no input files specified")

	// ErrCompileFailed is returned when at least one file of a compile run failed.
	// Each failure has already been reported when it is returned.
	ErrCompileFailed = zerr.New("compilation failed")
	// ErrOutputWriteFailed is returned when compiled output cannot be written to the output directory.
	ErrOutputWriteFailed = zerr.New("failed to write compiled output")
)
