package domain

// Compiler names.
const (
	CompilerEsbuild    = "esbuild"
	CompilerTypeScript = "typescript"
)

// RemoteCacheConfig configures the optional S3 cache tier.
type RemoteCacheConfig struct {
	Bucket   string
	Region   string
	Prefix   string
	Endpoint string
	Profile  string
}

// Enabled reports whether a remote tier is configured.
func (r RemoteCacheConfig) Enabled() bool {
	return r.Bucket != ""
}

// Config is the resolved tscache configuration for a project.
type Config struct {
	// CacheDir is the cache folder, absolute or relative to the project root.
	CacheDir        string
	Compiler        string
	CompilerOptions CompilerOptions
	Compress        bool
	Remote          RemoteCacheConfig
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		CacheDir:        DefaultCachePath(),
		Compiler:        CompilerEsbuild,
		CompilerOptions: DefaultCompilerOptions(),
		Compress:        true,
	}
}
