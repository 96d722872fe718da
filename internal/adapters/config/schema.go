package config

// Configfile represents the structure of the tscache.yaml configuration file.
type Configfile struct {
	Version         string              `yaml:"version"`
	CacheDir        string              `yaml:"cacheDir"`
	Compiler        string              `yaml:"compiler"`
	CompilerOptions *CompilerOptionsDTO `yaml:"compilerOptions"`
	Cache           CacheDTO            `yaml:"cache"`
}

// CompilerOptionsDTO represents the compilerOptions section.
type CompilerOptionsDTO struct {
	Target    string         `yaml:"target"`
	Module    string         `yaml:"module"`
	JSX       string         `yaml:"jsx"`
	SourceMap string         `yaml:"sourceMap"`
	Raw       map[string]any `yaml:"raw"`
}

// CacheDTO represents the cache section.
type CacheDTO struct {
	Compress *bool     `yaml:"compress"`
	Remote   RemoteDTO `yaml:"remote"`
}

// RemoteDTO represents the cache.remote section.
type RemoteDTO struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Prefix   string `yaml:"prefix"`
	Endpoint string `yaml:"endpoint"`
	Profile  string `yaml:"profile"`
}
