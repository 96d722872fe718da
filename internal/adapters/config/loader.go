// Package config provides the configuration loader for tscache.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file at the project root.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads tscache.yaml below root. A missing file yields domain.DefaultConfig.
func (l *Loader) Load(root string) (*domain.Config, error) {
	configPath := filepath.Join(root, domain.ConfigFileName)

	// #nosec G304 -- configPath is derived from the discovered project root
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file Configfile
	if err := decodeStrict(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg, err := l.resolve(&file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) resolve(file *Configfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}

	if file.Compiler != "" {
		compiler := strings.ToLower(file.Compiler)
		if compiler != domain.CompilerEsbuild && compiler != domain.CompilerTypeScript {
			return nil, zerr.With(domain.ErrInvalidCompiler, "compiler", file.Compiler)
		}
		cfg.Compiler = compiler
	}

	if dto := file.CompilerOptions; dto != nil {
		opts, err := resolveCompilerOptions(dto)
		if err != nil {
			return nil, err
		}
		cfg.CompilerOptions = opts
	}

	if cfg.CompilerOptions.SourceMap == domain.SourceMapExternal {
		l.warn(fmt.Sprintf("sourceMap 'external' in %s: only the compiled code is cached", domain.ConfigFileName))
	}

	if file.Cache.Compress != nil {
		cfg.Compress = *file.Cache.Compress
	}

	cfg.Remote = domain.RemoteCacheConfig(file.Cache.Remote)
	if !cfg.Remote.Enabled() && (cfg.Remote.Region != "" || cfg.Remote.Endpoint != "" || cfg.Remote.Prefix != "") {
		l.warn(fmt.Sprintf("cache.remote in %s has no bucket and is ignored", domain.ConfigFileName))
	}

	return cfg, nil
}

func resolveCompilerOptions(dto *CompilerOptionsDTO) (domain.CompilerOptions, error) {
	opts := domain.DefaultCompilerOptions()

	if dto.Target != "" {
		opts.Target = strings.ToLower(dto.Target)
	}

	if dto.Module != "" {
		module := domain.ModuleFormat(strings.ToLower(dto.Module))
		switch module {
		case domain.ModuleCommonJS, domain.ModuleESM, domain.ModulePreserve:
			opts.Module = module
		default:
			return opts, zerr.With(domain.ErrInvalidModuleFormat, "module", dto.Module)
		}
	}

	if dto.SourceMap != "" {
		mode := domain.SourceMapMode(strings.ToLower(dto.SourceMap))
		switch mode {
		case domain.SourceMapNone, domain.SourceMapInline, domain.SourceMapExternal:
			opts.SourceMap = mode
		default:
			return opts, zerr.With(domain.ErrInvalidSourceMap, "sourceMap", dto.SourceMap)
		}
	}

	opts.JSX = dto.JSX
	opts.Raw = dto.Raw
	return opts, nil
}

// decodeStrict unmarshals YAML and rejects unknown fields.
func decodeStrict(data []byte, target *Configfile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}
