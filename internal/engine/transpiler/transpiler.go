// Package transpiler implements compile-and-cache over a compiler and a cache.
package transpiler

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	rootKey  = "root"
	cacheKey = "cache"

	// keySource tags InvalidPath errors raised while building a cache key.
	keySource = "transpiler.BuildKey"
)

// Options configures a Transpiler.
type Options struct {
	// CompilerOptions is passed to the compiler on every miss.
	CompilerOptions domain.CompilerOptions
	// CacheFolderPath is absolute or relative to the project root.
	// Empty means domain.DefaultCachePath().
	CacheFolderPath string
}

// Transpiler compiles files and memoizes the output in a cache keyed by the
// canonical path and content of the file.
//
// The project root and the cache are resolved on first use and kept for the
// lifetime of the Transpiler. Compile itself takes no locks: two concurrent
// calls for the same cold key both compile and both write.
type Transpiler struct {
	compiler     ports.Compiler
	locator      ports.RootLocator
	cacheFactory ports.CacheFactory
	tracer       ports.Tracer
	opts         Options

	init  singleflight.Group
	mu    sync.RWMutex
	root  string
	cache ports.Cache
}

// New creates a Transpiler.
func New(
	compiler ports.Compiler,
	locator ports.RootLocator,
	cacheFactory ports.CacheFactory,
	tracer ports.Tracer,
	opts Options,
) *Transpiler {
	return &Transpiler{
		compiler:     compiler,
		locator:      locator,
		cacheFactory: cacheFactory,
		tracer:       tracer,
		opts:         opts,
	}
}

// Compile returns the compiled output of the requested file, from the cache
// when possible. A miss invokes the compiler and stores its output; output with
// diagnostics fails with *domain.CompileError and is never stored.
func (t *Transpiler) Compile(ctx context.Context, req domain.CompileRequest) (string, error) {
	ctx, span := t.tracer.Start(ctx, "compile")
	defer span.End()

	out, err := t.compile(ctx, span, req)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return out, nil
}

func (t *Transpiler) compile(ctx context.Context, span ports.Span, req domain.CompileRequest) (string, error) {
	// Step 1: Ensure the cache exists
	cache, err := t.ensureCache(ctx)
	if err != nil {
		return "", err
	}

	// Step 2: Build the key
	key, err := t.BuildKey(req)
	if err != nil {
		return "", err
	}
	span.SetAttribute(ports.AttrPath, key.FilePath)
	span.SetAttribute(ports.AttrVirtual, req.IsVirtual())

	// Step 3: Lookup
	cached, ok, err := cache.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if ok {
		span.SetAttribute(ports.AttrCached, true)
		return cached, nil
	}
	span.SetAttribute(ports.AttrCached, false)

	// Step 4: Compile (Cache Miss)
	res, err := t.compiler.Transpile(ctx, key.FilePath, key.FileContent, applyForcedDefaults(t.opts.CompilerOptions))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCompilerFailed.Error()), "path", key.FilePath)
	}

	// Step 5: Diagnostics short-circuit the write
	if len(res.Diagnostics) > 0 {
		span.SetAttribute(ports.AttrDiagnostics, len(res.Diagnostics))
		return "", domain.NewCompileError(key.FilePath, res.Diagnostics)
	}

	// Step 6: Store
	if err := cache.Set(ctx, key, res.Code); err != nil {
		return "", err
	}
	return res.Code, nil
}

// BuildKey canonicalizes the request path and pairs it with the file content.
// Real files are read from disk; a missing file is domain.ErrInvalidPath.
func (t *Transpiler) BuildKey(req domain.CompileRequest) (domain.CacheParams, error) {
	filePath, err := t.Canonicalize(req.FilePath)
	if err != nil {
		return domain.CacheParams{}, err
	}

	var content string
	if req.IsVirtual() {
		content = *req.SourceText
	} else {
		//nolint:gosec // Path is canonicalized below the project root
		data, readErr := os.ReadFile(filePath)
		if readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				invalid := zerr.With(domain.ErrInvalidPath, "path", filePath)
				return domain.CacheParams{}, zerr.With(invalid, "source", keySource)
			}
			return domain.CacheParams{}, zerr.With(zerr.Wrap(readErr, domain.ErrFileReadFailed.Error()), "path", filePath)
		}
		content = string(data)
	}

	return domain.CacheParams{
		FilePath:      filePath,
		FileContent:   content,
		FileExtension: domain.OutputExtension,
	}, nil
}

// Canonicalize resolves filePath, absolute or relative to the project root, to
// one absolute path below the root. The root prefix is stripped and the
// remainder re-resolved against the root, so both spellings of a file agree.
// Paths that leave the root are rejected with domain.ErrPathOutsideRoot.
func (t *Transpiler) Canonicalize(filePath string) (string, error) {
	root, err := t.projectRoot()
	if err != nil {
		return "", err
	}

	rel := filePath
	if filepath.IsAbs(filePath) {
		rel, err = filepath.Rel(root, filepath.Clean(filePath))
		if err != nil {
			return "", outsideRoot(filePath, root)
		}
	}

	rel = filepath.Clean(rel)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", outsideRoot(filePath, root)
	}

	return filepath.Join(root, rel), nil
}

// Root returns the memoized project root, discovering it on first use.
func (t *Transpiler) Root() (string, error) {
	return t.projectRoot()
}

// CacheDir returns the absolute cache folder for this Transpiler.
func (t *Transpiler) CacheDir() (string, error) {
	root, err := t.projectRoot()
	if err != nil {
		return "", err
	}
	return ResolveCacheDir(root, t.opts.CacheFolderPath), nil
}

func (t *Transpiler) projectRoot() (string, error) {
	t.mu.RLock()
	root := t.root
	t.mu.RUnlock()
	if root != "" {
		return root, nil
	}

	v, err, _ := t.init.Do(rootKey, func() (any, error) {
		t.mu.RLock()
		memo := t.root
		t.mu.RUnlock()
		if memo != "" {
			return memo, nil
		}

		found, err := t.locator.FindRoot()
		if err != nil {
			return "", err
		}
		found = filepath.Clean(found)

		t.mu.Lock()
		t.root = found
		t.mu.Unlock()
		return found, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (t *Transpiler) ensureCache(ctx context.Context) (ports.Cache, error) {
	t.mu.RLock()
	cache := t.cache
	t.mu.RUnlock()
	if cache != nil {
		return cache, nil
	}

	dir, err := t.CacheDir()
	if err != nil {
		return nil, err
	}

	v, err, _ := t.init.Do(cacheKey, func() (any, error) {
		t.mu.RLock()
		memo := t.cache
		t.mu.RUnlock()
		if memo != nil {
			return memo, nil
		}

		// Waiters share this open, so one caller's cancellation must not fail the rest.
		opened, err := t.cacheFactory.Open(context.WithoutCancel(ctx), dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "dir", dir)
		}

		t.mu.Lock()
		t.cache = opened
		t.mu.Unlock()
		return opened, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(ports.Cache), nil
}

// ResolveCacheDir anchors a relative cache folder at root.
func ResolveCacheDir(root, cacheFolder string) string {
	if cacheFolder == "" {
		cacheFolder = domain.DefaultCachePath()
	}
	if filepath.IsAbs(cacheFolder) {
		return filepath.Clean(cacheFolder)
	}
	return filepath.Join(root, cacheFolder)
}

// applyForcedDefaults is the hook for options every compile must carry.
// Nothing is forced at the moment.
func applyForcedDefaults(opts domain.CompilerOptions) domain.CompilerOptions {
	return opts
}

func outsideRoot(filePath, root string) error {
	err := zerr.With(domain.ErrPathOutsideRoot, "path", filePath)
	return zerr.With(err, "root", root)
}
