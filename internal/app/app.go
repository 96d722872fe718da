// Package app implements the application layer for tscache.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.trai.ch/tscache/internal/adapters/telemetry" //nolint:depguard // Span bridge installed by the app
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/tscache/internal/engine/transpiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader      ports.ConfigLoader
	transpilers *transpiler.Factory
	caches      ports.CacheProvider
	inspector   ports.CacheInspector
	compilers   map[string]ports.Compiler
	logger      ports.Logger
	tracer      ports.Tracer
	globalCache string
	shutdown    func(context.Context) error
}

// New creates a new App instance. compilers maps compiler names, as used in
// the config file, to their implementations.
func New(
	loader ports.ConfigLoader,
	transpilers *transpiler.Factory,
	caches ports.CacheProvider,
	inspector ports.CacheInspector,
	compilers map[string]ports.Compiler,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:      loader,
		transpilers: transpilers,
		caches:      caches,
		inspector:   inspector,
		compilers:   compilers,
		logger:      log,
		tracer:      tracer,
		globalCache: filepath.Join(xdg.CacheHome, domain.GlobalCacheDirName),
	}
}

// WithGlobalCacheDir overrides the folder used by --global-cache.
func (a *App) WithGlobalCacheDir(dir string) *App {
	a.globalCache = dir
	return a
}

// GlobalOptions are the settings shared by every command.
type GlobalOptions struct {
	// Verbose logs every finished span with its duration.
	Verbose bool
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Configure applies the global options. It must be called before any command runs.
func (a *App) Configure(opts GlobalOptions) {
	if opts.JSONLogs {
		if l, ok := a.logger.(jsonSwitcher); ok {
			l.SetJSON(true)
		}
	}
	if opts.Verbose && a.shutdown == nil {
		a.shutdown = telemetry.Install(telemetry.NewLogBridge(a.logger))
	}
}

// Close flushes telemetry installed by Configure.
func (a *App) Close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil
	return err
}

// CacheOptions selects the cache folder a command works on.
type CacheOptions struct {
	// GlobalCache uses the per-user cache folder instead of the project's.
	GlobalCache bool
}

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	CacheOptions

	// OutDir receives one .js file per input, mirroring the layout below the
	// project root. Empty prints the output to Stdout.
	OutDir string
	// StdinPath names the virtual file whose content is read from Stdin.
	StdinPath string
	Stdin     io.Reader
	Stdout    io.Writer
}

// project is the state shared by the commands of one invocation.
type project struct {
	root string
	name string
	cfg  *domain.Config
}

// Compile compiles each file in order. A failing file is reported and the run
// continues; if any file failed, domain.ErrCompileFailed is returned at the end.
func (a *App) Compile(ctx context.Context, files []string, opts CompileOptions) error {
	if len(files) == 0 && opts.StdinPath == "" {
		return domain.ErrNoInputFiles
	}

	// 1. Load the project
	proj, err := a.loadProject()
	if err != nil {
		return err
	}

	// 2. Build the transpiler
	tr, err := a.newTranspiler(proj, opts.CacheOptions)
	if err != nil {
		return err
	}

	// 3. Collect requests
	reqs, err := collectRequests(files, opts)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()
	if proj.name != "" {
		span.SetAttribute(ports.AttrProject, proj.name)
	}

	// 4. Compile sequentially
	failed := 0
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return err
		}

		code, err := tr.Compile(ctx, req)
		if err == nil {
			err = a.emit(tr, req.FilePath, code, opts)
		}
		if err != nil {
			a.logger.Error(err)
			failed++
		}
	}

	if failed > 0 {
		err := errors.Join(domain.ErrCompileFailed, zerr.New(fmt.Sprintf("%d of %d files failed", failed, len(reqs))))
		span.RecordError(err)
		return err
	}
	return nil
}

func collectRequests(files []string, opts CompileOptions) ([]domain.CompileRequest, error) {
	reqs := make([]domain.CompileRequest, 0, len(files)+1)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidPath, "path", f)
		}
		reqs = append(reqs, domain.RealFile(abs))
	}

	if opts.StdinPath != "" {
		abs, err := filepath.Abs(opts.StdinPath)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidPath, "path", opts.StdinPath)
		}
		if opts.Stdin == nil {
			return nil, zerr.With(domain.ErrFileReadFailed, "path", "<stdin>")
		}
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", "<stdin>")
		}
		reqs = append(reqs, domain.VirtualFile(abs, string(data)))
	}
	return reqs, nil
}

// emit prints code, or writes it below OutDir at the root-relative path of
// the source with a .js extension.
func (a *App) emit(tr *transpiler.Transpiler, filePath, code string, opts CompileOptions) error {
	if opts.OutDir == "" {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := io.WriteString(out, code)
		return err
	}

	canonical, err := tr.Canonicalize(filePath)
	if err != nil {
		return err
	}
	root, err := tr.Root()
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(root, canonical)
	if err != nil {
		return zerr.With(domain.ErrPathOutsideRoot, "path", canonical)
	}

	target := filepath.Join(opts.OutDir, outputName(rel))
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target)
	}
	//nolint:gosec // Output files are meant to be world readable
	if err := os.WriteFile(target, []byte(code), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target)
	}

	a.logger.Info(fmt.Sprintf("wrote %s", target))
	return nil
}

func outputName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + domain.OutputExtension
}

// Clean removes every entry of the selected cache folder.
func (a *App) Clean(_ context.Context, opts CacheOptions) error {
	dir, err := a.resolveCacheDir(opts)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := a.inspector.Clear(dir); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}

// Stats counts the entries of the selected cache folder.
func (a *App) Stats(_ context.Context, opts CacheOptions) (domain.CacheStats, error) {
	dir, err := a.resolveCacheDir(opts)
	if err != nil {
		return domain.CacheStats{}, err
	}
	return a.inspector.Stats(dir)
}

// RootInfo describes the project a command runs in.
type RootInfo struct {
	Dir  string
	Name string
}

// Root returns the project root and the package name declared there.
func (a *App) Root(_ context.Context) (RootInfo, error) {
	proj, err := a.loadProject()
	if err != nil {
		return RootInfo{}, err
	}
	return RootInfo{Dir: proj.root, Name: proj.name}, nil
}

func (a *App) loadProject() (*project, error) {
	locator := a.transpilers.Locator()

	root, err := locator.FindRoot()
	if err != nil {
		return nil, err
	}

	name, err := locator.ProjectName(root)
	if err != nil {
		return nil, err
	}

	cfg, err := a.loader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	return &project{root: root, name: name, cfg: cfg}, nil
}

func (a *App) newTranspiler(proj *project, opts CacheOptions) (*transpiler.Transpiler, error) {
	compiler, ok := a.compilers[proj.cfg.Compiler]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidCompiler, "compiler", proj.cfg.Compiler)
	}

	return a.transpilers.New(compiler, a.caches.WithConfig(proj.cfg), transpiler.Options{
		CompilerOptions: proj.cfg.CompilerOptions,
		CacheFolderPath: a.cacheFolder(proj.cfg, opts),
	}), nil
}

func (a *App) cacheFolder(cfg *domain.Config, opts CacheOptions) string {
	if opts.GlobalCache {
		return a.globalCache
	}
	return cfg.CacheDir
}

func (a *App) resolveCacheDir(opts CacheOptions) (string, error) {
	if opts.GlobalCache {
		return a.globalCache, nil
	}

	proj, err := a.loadProject()
	if err != nil {
		return "", err
	}
	return transpiler.ResolveCacheDir(proj.root, proj.cfg.CacheDir), nil
}

// IsCompileFailure reports whether err only signals already reported file failures.
func IsCompileFailure(err error) bool {
	return errors.Is(err, domain.ErrCompileFailed)
}
