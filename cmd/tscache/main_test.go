package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tscache/internal/adapters/telemetry"
	"go.trai.ch/tscache/internal/app"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/tscache/internal/core/ports/mocks"
	"go.trai.ch/tscache/internal/engine/transpiler"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"tscache": func() {
			os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graftComponents))
		},
	})
}

// TestScripts runs the end-to-end scripts under testdata against the real graph.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			env.Setenv("XDG_CACHE_HOME", filepath.Join(env.WorkDir, ".xdg-cache"))
			env.Setenv("HOME", filepath.Join(env.WorkDir, ".home"))
			return nil
		},
	})
}

type testApp struct {
	app     *app.App
	locator *mocks.MockRootLocator
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		locator: mocks.NewMockRootLocator(ctrl),
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	ta.app = app.New(
		ta.loader,
		transpiler.NewFactory(ta.locator, telemetry.NewNoOpTracer()),
		mocks.NewMockCacheProvider(ctrl),
		mocks.NewMockCacheInspector(ctrl),
		map[string]ports.Compiler{domain.CompilerEsbuild: mocks.NewMockCompiler(ctrl)},
		ta.logger,
		telemetry.NewNoOpTracer(),
	)
	return ta
}

func (ta *testApp) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: ta.app, Logger: ta.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ta := newTestApp(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, ta.provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ta := newTestApp(t)
	ta.locator.EXPECT().FindRoot().Return("", domain.ErrProjectRootNotFound)
	ta.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrProjectRootNotFound)
	}).Times(1)

	exitCode := run(context.Background(), []string{"root"}, new(bytes.Buffer), ta.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CompileFailureLoggedOnce verifies that per-file failures are not
// reported a second time by main.
func TestRun_CompileFailureLoggedOnce(t *testing.T) {
	ta := newTestApp(t)
	root := t.TempDir()
	cfg := domain.DefaultConfig()

	ta.locator.EXPECT().FindRoot().Return(root, nil).AnyTimes()
	ta.locator.EXPECT().ProjectName(root).Return("", nil)
	ta.loader.EXPECT().Load(root).Return(cfg, nil)

	// Opening the cache fails for the only file; the app reports it.
	ta.logger.EXPECT().Error(gomock.Any()).Times(1)

	caches := mocks.NewMockCacheProvider(gomock.NewController(t))
	factory := mocks.NewMockCacheFactory(gomock.NewController(t))
	caches.EXPECT().WithConfig(cfg).Return(factory)
	factory.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, errors.New("read-only file system"))

	ta.app = app.New(
		ta.loader,
		transpiler.NewFactory(ta.locator, telemetry.NewNoOpTracer()),
		caches,
		mocks.NewMockCacheInspector(gomock.NewController(t)),
		map[string]ports.Compiler{domain.CompilerEsbuild: mocks.NewMockCompiler(gomock.NewController(t))},
		ta.logger,
		telemetry.NewNoOpTracer(),
	)

	exitCode := run(context.Background(), []string{"compile", filepath.Join(root, "a.ts")}, new(bytes.Buffer), ta.provider)
	assert.Equal(t, 1, exitCode)
}
