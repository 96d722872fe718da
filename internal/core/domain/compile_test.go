package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tscache/internal/core/domain"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag domain.Diagnostic
		want string
	}{
		{
			name: "with location",
			diag: domain.Diagnostic{File: "src/a.ts", Line: 3, Column: 7, Text: "Expected \";\""},
			want: "src/a.ts:3:7: error: Expected \";\"",
		},
		{
			name: "file only",
			diag: domain.Diagnostic{File: "src/a.ts", Text: "boom"},
			want: "src/a.ts: error: boom",
		},
		{
			name: "no location",
			diag: domain.Diagnostic{Text: "boom"},
			want: "error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestFormatDiagnostics(t *testing.T) {
	diags := []domain.Diagnostic{
		{File: "a.ts", Line: 1, Column: 4, Text: "first", LineText: "let = 1"},
		{File: "a.ts", Line: 2, Column: 0, Text: "second"},
	}

	got := domain.FormatDiagnostics(diags)
	want := "a.ts:1:4: error: first\n" +
		"    let = 1\n" +
		"        ^\n" +
		"a.ts:2:0: error: second"
	assert.Equal(t, want, got)
}

func TestCompileError(t *testing.T) {
	diags := []domain.Diagnostic{{File: "/p/a.ts", Line: 1, Column: 2, Text: "bad"}}
	err := domain.NewCompileError("/p/a.ts", diags)

	require.ErrorIs(t, err, domain.ErrTranspileFailed)
	assert.Equal(t, "/p/a.ts:1:2: error: bad", err.Formatted)
	assert.Contains(t, err.Error(), "transpile failed: /p/a.ts")

	var target *domain.CompileError
	wrapped := errors.Join(errors.New("outer"), err)
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, diags, target.Diagnostics)
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, ".tscache", cfg.CacheDir)
	assert.Equal(t, domain.CompilerEsbuild, cfg.Compiler)
	assert.True(t, cfg.Compress)
	assert.False(t, cfg.Remote.Enabled())
}
