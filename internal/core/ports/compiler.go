// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/tscache/internal/core/domain"
)

// Compiler transpiles TypeScript source text to JavaScript.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Transpile compiles source with the given options. fileName is used for
	// diagnostics only; the compiler never reads it from disk.
	//
	// Syntax and type problems are reported as Diagnostics on the result, not as
	// an error. An error means the compiler itself could not run.
	Transpile(ctx context.Context, fileName, source string, opts domain.CompilerOptions) (domain.TranspileResult, error)
}
