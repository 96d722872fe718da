// Package esbuild implements ports.Compiler with the esbuild transform API.
package esbuild

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"es2024": api.ES2024,
	"esnext": api.ESNext,
}

// Compiler transpiles TypeScript with esbuild. Type errors are not reported;
// esbuild strips types without checking them.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Transpile implements ports.Compiler.
func (c *Compiler) Transpile(
	ctx context.Context,
	fileName, source string,
	opts domain.CompilerOptions,
) (domain.TranspileResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.TranspileResult{}, err
	}

	transformOpts, err := TransformOptions(fileName, opts)
	if err != nil {
		return domain.TranspileResult{}, err
	}

	result := api.Transform(source, transformOpts)
	if len(result.Errors) > 0 {
		return domain.TranspileResult{Diagnostics: toDiagnostics(fileName, result.Errors)}, nil
	}

	return domain.TranspileResult{Code: string(result.Code)}, nil
}

// TransformOptions maps compiler options onto esbuild transform options.
func TransformOptions(fileName string, opts domain.CompilerOptions) (api.TransformOptions, error) {
	out := api.TransformOptions{
		Loader:     api.LoaderTS,
		Sourcefile: fileName,
		LogLevel:   api.LogLevelSilent,
	}

	if opts.JSX != "" || strings.EqualFold(filepath.Ext(fileName), ".tsx") {
		out.Loader = api.LoaderTSX
	}

	if opts.Target != "" {
		target, ok := targets[strings.ToLower(opts.Target)]
		if !ok {
			return out, zerr.With(domain.ErrInvalidTarget, "target", opts.Target)
		}
		out.Target = target
	}

	switch opts.Module {
	case domain.ModuleCommonJS:
		out.Format = api.FormatCommonJS
	case domain.ModuleESM:
		out.Format = api.FormatESModule
	case domain.ModulePreserve, "":
		out.Format = api.FormatDefault
	default:
		return out, zerr.With(domain.ErrInvalidModuleFormat, "module", string(opts.Module))
	}

	switch opts.SourceMap {
	case domain.SourceMapNone, "":
		out.Sourcemap = api.SourceMapNone
	case domain.SourceMapInline:
		out.Sourcemap = api.SourceMapInline
	case domain.SourceMapExternal:
		out.Sourcemap = api.SourceMapExternal
	default:
		return out, zerr.With(domain.ErrInvalidSourceMap, "sourceMap", string(opts.SourceMap))
	}

	switch strings.ToLower(opts.JSX) {
	case "":
	case "preserve":
		out.JSX = api.JSXPreserve
	case "react":
		out.JSX = api.JSXTransform
	case "react-jsx":
		out.JSX = api.JSXAutomatic
	}

	if minify, ok := opts.Raw["minify"].(bool); ok && minify {
		out.MinifyWhitespace = true
		out.MinifyIdentifiers = true
		out.MinifySyntax = true
	}

	return out, nil
}

func toDiagnostics(fileName string, msgs []api.Message) []domain.Diagnostic {
	diags := make([]domain.Diagnostic, 0, len(msgs))
	for _, msg := range msgs {
		d := domain.Diagnostic{File: fileName, Text: msg.Text}
		if loc := msg.Location; loc != nil {
			if loc.File != "" {
				d.File = loc.File
			}
			d.Line = loc.Line
			d.Column = loc.Column
			d.LineText = loc.LineText
		}
		diags = append(diags, d)
	}
	return diags
}
