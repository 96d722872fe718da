// Package typescript implements ports.Compiler with the TypeScript compiler
// running in an embedded JavaScript VM.
package typescript

import (
	"context"
	"encoding/json"
	"maps"
	"strings"

	gots "github.com/clarkmcc/go-typescript"
	"go.trai.ch/tscache/internal/core/domain"
	"go.trai.ch/zerr"
)

// inputVar is the VM global holding the JSON encoded transpile input.
const inputVar = "__tscacheInput"

// transpileScript runs ts.transpileModule with syntax diagnostics enabled and
// returns the output and the error diagnostics as a JSON string.
const transpileScript = `(function (input) {
	var res = ts.transpileModule(input.source, {
		compilerOptions: input.compilerOptions,
		fileName: input.fileName,
		reportDiagnostics: true
	});
	var diags = [];
	(res.diagnostics || []).forEach(function (d) {
		if (d.category !== ts.DiagnosticCategory.Error) {
			return;
		}
		var out = { text: ts.flattenDiagnosticMessageText(d.messageText, "\n") };
		if (d.file && d.start !== undefined) {
			var pos = d.file.getLineAndCharacterOfPosition(d.start);
			out.line = pos.line + 1;
			out.column = pos.character;
			out.lineText = d.file.text.split(/\r?\n/)[pos.line];
		}
		diags.push(out);
	});
	return JSON.stringify({ outputText: res.outputText, diagnostics: diags });
})(JSON.parse(` + inputVar + `))`

type transpileInput struct {
	FileName        string         `json:"fileName"`
	Source          string         `json:"source"`
	CompilerOptions map[string]any `json:"compilerOptions"`
}

type transpileOutput struct {
	OutputText  string `json:"outputText"`
	Diagnostics []struct {
		Text     string `json:"text"`
		Line     int    `json:"line"`
		Column   int    `json:"column"`
		LineText string `json:"lineText"`
	} `json:"diagnostics"`
}

// Compiler transpiles with TypeScript's transpileModule. Like esbuild it
// works on one file at a time and does not type check.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Transpile implements ports.Compiler. Syntax errors come back as
// diagnostics, as does a failure inside the VM; cancellation is returned as
// an error.
func (c *Compiler) Transpile(
	ctx context.Context,
	fileName, source string,
	opts domain.CompilerOptions,
) (domain.TranspileResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.TranspileResult{}, err
	}

	compileOpts, err := CompileOptions(opts)
	if err != nil {
		return domain.TranspileResult{}, err
	}

	out, err := run(ctx, transpileInput{FileName: fileName, Source: source, CompilerOptions: compileOpts})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.TranspileResult{}, ctxErr
		}
		return domain.TranspileResult{
			Diagnostics: []domain.Diagnostic{{File: fileName, Text: err.Error()}},
		}, nil
	}

	if len(out.Diagnostics) > 0 {
		diags := make([]domain.Diagnostic, 0, len(out.Diagnostics))
		for _, d := range out.Diagnostics {
			diags = append(diags, domain.Diagnostic{
				File:     fileName,
				Line:     d.Line,
				Column:   d.Column,
				Text:     d.Text,
				LineText: d.LineText,
			})
		}
		return domain.TranspileResult{Diagnostics: diags}, nil
	}

	return domain.TranspileResult{Code: strings.TrimSuffix(out.OutputText, "\r\n")}, nil
}

// run evaluates transpileScript in a fresh VM loaded with the bundled
// TypeScript compiler.
func run(ctx context.Context, in transpileInput) (*transpileOutput, error) {
	cfg := gots.NewDefaultConfig()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			cfg.Runtime.Interrupt("context canceled")
		case <-done:
		}
	}()

	if _, err := cfg.Runtime.RunProgram(cfg.TypescriptSource); err != nil {
		return nil, zerr.Wrap(err, "failed to load typescript compiler")
	}

	input, err := json.Marshal(in)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode transpile input")
	}
	if err := cfg.Runtime.Set(inputVar, string(input)); err != nil {
		return nil, zerr.Wrap(err, "failed to pass transpile input")
	}

	value, err := cfg.Runtime.RunString(transpileScript)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to run typescript compiler")
	}

	var out transpileOutput
	if err := json.Unmarshal([]byte(value.String()), &out); err != nil {
		return nil, zerr.Wrap(err, "failed to decode transpile output")
	}
	return &out, nil
}

// CompileOptions maps compiler options onto TypeScript compilerOptions. Raw
// entries are applied last and win over the mapped fields.
func CompileOptions(opts domain.CompilerOptions) (map[string]any, error) {
	out := make(map[string]any)

	if opts.Target != "" {
		out["target"] = opts.Target
	}

	switch opts.Module {
	case domain.ModuleCommonJS:
		out["module"] = "CommonJS"
	case domain.ModuleESM, domain.ModulePreserve:
		out["module"] = "ESNext"
	case "":
	default:
		return nil, zerr.With(domain.ErrInvalidModuleFormat, "module", string(opts.Module))
	}

	switch opts.SourceMap {
	case domain.SourceMapNone, "":
	case domain.SourceMapInline:
		out["inlineSourceMap"] = true
	case domain.SourceMapExternal:
		out["sourceMap"] = true
	default:
		return nil, zerr.With(domain.ErrInvalidSourceMap, "sourceMap", string(opts.SourceMap))
	}

	if opts.JSX != "" {
		out["jsx"] = opts.JSX
	}

	maps.Copy(out, opts.Raw)
	return out, nil
}
