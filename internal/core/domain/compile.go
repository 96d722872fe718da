package domain

import (
	"fmt"
	"strings"
)

// ModuleFormat selects the module system of the emitted JavaScript.
type ModuleFormat string

const (
	// ModuleCommonJS emits require/module.exports.
	ModuleCommonJS ModuleFormat = "commonjs"
	// ModuleESM emits import/export statements.
	ModuleESM ModuleFormat = "esm"
	// ModulePreserve keeps the module syntax of the input.
	ModulePreserve ModuleFormat = "preserve"
)

// SourceMapMode selects whether the compiler emits a source map.
type SourceMapMode string

const (
	// SourceMapNone disables source maps.
	SourceMapNone SourceMapMode = "none"
	// SourceMapInline appends the source map as a data URL comment.
	SourceMapInline SourceMapMode = "inline"
	// SourceMapExternal asks the compiler for a separate map. Only the code is cached.
	SourceMapExternal SourceMapMode = "external"
)

// CompilerOptions is handed to the compiler as is. Each compiler adapter maps the
// fields it understands and ignores the rest.
type CompilerOptions struct {
	Target    string         `yaml:"target"`
	Module    ModuleFormat   `yaml:"module"`
	JSX       string         `yaml:"jsx"`
	SourceMap SourceMapMode  `yaml:"sourceMap"`
	Raw       map[string]any `yaml:"raw"`
}

// DefaultCompilerOptions returns the options used when no configuration is present.
func DefaultCompilerOptions() CompilerOptions {
	return CompilerOptions{
		Target:    "es2017",
		Module:    ModulePreserve,
		SourceMap: SourceMapNone,
	}
}

// Diagnostic is a single message reported by a compiler.
type Diagnostic struct {
	File     string `json:"file,omitzero"`
	Line     int    `json:"line,omitzero"`
	Column   int    `json:"column,omitzero"`
	Text     string `json:"text"`
	LineText string `json:"line_text,omitzero"`
}

// String renders the diagnostic as file:line:column: text.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.File != "" {
		b.WriteString(d.File)
		if d.Line > 0 {
			_, _ = fmt.Fprintf(&b, ":%d:%d", d.Line, d.Column)
		}
		b.WriteString(": ")
	}
	b.WriteString("error: ")
	b.WriteString(d.Text)
	return b.String()
}

// TranspileResult is what a compiler returns for one source text.
type TranspileResult struct {
	Code        string
	Diagnostics []Diagnostic
}

// FormatDiagnostics renders diagnostics for display, one per line, with the
// offending source line underneath when the compiler provided it.
func FormatDiagnostics(diags []Diagnostic) string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, d.String())
		if d.LineText != "" {
			lines = append(lines, "    "+d.LineText)
			if d.Column >= 0 && d.Column <= len(d.LineText) {
				lines = append(lines, "    "+strings.Repeat(" ", d.Column)+"^")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// CompileError reports a transpile that produced diagnostics.
// It matches ErrTranspileFailed with errors.Is.
type CompileError struct {
	FilePath    string
	Diagnostics []Diagnostic
	Formatted   string
}

// NewCompileError builds a CompileError and formats its diagnostics.
func NewCompileError(filePath string, diags []Diagnostic) *CompileError {
	return &CompileError{
		FilePath:    filePath,
		Diagnostics: diags,
		Formatted:   FormatDiagnostics(diags),
	}
}

// Error implements error.
func (e *CompileError) Error() string {
	return e.Message()
}

// Message returns the display message. The logger uses it to print the error.
func (e *CompileError) Message() string {
	return fmt.Sprintf("%s: %s\n%s", ErrTranspileFailed.Error(), e.FilePath, e.Formatted)
}

// Is reports whether target is ErrTranspileFailed.
func (e *CompileError) Is(target error) bool {
	return target == ErrTranspileFailed
}
