// Package style provides the shared colors and icons of the CLI.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tscache/internal/ui/output"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Renderer returns a lipgloss renderer for w that honors NO_COLOR.
func Renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if output.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Fields renders aligned "label value" lines, one per pair.
type Fields struct {
	label lipgloss.Style
	value lipgloss.Style
	rows  [][2]string
}

// NewFields creates an empty field list rendered with r.
func NewFields(r *lipgloss.Renderer) *Fields {
	return &Fields{
		label: r.NewStyle().Bold(true).Foreground(Iris),
		value: r.NewStyle(),
	}
}

// Add appends a row.
func (f *Fields) Add(label, value string) *Fields {
	f.rows = append(f.rows, [2]string{label, value})
	return f
}

// String renders the rows with labels padded to a common width.
func (f *Fields) String() string {
	width := 0
	for _, row := range f.rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	var out string
	for _, row := range f.rows {
		out += f.label.Width(width+2).Render(row[0]) + f.value.Render(row[1]) + "\n"
	}
	return out
}
