package style_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tscache/internal/ui/style"
)

func TestFields_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := style.Renderer(&bytes.Buffer{})
	got := style.NewFields(r).
		Add("dir", "/app/.tscache").
		Add("entries", "3").
		String()

	assert.Equal(t, "dir      /app/.tscache\nentries  3\n", got)
}

func TestFields_Empty(t *testing.T) {
	assert.Empty(t, style.NewFields(style.Renderer(&bytes.Buffer{})).String())
}
