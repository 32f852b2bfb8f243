package output

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/convcat/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"TEXT":     ModeText,
		"md":       ModeMarkdown,
		"markdown": ModeMarkdown,
		"json":     ModeJSON,
		"csv":      ModeCSV,
		"html":     ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseMode(in), in)
	}
}

func TestRenderer_AutoIsMarkdownWhenPiped(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeAuto)

	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
	assert.Equal(t, render.FormatMarkdown, r.Format())
}

func TestRenderer_Format(t *testing.T) {
	tests := []struct {
		mode Mode
		want render.Format
	}{
		{ModeText, render.FormatText},
		{ModeMarkdown, render.FormatMarkdown},
		{ModeJSON, render.FormatJSON},
		{ModeCSV, render.FormatCSV},
	}
	for _, tt := range tests {
		r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, tt.mode)
		assert.Equal(t, tt.want, r.Format(), tt.mode)
	}
}

func TestRenderer_PlainWhenNotTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Header(1, "Targets")
	r.Success("done")
	r.Warning("careful")
	r.Muted("quiet")
	r.Error("broken")

	assert.Equal(t, "Targets\n───────\n✓ done\n! careful\nquiet\n", out.String())
	assert.Equal(t, "✗ broken\n", errOut.String())
}

func TestRenderer_MarkdownHeader(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeMarkdown)
	r.Header(2, "Lax")
	assert.Equal(t, "## Lax\n\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"rules": 2}))
	assert.Equal(t, "{\n  \"rules\": 2\n}\n", out.String())
}

func TestFormatKeyValue(t *testing.T) {
	assert.Equal(t, "- **Rules**: 3", FormatKeyValue("Rules", "3"))
}
