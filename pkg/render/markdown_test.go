package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitRow splits a markdown table line on unescaped pipes.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	var cells []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(cells, strings.TrimSpace(cur.String()))
}

func tableLines(doc string) []string {
	var out []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "|") {
			out = append(out, line)
		}
	}
	return out
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, RenderTable([]core.Entry{digitsEntry()})))

	lines := tableLines(buf.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "| Field Type | Input | Mode | Channel | Conditions | Schema Kinds |", lines[0])
	assert.Equal(t, "| Integer | String | Lax | Wire | digits only | int |", lines[2])

	assert.Contains(t, buf.String(), "**Examples**")
	assert.Contains(t, buf.String(), "- Integer <- String (Lax, Wire) - valid: `\"123\"`; invalid: `\"12x\"`")
}

func TestWriteMarkdown_PipeInCondition(t *testing.T) {
	conditions := []string{
		"x | y || z",
		`matches C:\|D:\`,
		`trailing \`,
		`\\|`,
	}

	for _, cond := range conditions {
		t.Run(cond, func(t *testing.T) {
			e := digitsEntry()
			e.Condition = cond
			e.Valid = []any{"a|b"}

			var buf bytes.Buffer
			require.NoError(t, WriteMarkdown(&buf, RenderTable([]core.Entry{e, digitsEntry()})))

			lines := tableLines(buf.String())
			require.NotEmpty(t, lines)
			for _, line := range lines {
				assert.Len(t, splitRow(line), len(Columns), line)
			}
		})
	}
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Frontmatter("Integer", "")
	w.GeneratedMarker()
	w.Header(2, "Rules")
	w.Paragraph("text")
	w.BulletList([]string{"a", "b"})

	want := "---\ntitle: \"Integer\"\n---\n\n" +
		GeneratedMarker + "\n\n" +
		"## Rules\n\n" +
		"text\n\n" +
		"- a\n- b\n\n"
	assert.Equal(t, want, w.String())
	assert.Equal(t, want, string(w.Bytes()))
}

func TestInlineCode(t *testing.T) {
	assert.Equal(t, "`x`", InlineCode("x"))
	assert.Equal(t, "``a`b``", InlineCode("a`b"))
	assert.Equal(t, "`` `a ``", InlineCode("`a"))
}
