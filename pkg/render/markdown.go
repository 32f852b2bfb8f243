package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// GeneratedMarker is written at the top of generated pages.
const GeneratedMarker = "<!-- Code generated by convcat. DO NOT EDIT. -->"

// MarkdownWriter builds a markdown document.
type MarkdownWriter struct {
	buf bytes.Buffer
}

// NewMarkdownWriter returns an empty writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Frontmatter writes a YAML frontmatter block.
func (w *MarkdownWriter) Frontmatter(title, description string) {
	w.buf.WriteString("---\n")
	fmt.Fprintf(&w.buf, "title: %q\n", title)
	if description != "" {
		fmt.Fprintf(&w.buf, "description: %q\n", description)
	}
	w.buf.WriteString("---\n\n")
}

// GeneratedMarker writes the generated-file marker.
func (w *MarkdownWriter) GeneratedMarker() {
	w.Line(GeneratedMarker)
	w.Newline()
}

// Header writes a header of the given level.
func (w *MarkdownWriter) Header(level int, text string) {
	w.Line(strings.Repeat("#", level) + " " + text)
	w.Newline()
}

// Paragraph writes a paragraph followed by a blank line.
func (w *MarkdownWriter) Paragraph(text string) {
	w.Line(text)
	w.Newline()
}

// BulletList writes a bullet list.
func (w *MarkdownWriter) BulletList(items []string) {
	for _, item := range items {
		w.Line("- " + item)
	}
	w.Newline()
}

// Table writes a pipe table. Cells must already be escaped.
func (w *MarkdownWriter) Table(headers []string, rows [][]string) {
	w.Line("| " + strings.Join(headers, " | ") + " |")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	w.Line("| " + strings.Join(sep, " | ") + " |")
	for _, row := range rows {
		w.Line("| " + strings.Join(row, " | ") + " |")
	}
	w.Newline()
}

// Line writes a line.
func (w *MarkdownWriter) Line(text string) {
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// Newline writes an empty line.
func (w *MarkdownWriter) Newline() {
	w.buf.WriteByte('\n')
}

// Bytes returns the document.
func (w *MarkdownWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the document.
func (w *MarkdownWriter) String() string {
	return w.buf.String()
}

// CatalogTable writes t as a pipe table followed by its examples blocks.
func (w *MarkdownWriter) CatalogTable(t Table) {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Cells
	}
	w.Table(Headings, rows)

	var examples []string
	for _, r := range t.Rows {
		if r.Examples == nil {
			continue
		}
		examples = append(examples, formatExampleItem(r.Examples))
	}
	if len(examples) > 0 {
		w.Paragraph(Bold("Examples"))
		w.BulletList(examples)
	}
}

// WriteMarkdown writes t to out as a markdown pipe table.
func WriteMarkdown(out io.Writer, t Table) error {
	w := NewMarkdownWriter()
	w.CatalogTable(t)
	_, err := out.Write(w.Bytes())
	return err
}

func formatExampleItem(b *ExampleBlock) string {
	var parts []string
	if len(b.Valid) > 0 {
		parts = append(parts, "valid: "+inlineCodeList(b.Valid))
	}
	if len(b.Invalid) > 0 {
		parts = append(parts, "invalid: "+inlineCodeList(b.Invalid))
	}
	return b.Label + " - " + strings.Join(parts, "; ")
}

func inlineCodeList(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = InlineCode(v)
	}
	return strings.Join(out, ", ")
}

// Bold wraps text in strong emphasis.
func Bold(text string) string {
	return "**" + text + "**"
}

// InlineCode wraps text in a code span, widening the fence when text contains backticks.
func InlineCode(text string) string {
	fence := "`"
	for strings.Contains(text, fence) {
		fence += "`"
	}
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		return fence + " " + text + " " + fence
	}
	return fence + text + fence
}
