package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/convcat/pkg/core"
)

// WriteJSON writes t as indented JSON.
func WriteJSON(out io.Writer, t Table) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// WriteCSV writes t as CSV with a header row of column names.
// Example blocks are not part of the CSV output.
func WriteCSV(out io.Writer, t Table) error {
	w := csv.NewWriter(out)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := w.Write(r.Cells); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Format is an output format of Write.
type Format string

// Output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
)

// ParseFormat converts a string to a Format. "md" is accepted for markdown.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, true
	case FormatMarkdown, "md":
		return FormatMarkdown, true
	case FormatJSON:
		return FormatJSON, true
	case FormatCSV:
		return FormatCSV, true
	default:
		return "", false
	}
}

// Write renders entries and writes them in format f. Markdown output escapes
// the pipe delimiter; the other formats quote cells themselves.
func Write(out io.Writer, f Format, entries []core.Entry, opts ...Option) error {
	if f != FormatMarkdown {
		opts = append(PlainOptions(), opts...)
	}
	t := RenderTable(entries, opts...)

	switch f {
	case FormatMarkdown:
		return WriteMarkdown(out, t)
	case FormatJSON:
		return WriteJSON(out, t)
	case FormatCSV:
		return WriteCSV(out, t)
	case FormatText:
		return WriteText(out, t)
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}
