package render

import (
	"strings"

	"github.com/leapstack-labs/convcat/pkg/core"
)

// Column names in their fixed order.
const (
	ColumnTarget    = "target_type"
	ColumnInput     = "input_representation"
	ColumnMode      = "mode"
	ColumnChannel   = "channel"
	ColumnCondition = "condition"
	ColumnSchemas   = "implementing_schema_kinds"
)

// Columns is the fixed column schema of every rendered table.
var Columns = []string{
	ColumnTarget,
	ColumnInput,
	ColumnMode,
	ColumnChannel,
	ColumnCondition,
	ColumnSchemas,
}

// Headings are the human-readable column titles, parallel to Columns.
var Headings = []string{
	"Field Type",
	"Input",
	"Mode",
	"Channel",
	"Conditions",
	"Schema Kinds",
}

// EmptyMarker is the default text of a cell whose optional value is missing.
const EmptyMarker = "-"

// Table is a rectangular rendering of catalog entries.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Row holds one cell per column plus the optional examples block.
type Row struct {
	Cells    []string      `json:"cells"`
	Examples *ExampleBlock `json:"examples,omitempty"`
}

// Cell returns the cell of the named column, or "" if the column is unknown.
func (r Row) Cell(column string) string {
	for i, c := range Columns {
		if c == column && i < len(r.Cells) {
			return r.Cells[i]
		}
	}
	return ""
}

// ExampleBlock lists formatted example values of a row.
type ExampleBlock struct {
	Label   string   `json:"label"`
	Valid   []string `json:"valid,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

// Options controls cell escaping and layout.
type Options struct {
	// Delimiter is the column delimiter escaped inside cells; 0 disables escaping.
	Delimiter rune
	// LineBreak replaces newlines inside cells.
	LineBreak string
	// EmptyMarker replaces missing optional values.
	EmptyMarker string
	// Examples enables the per-row examples block.
	Examples bool
}

// Option configures RenderTable.
type Option func(*Options)

// WithDelimiter sets the delimiter escaped inside cells. Use 0 for formats
// that quote cells themselves.
func WithDelimiter(d rune) Option {
	return func(o *Options) { o.Delimiter = d }
}

// WithLineBreak sets the replacement for newlines inside cells.
func WithLineBreak(s string) Option {
	return func(o *Options) { o.LineBreak = s }
}

// WithEmptyMarker sets the text of cells whose optional value is missing.
func WithEmptyMarker(s string) Option {
	return func(o *Options) { o.EmptyMarker = s }
}

// WithoutExamples omits the examples blocks.
func WithoutExamples() Option {
	return func(o *Options) { o.Examples = false }
}

// DefaultOptions returns the options used for markdown output.
func DefaultOptions() Options {
	return Options{
		Delimiter:   '|',
		LineBreak:   "<br>",
		EmptyMarker: EmptyMarker,
		Examples:    true,
	}
}

// PlainOptions are for formats that quote cells on their own (text, JSON, CSV).
func PlainOptions() []Option {
	return []Option{WithDelimiter(0), WithLineBreak(" ")}
}

// RenderTable renders entries in the given order.
func RenderTable(entries []core.Entry, opts ...Option) Table {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := Table{
		Columns: append([]string(nil), Columns...),
		Rows:    make([]Row, 0, len(entries)),
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, renderRow(e, o))
	}
	return t
}

func renderRow(e core.Entry, o Options) Row {
	schemas := make([]string, len(e.Schemas))
	for i, k := range e.Schemas {
		schemas[i] = string(k)
	}

	row := Row{
		Cells: []string{
			o.cell(e.Target.Name()),
			o.cell(e.Input.Name()),
			o.cell(modeCell(e.Mode)),
			o.cell(channelCell(e.Channel)),
			o.cell(e.Condition),
			o.cell(strings.Join(schemas, ", ")),
		},
	}
	if o.Examples && e.HasExamples() {
		row.Examples = &ExampleBlock{
			Label:   o.escape(e.Key().String()),
			Valid:   o.examples(e.Valid),
			Invalid: o.examples(e.Invalid),
		}
	}
	return row
}

func modeCell(m core.Mode) string {
	if !m.Valid() {
		return ""
	}
	return m.String()
}

func channelCell(c core.Channel) string {
	if !c.Valid() {
		return ""
	}
	return c.String()
}

func (o Options) examples(values []any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = o.escape(core.FormatExample(v))
	}
	return out
}

func (o Options) cell(s string) string {
	if strings.TrimSpace(s) == "" {
		return o.EmptyMarker
	}
	return o.escape(s)
}

// EscapeCell escapes s for a cell of a markdown pipe table.
func EscapeCell(s string) string {
	return DefaultOptions().escape(s)
}

// escape makes s safe to embed between delimiters.
func (o Options) escape(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", o.LineBreak)
	if o.Delimiter == 0 {
		return s
	}
	d := string(o.Delimiter)
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, d, `\`+d)
}
