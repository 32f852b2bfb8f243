package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// conditionWidth caps the condition column of text tables.
const conditionWidth = 60

// WriteText writes t as an aligned text table.
func WriteText(out io.Writer, t Table) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(out, "(0 rules)")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, WidthMax: conditionWidth},
	})

	header := make(table.Row, len(Headings))
	for i, h := range Headings {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, r := range t.Rows {
		row := make(table.Row, len(r.Cells))
		for i, c := range r.Cells {
			row[i] = c
		}
		tw.AppendRow(row)
	}
	tw.Render()

	var examples []string
	for _, r := range t.Rows {
		if r.Examples != nil {
			examples = append(examples, "  "+plainExampleItem(r.Examples))
		}
	}
	if len(examples) > 0 {
		if _, err := fmt.Fprintf(out, "\nExamples:\n%s\n", strings.Join(examples, "\n")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "(%d rules)\n", len(t.Rows))
	return err
}

func plainExampleItem(b *ExampleBlock) string {
	var parts []string
	if len(b.Valid) > 0 {
		parts = append(parts, "valid "+strings.Join(b.Valid, ", "))
	}
	if len(b.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(b.Invalid, ", "))
	}
	return b.Label + ": " + strings.Join(parts, "; ")
}
