package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/convcat/internal/cli/output"
	"github.com/leapstack-labs/convcat/pkg/catalog"
	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/leapstack-labs/convcat/pkg/render"
	"github.com/spf13/cobra"
)

// TargetSummary counts the rules of one target type.
type TargetSummary struct {
	Target string `json:"target"`
	Kind   string `json:"kind"`
	Rules  int    `json:"rules"`
	Strict int    `json:"strict"`
	Lax    int    `json:"lax"`
}

// NewTargetsCommand creates the targets command.
func NewTargetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List target types with rule counts",
		Long:  `List every documented target type in catalog order with its number of Strict and Lax rules.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTargets(cmd)
		},
	}
}

// SummarizeTargets counts rules per target in first-seen order.
func SummarizeTargets(c *catalog.Catalog) []TargetSummary {
	groups := c.GroupByTarget().Groups()
	out := make([]TargetSummary, 0, len(groups))
	for _, g := range groups {
		s := TargetSummary{
			Target: g.Target.Name(),
			Kind:   g.Target.Kind().String(),
			Rules:  len(g.Entries),
		}
		for _, e := range g.Entries {
			if e.Mode == core.Strict {
				s.Strict++
			} else {
				s.Lax++
			}
		}
		out = append(out, s)
	}
	return out
}

func runTargets(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	cat, err := cmdCtx.LoadCatalog()
	if err != nil {
		return err
	}
	summaries := SummarizeTargets(cat)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(summaries)
	case output.ModeMarkdown, output.ModeCSV:
		rows := make([][]string, len(summaries))
		for i, s := range summaries {
			rows[i] = []string{s.Target, s.Kind, fmt.Sprint(s.Rules), fmt.Sprint(s.Strict), fmt.Sprint(s.Lax)}
		}
		if r.EffectiveMode() == output.ModeCSV {
			return render.WriteCSV(r.Writer(), render.Table{
				Columns: []string{"target", "kind", "rules", "strict", "lax"},
				Rows:    csvRows(rows),
			})
		}
		w := render.NewMarkdownWriter()
		w.Table([]string{"Target", "Kind", "Rules", "Strict", "Lax"}, rows)
		_, err := r.Writer().Write(w.Bytes())
		return err
	default:
		tw := table.NewWriter()
		tw.SetOutputMirror(r.Writer())
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Target", "Kind", "Rules", "Strict", "Lax"})
		for _, s := range summaries {
			tw.AppendRow(table.Row{s.Target, s.Kind, s.Rules, s.Strict, s.Lax})
		}
		tw.AppendFooter(table.Row{"", "", cat.Len(), "", ""})
		tw.Render()
		return nil
	}
}

func csvRows(rows [][]string) []render.Row {
	out := make([]render.Row, len(rows))
	for i, cells := range rows {
		out[i] = render.Row{Cells: cells}
	}
	return out
}
