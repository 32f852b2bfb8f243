package commands

import (
	"fmt"

	"github.com/leapstack-labs/convcat/internal/cli/output"
	"github.com/leapstack-labs/convcat/pkg/catalog"
	"github.com/leapstack-labs/convcat/pkg/core"
	"github.com/leapstack-labs/convcat/pkg/render"
	"github.com/spf13/cobra"
)

// TableOptions holds options for the table command.
type TableOptions struct {
	Target   string
	Input    string
	Mode     string
	Channel  string
	Group    bool
	Examples bool
}

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	opts := &TableOptions{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render the coercion table",
		Long: `Render catalog entries as a table with the columns
target_type, input_representation, mode, channel, condition and
implementing_schema_kinds.

Output adapts to environment:
  - Terminal: aligned text table
  - Piped/Scripted: markdown pipe table
  - -o json / -o csv: machine-readable formats`,
		Example: `  # Full table
  convcat table

  # Lax rules for Integer, as markdown
  convcat table --target Integer --mode lax -o markdown

  # Everything usable on the wire, including Native & Wire rules
  convcat table --channel wire

  # One section per target type with examples
  convcat table --group --examples`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", "", "Only rules coercing into this type")
	cmd.Flags().StringVar(&opts.Input, "input", "", "Only rules accepting this input representation")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "Only rules of this mode: strict, lax")
	cmd.Flags().StringVar(&opts.Channel, "channel", "", "Only rules applying to this channel: native, wire, both")
	cmd.Flags().BoolVar(&opts.Group, "group", false, "One table per target type")
	cmd.Flags().BoolVar(&opts.Examples, "examples", false, "Include example values")

	return cmd
}

// BuildQuery converts the filter flags into a catalog query. A native or
// wire channel filter also matches rules declared for both channels.
func (o *TableOptions) BuildQuery() (catalog.Query, error) {
	var q catalog.Query
	if o.Target != "" {
		t, ok := core.LookupType(o.Target)
		if !ok {
			return q, fmt.Errorf("unknown target type %q", o.Target)
		}
		q.Target = t
	}
	if o.Input != "" {
		t, ok := core.LookupType(o.Input)
		if !ok {
			return q, fmt.Errorf("unknown input representation %q", o.Input)
		}
		q.Input = t
	}
	if o.Mode != "" {
		m, ok := core.ParseMode(o.Mode)
		if !ok {
			return q, fmt.Errorf("unknown mode %q (want strict or lax)", o.Mode)
		}
		q.Mode = m
	}
	if o.Channel != "" {
		ch, ok := core.ParseChannel(o.Channel)
		if !ok {
			return q, fmt.Errorf("unknown channel %q (want native, wire or both)", o.Channel)
		}
		q.Channel = ch
		q.Covering = ch != core.Both
	}
	return q, nil
}

func (o *TableOptions) renderOptions() []render.Option {
	if o.Examples {
		return nil
	}
	return []render.Option{render.WithoutExamples()}
}

func runTable(cmd *cobra.Command, opts *TableOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	q, err := opts.BuildQuery()
	if err != nil {
		return err
	}
	cat, err := cmdCtx.LoadCatalog()
	if err != nil {
		return err
	}

	entries := cat.Filter(q)
	cmdCtx.Logger.Debug("filtered catalog", "matched", len(entries), "total", cat.Len())

	if !opts.Group || r.EffectiveMode() == output.ModeJSON || r.EffectiveMode() == output.ModeCSV {
		return render.Write(r.Writer(), r.Format(), entries, opts.renderOptions()...)
	}

	var writeErr error
	catalog.GroupEntries(entries).Each(func(g catalog.Group) bool {
		r.Header(2, g.Target.Name())
		if writeErr = render.Write(r.Writer(), r.Format(), g.Entries, opts.renderOptions()...); writeErr != nil {
			return false
		}
		r.Println()
		return true
	})
	return writeErr
}
