package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/convcat/internal/cli/output"
	"github.com/leapstack-labs/convcat/pkg/catalog"
	"github.com/leapstack-labs/convcat/pkg/render"
	"github.com/spf13/cobra"
)

// ErrViolations is returned by check --strict when warnings were found.
var ErrViolations = errors.New("catalog has consistency warnings")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Strict bool
}

// CheckReport is the JSON form of the check result.
type CheckReport struct {
	Rules      int                 `json:"rules"`
	Warnings   int                 `json:"warnings"`
	Infos      int                 `json:"infos"`
	Violations []catalog.Violation `json:"violations"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the catalog for inconsistent rules",
		Long: `Load the catalog and report rules that contradict each other,
duplicate rules, and wire rules whose input has no text form.

Loading fails on structurally malformed entries. Consistency findings are
reported as warnings or infos; with --strict any warning makes the command
exit non-zero.`,
		Example: `  # Check the built-in catalog
  convcat check

  # Check a catalog file and fail on warnings
  convcat check --catalog rules.yaml --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero when warnings are found")

	return cmd
}

// NewCheckReport classifies the violations of c.
func NewCheckReport(c *catalog.Catalog) CheckReport {
	report := CheckReport{
		Rules:      c.Len(),
		Violations: catalog.ValidateConsistency(c),
	}
	for _, v := range report.Violations {
		if v.Severity == catalog.SeverityWarning {
			report.Warnings++
		} else {
			report.Infos++
		}
	}
	return report
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	cat, err := cmdCtx.LoadCatalog()
	if err != nil {
		return err
	}
	report := NewCheckReport(cat)
	cmdCtx.Logger.Debug("checked catalog", "rules", report.Rules, "warnings", report.Warnings, "infos", report.Infos)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if report.Violations == nil {
			report.Violations = []catalog.Violation{}
		}
		if err := r.JSON(report); err != nil {
			return err
		}
	case output.ModeMarkdown, output.ModeCSV:
		writeCheckMarkdown(r, report)
	default:
		writeCheckText(r, report)
	}

	if (opts.Strict || cmdCtx.Cfg.Strict) && report.Warnings > 0 {
		return fmt.Errorf("%w: %d warnings", ErrViolations, report.Warnings)
	}
	return nil
}

func writeCheckText(r *output.Renderer, report CheckReport) {
	r.Header(1, fmt.Sprintf("Consistency check (%d rules)", report.Rules))
	if len(report.Violations) == 0 {
		r.Success("no inconsistencies found")
		return
	}
	for _, v := range report.Violations {
		style := severityStyle(r.Styles, v.Severity)
		r.Printf("%s %s %s\n", style.Render(fmt.Sprintf("%-7s", v.Severity)), r.Styles.Muted.Render(v.Code), v.Message)
	}
	r.Println()
	r.Muted(fmt.Sprintf("%d warnings, %d infos", report.Warnings, report.Infos))
}

func writeCheckMarkdown(r *output.Renderer, report CheckReport) {
	r.Header(1, "Consistency check")
	r.Println(output.FormatKeyValue("Rules", fmt.Sprint(report.Rules)))
	r.Println(output.FormatKeyValue("Warnings", fmt.Sprint(report.Warnings)))
	r.Println(output.FormatKeyValue("Infos", fmt.Sprint(report.Infos)))
	r.Println()
	if len(report.Violations) == 0 {
		return
	}

	w := render.NewMarkdownWriter()
	rows := make([][]string, len(report.Violations))
	for i, v := range report.Violations {
		rows[i] = []string{v.Severity.String(), render.InlineCode(v.Code), fmt.Sprint(v.Entries), render.EscapeCell(v.Message)}
	}
	w.Table([]string{"Severity", "Code", "Entries", "Message"}, rows)
	_, _ = r.Writer().Write(w.Bytes())
}

func severityStyle(styles *output.Styles, sev catalog.Severity) lipgloss.Style {
	switch sev {
	case catalog.SeverityWarning:
		return styles.Warning
	default:
		return styles.Info
	}
}
