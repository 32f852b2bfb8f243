package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/convcat/internal/cli/output"
	"github.com/leapstack-labs/convcat/internal/store"
	"github.com/spf13/cobra"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	DB string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a SQLite database",
		Long: `Write every rule, its schema kinds, examples and the consistency
findings into a SQLite database. Existing rules in the database are
replaced; rule IDs are stable across exports of the same catalog.`,
		Example: `  # Export to ./convcat.db
  convcat export

  # Export a catalog file to a custom location
  convcat export --catalog rules.yaml --db build/rules.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "Database path (default from config: convcat.db)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	path := firstNonEmpty(opts.DB, cmdCtx.Cfg.Export.DB)
	if path == "" {
		return fmt.Errorf("no database path configured")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	cat, err := cmdCtx.LoadCatalog()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	stats, err := st.Export(ctx, cat)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("exported catalog", "db", path, "rules", stats.Rules)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"db":         path,
			"rules":      stats.Rules,
			"schemas":    stats.Schemas,
			"examples":   stats.Examples,
			"violations": stats.Violations,
		})
	}
	r.Success(fmt.Sprintf("exported %d rules (%d schema kinds, %d examples, %d findings) to %s",
		stats.Rules, stats.Schemas, stats.Examples, stats.Violations, path))
	return nil
}
