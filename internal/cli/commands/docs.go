package commands

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/convcat/internal/docs"
	"github.com/spf13/cobra"
)

// DocsOptions holds options for the docs command.
type DocsOptions struct {
	OutDir string
	Title  string
	Watch  bool
}

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	opts := &DocsOptions{}
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate markdown reference pages",
		Long: `Generate a markdown reference of the catalog: an index page listing
every target type, plus one page per target with its Strict and Lax rules.

With --watch the pages are regenerated whenever the catalog file changes.
Watching requires a catalog file (--catalog).`,
		Example: `  # Generate into ./docs
  convcat docs

  # Custom directory and title
  convcat docs --outdir site/rules --title "validation reference"

  # Regenerate on every save of a catalog file
  convcat docs --catalog rules.yaml --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDocs(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "outdir", "", "Output directory (default from config: docs)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Site title")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Regenerate when the catalog file changes")

	return cmd
}

func runDocs(cmd *cobra.Command, opts *DocsOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	outDir := firstNonEmpty(opts.OutDir, cfg.Docs.OutDir)
	if outDir == "" {
		return fmt.Errorf("no output directory configured")
	}
	if opts.Watch && cfg.Catalog == "" {
		return fmt.Errorf("--watch requires a catalog file (--catalog)")
	}

	gen := docs.NewGenerator(firstNonEmpty(opts.Title, cfg.Docs.Title), logger)
	build := func(ctx context.Context) error {
		cat, err := cmdCtx.LoadCatalog()
		if err != nil {
			return err
		}
		res, err := gen.Generate(ctx, cat, outDir)
		if err != nil {
			return err
		}
		r.Success(fmt.Sprintf("wrote %d pages (%d rules) to %s", res.Pages, res.Rules, outDir))
		if res.Violations > 0 {
			r.Warning(fmt.Sprintf("%d consistency findings, see the index page", res.Violations))
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := build(ctx); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	w, err := docs.NewWatcher(cfg.Catalog, logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	r.Muted(fmt.Sprintf("watching %s, press Ctrl+C to stop", cfg.Catalog))
	return w.Run(ctx, build)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
