// Package commands implements the convcat subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/convcat/internal/cli/config"
	"github.com/leapstack-labs/convcat/internal/cli/output"
	"github.com/leapstack-labs/convcat/pkg/catalog"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger and renderer of cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.FromContext(ctx)
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// LoadCatalog returns the configured catalog file or the built-in catalog.
func (c *CommandContext) LoadCatalog() (*catalog.Catalog, error) {
	return loadCatalog(c.Cfg.Catalog, c.Logger)
}

func loadCatalog(path string, logger *slog.Logger) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		logger.Debug("loaded built-in catalog", "rules", cat.Len())
		return cat, nil
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded catalog file", "path", path, "rules", cat.Len())
	return cat, nil
}
