// Package config provides configuration management for the convcat CLI.
//
// Values are layered, highest precedence first: explicitly set flags,
// CONVCAT_* environment variables, the YAML config file, defaults.
package config

import (
	"fmt"
	"strings"
)

// Default configuration values.
const (
	DefaultOutput     = "auto" // TTY=text, non-TTY=markdown
	DefaultDocsOutDir = "docs"
	DefaultExportDB   = "convcat.db"
	DefaultDocsTitle  = "coercion rules"
)

// OutputModes are the accepted values of the output setting.
var OutputModes = []string{"auto", "text", "markdown", "json", "csv"}

// DocsConfig configures the docs command.
type DocsConfig struct {
	OutDir string `koanf:"outdir"`
	Title  string `koanf:"title"`
}

// ExportConfig configures the export command.
type ExportConfig struct {
	DB string `koanf:"db"`
}

// Config holds all CLI configuration options.
type Config struct {
	// Catalog is a YAML catalog file; empty selects the built-in catalog.
	Catalog      string       `koanf:"catalog"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	Strict       bool         `koanf:"strict"`
	Docs         DocsConfig   `koanf:"docs"`
	Export       ExportConfig `koanf:"export"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Docs: DocsConfig{
			OutDir: DefaultDocsOutDir,
			Title:  DefaultDocsTitle,
		},
		Export: ExportConfig{DB: DefaultExportDB},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	mode := strings.ToLower(c.OutputFormat)
	if mode == "md" {
		return nil
	}
	for _, m := range OutputModes {
		if mode == m {
			return nil
		}
	}
	return fmt.Errorf("invalid output %q (want one of %s)", c.OutputFormat, strings.Join(OutputModes, ", "))
}
