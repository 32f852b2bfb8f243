package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "convcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `catalog: rules.yaml
output: json
strict: true
docs:
  outdir: site
  title: validation reference
export:
  db: out.db
`)

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "rules.yaml", cfg.Catalog)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "site", cfg.Docs.OutDir)
	assert.Equal(t, "validation reference", cfg.Docs.Title)
	assert.Equal(t, "out.db", cfg.Export.DB)
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "convcat.yml"), []byte("output: csv\n"), 0600))
	t.Chdir(dir)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "convcat.yml", used)
	assert.Equal(t, "csv", cfg.OutputFormat)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvPrecedenceOverFile(t *testing.T) {
	path := writeConfig(t, "docs:\n  outdir: from_file\n")
	t.Setenv("CONVCAT_DOCS_OUTDIR", "from_env")
	t.Setenv("CONVCAT_VERBOSE", "true")

	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Docs.OutDir)
	assert.True(t, cfg.Verbose)
}

func TestLoad_FlagPrecedence(t *testing.T) {
	path := writeConfig(t, "docs:\n  outdir: from_file\n")
	t.Setenv("CONVCAT_DOCS_OUTDIR", "from_env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("outdir", "", "output directory")
	flags.String("target", "", "not a config key")
	require.NoError(t, flags.Set("outdir", "from_flag"))
	require.NoError(t, flags.Set("target", "Integer"))

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from_flag", cfg.Docs.OutDir)
}

func TestLoad_FlagNotSetUsesEnv(t *testing.T) {
	t.Setenv("CONVCAT_EXPORT_DB", "from_env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", DefaultExportDB, "database path")

	cfg, _, err := Load(writeConfig(t, "verbose: false\n"), flags)
	require.NoError(t, err)
	assert.Equal(t, "from_env.db", cfg.Export.DB)
}

func TestLoad_InvalidOutput(t *testing.T) {
	_, _, err := Load(writeConfig(t, "output: html\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output")
}

func TestConfig_Validate(t *testing.T) {
	for _, mode := range append(OutputModes, "md", "JSON") {
		cfg := Default()
		cfg.OutputFormat = mode
		assert.NoError(t, cfg.Validate(), mode)
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.Strict = true
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))

	var buf bytes.Buffer
	ctx = WithLogger(ctx, NewLogger(&buf, true))
	GetLogger(ctx).Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello k=v")
}

func TestNewLogger_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
