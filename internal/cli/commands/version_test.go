package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/leapstack-labs/convcat/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		wantOut []string
	}{
		{
			name:    "default version",
			version: "0.1.0",
			commit:  "unknown",
			date:    "unknown",
			wantOut: []string{"convcat v0.1.0\n", "commit "},
		},
		{
			name:    "release build",
			version: "1.2.3",
			commit:  "abc1234",
			date:    "2024-01-02",
			wantOut: []string{"convcat v1.2.3\n", "commit abc1234, built 2024-01-02 (" + runtime.Version() + ")"},
		},
		{
			name:    "dev version",
			version: "dev",
			wantOut: []string{"convcat vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version, tt.commit, tt.date)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			require.NoError(t, cmd.Execute())

			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNewVersionCommand_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFormat = "json"

	cmd := NewVersionCommand("1.2.3", "abc1234", "2024-01-02")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))

	require.NoError(t, cmd.ExecuteContext(config.WithConfig(context.Background(), cfg)))

	var got VersionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, VersionInfo{Version: "1.2.3", Commit: "abc1234", Built: "2024-01-02", Go: runtime.Version()}, got)
}

func TestNewVersionInfo(t *testing.T) {
	info := NewVersionInfo("dev", "", "")

	assert.Equal(t, "dev", info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Built)
	assert.Equal(t, runtime.Version(), info.Go)

	pinned := NewVersionInfo("1.0.0", "deadbeef", "today")
	assert.Equal(t, "deadbeef", pinned.Commit)
	assert.Equal(t, "today", pinned.Built)
}

func TestShortRevision(t *testing.T) {
	assert.Equal(t, "0123456", shortRevision("0123456789abcdef"))
	assert.Equal(t, "abc", shortRevision("abc"))
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test", "", "")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}
