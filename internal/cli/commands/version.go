package commands

import (
	"runtime"
	"runtime/debug"

	"github.com/leapstack-labs/convcat/internal/cli/output"
	"github.com/spf13/cobra"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
}

// NewVersionInfo fills unset build fields from the module build info.
func NewVersionInfo(version, commit, date string) VersionInfo {
	info := VersionInfo{Version: version, Commit: commit, Built: date, Go: runtime.Version()}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" || info.Commit == "unknown" {
					info.Commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.Built == "" || info.Built == "unknown" {
					info.Built = s.Value
				}
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Built == "" {
		info.Built = "unknown"
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the convcat release, the commit and build time it was built from, and the Go toolchain.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			info := NewVersionInfo(version, commit, date)
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(info)
			}
			r.Printf("convcat v%s\n", info.Version)
			r.Printf("commit %s, built %s (%s)\n", info.Commit, info.Built, info.Go)
			return nil
		},
	}
}
