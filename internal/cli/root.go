package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the winforms CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose (-v)
// raises it to debug and also enables the layout engine's own trace
// output.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "winforms",
		Short:        "winforms lays out anchored and docked element trees",
		Long:         `winforms is a CLI for the winforms layout engine: it loads TOML scene files describing element trees with anchor, dock, and auto-size intent, runs layout over them, and renders the result as text.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if verbose {
				attachEngineLogger(logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("winforms %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}
