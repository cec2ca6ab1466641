package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for datasearcher
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasearcher",
		Short: "Concurrent text and JSON search across a directory tree",
		Long: `datasearcher walks a directory tree and searches every text file for a
literal term, using a bounded pool of concurrent workers.

Each matching line is reported with its line number. JSON files are also
parsed and walked structurally, so keys and values that contain the term are
reported with their path (for example $.users[2].email).`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
