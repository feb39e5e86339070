// Package cli provides the Cobra command structure for linesmith.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/linesmith/linesmith/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root linesmith command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "linesmith",
		Short: "A line-addressable text editing server for automated callers",
		Long: `linesmith exposes safe, line-addressable editing of text files over MCP.

A caller targets a file, selects a line range, proposes a replacement, reviews
a diff preview, and then commits or discards the change. Every write is gated
by optimistic concurrency detection (the file must not have changed since the
range was selected) and by a per-file-type syntax check of the resulting file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newServeCommand(info))
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
