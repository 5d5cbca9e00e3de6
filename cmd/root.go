package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/cursor-archive/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-archive",
	Short: "Export and browse Cursor IDE conversations",
	Long: `A CLI tool and local HTTP server for Cursor IDE conversation data.

cursor-archive reads the per-workspace storage of the Cursor desktop app,
normalizes both conversation formats (composer threads and chat tabs)
into one canonical shape, and exports or serves them for browsing and
semantic search.

Features:
  • Bulk export of every conversation across all workspaces
  • Single-conversation lookup by workspace, type and id
  • Multiple export formats (JSON, JSONL, Markdown, YAML)
  • Local HTTP API for front-ends
  • Proxy to an external semantic search service

Quick Start:
  cursor-archive list                      # List all conversations
  cursor-archive export -o export.json     # Export everything
  cursor-archive serve                     # Start the local API

For detailed usage, see: https://github.com/iksnae/cursor-archive`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to the Cursor User directory)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
