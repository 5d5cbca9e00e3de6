package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/cursor-archive/internal"
	"github.com/iksnae/cursor-archive/internal/config"
	"github.com/iksnae/cursor-archive/internal/search"
	"github.com/spf13/cobra"
)

var (
	indexSearchURL string
	indexClear     bool
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Export all conversations and push them to the search service",
	Long: `Run a full export and send the envelope to the semantic search
service for embedding and indexing. The service must be running and
reachable at the configured URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cmd.Flags().Changed("search-url") {
			cfg.SearchURL = indexSearchURL
		}
		client := search.NewClient(cfg.SearchURL)

		ctx := context.Background()

		if indexClear {
			if err := client.ClearIndex(ctx); err != nil {
				return fmt.Errorf("failed to clear index: %w", err)
			}
			internal.PrintSuccess("Index cleared")
		}

		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		assembler := internal.NewExportAssembler(paths.BasePath)
		var envelope *internal.ExportEnvelope
		err = internal.ShowProgress(ctx, "Collecting conversations from workspaces", func() error {
			var exportErr error
			envelope, exportErr = assembler.Export(ctx, internal.DefaultExportOptions())
			return exportErr
		})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var stats *search.IndexStats
		err = internal.ShowProgress(ctx, fmt.Sprintf("Indexing %d conversation(s)", envelope.TotalConversations), func() error {
			var indexErr error
			stats, indexErr = client.Index(ctx, envelope)
			return indexErr
		})
		if err != nil {
			return fmt.Errorf("indexing failed: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Indexed %d message(s) across %d conversation(s)",
			stats.IndexedMessages, stats.IndexedConversations))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVar(&indexSearchURL, "search-url", "", "Base URL of the semantic search service")
	indexCmd.Flags().BoolVar(&indexClear, "clear", false, "Clear the existing index before indexing")
}
