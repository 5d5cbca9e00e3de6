package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/cursor-archive/internal"
	"github.com/iksnae/cursor-archive/internal/export"
	"github.com/spf13/cobra"
)

var (
	format          string
	outputPath      string
	excludeComposer bool
	excludeChat     bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all conversations to a file",
	Long: `Export every conversation from every Cursor workspace to a single file.

Both conversation formats (composer threads and chat tabs) are normalized
into one canonical shape and wrapped in an export envelope. Workspaces
whose store cannot be read are skipped with a warning; the export still
succeeds with the rest.

Formats: json (default), jsonl, md, yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		opts := internal.ExportOptions{
			IncludeComposers: !excludeComposer,
			IncludeChats:     !excludeChat,
		}

		assembler := internal.NewExportAssembler(paths.BasePath)

		ctx := context.Background()
		var envelope *internal.ExportEnvelope
		err = internal.ShowProgress(ctx, "Collecting conversations from workspaces", func() error {
			var exportErr error
			envelope, exportErr = assembler.Export(ctx, opts)
			return exportErr
		})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := outputPath
		if out == "" {
			out = fmt.Sprintf("cursor-export.%s", exporter.Extension())
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		if err := exporter.Export(envelope, file); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write export: %w", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Exported %d conversation(s) (%d message(s)) to %s",
			envelope.TotalConversations, envelope.TotalMessages, out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default cursor-export.<ext>)")
	exportCmd.Flags().BoolVar(&excludeComposer, "no-composers", false, "Exclude composer threads")
	exportCmd.Flags().BoolVar(&excludeChat, "no-chats", false, "Exclude chat tabs")
}
