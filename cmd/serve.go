package cmd

import (
	"fmt"

	"github.com/iksnae/cursor-archive/internal"
	"github.com/iksnae/cursor-archive/internal/api"
	"github.com/iksnae/cursor-archive/internal/config"
	"github.com/iksnae/cursor-archive/internal/search"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveSearchURL string
	serveNoSearch  bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	Long: `Start a local HTTP server exposing the conversation pipeline.

Endpoints:
  GET  /health                    Liveness check
  GET  /api/export                Bulk export of all conversations
  GET  /api/conversations/{id}    Single conversation lookup
  POST /api/index                 Export and push to the search service
  POST /api/search                Semantic search proxy
  GET  /api/search/health         Search service health proxy

Configuration comes from the environment (CURSOR_ARCHIVE_PORT,
CURSOR_ARCHIVE_STORAGE, CURSOR_ARCHIVE_SEARCH_URL, LOG_LEVEL); flags
override it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		internal.SetLogLevel(internal.ParseLogLevel(cfg.LogLevel))

		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("search-url") {
			cfg.SearchURL = serveSearchURL
		}
		if storagePath != "" {
			cfg.StoragePath = storagePath
		}

		paths, err := internal.GetStoragePaths(cfg.StoragePath)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		var searchClient *search.Client
		if !serveNoSearch && cfg.SearchURL != "" {
			searchClient = search.NewClient(cfg.SearchURL)
		}

		server := api.NewServer(cfg.Port, paths.BasePath, searchClient)
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8260, "Port to listen on")
	serveCmd.Flags().StringVar(&serveSearchURL, "search-url", "", "Base URL of the semantic search service")
	serveCmd.Flags().BoolVar(&serveNoSearch, "no-search", false, "Disable the semantic search proxy routes")
}
