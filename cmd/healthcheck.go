package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-archive/internal"
	"github.com/iksnae/cursor-archive/internal/config"
	"github.com/iksnae/cursor-archive/internal/search"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
	healthcheckSearch  bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if cursor-archive can locate and access conversation data",
	Long: `Check the health of cursor-archive by verifying:
  • Storage path detection
  • Workspace storage availability
  • Per-workspace store accessibility
  • Conversation count

This command is useful for debugging storage issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Cursor Archive Health Check"))
		fmt.Println()

		// Step 1: Detect storage paths
		fmt.Println(infoStyle.Render("Step 1: Detecting storage paths..."))
		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to detect storage paths:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✅ Storage paths detected"))
		if healthcheckVerbose {
			fmt.Printf("   Base path: %s\n", paths.BasePath)
			fmt.Printf("   Workspace storage: %s\n", paths.WorkspaceStorage)
		}
		fmt.Println()

		// Step 2: Enumerate workspaces
		fmt.Println(infoStyle.Render("Step 2: Enumerating workspaces..."))
		workspaces, err := internal.ListWorkspaces(paths.BasePath)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to enumerate workspaces:"), err)
			os.Exit(1)
		}

		withStore := 0
		for _, ws := range workspaces {
			if ws.HasStore() {
				withStore++
			}
		}

		if len(workspaces) > 0 {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Found %d workspace(s), %d with a store", len(workspaces), withStore)))
			if healthcheckVerbose {
				for i, ws := range workspaces {
					if i >= 5 {
						fmt.Printf("   ... and %d more\n", len(workspaces)-5)
						break
					}
					marker := "-"
					if ws.HasStore() {
						marker = "state.vscdb"
					}
					folder := ws.Folder
					if folder == "" {
						folder = "(no folder)"
					}
					fmt.Printf("   [%d] %s  %s  %s\n", i+1, ws.ID, folder, marker)
				}
			}
		} else {
			fmt.Println(warningStyle.Render("⚠️  No workspaces found"))
			if healthcheckVerbose {
				fmt.Printf("   Expected: %s/{hash}/state.vscdb\n", paths.WorkspaceStorage)
			}
		}
		fmt.Println()

		// Step 3: Collect conversations
		fmt.Println(infoStyle.Render("Step 3: Loading conversation data..."))
		assembler := internal.NewExportAssembler(paths.BasePath)
		envelope, err := assembler.Export(context.Background(), internal.DefaultExportOptions())
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to collect conversations:"), err)
			os.Exit(1)
		}

		if envelope.TotalConversations > 0 {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Found %d conversation(s) with %d message(s)",
				envelope.TotalConversations, envelope.TotalMessages)))
			if healthcheckVerbose {
				for i, conv := range envelope.Conversations {
					if i >= 5 {
						fmt.Printf("   ... and %d more\n", envelope.TotalConversations-5)
						break
					}
					fmt.Printf("   [%d] %s (%s, %d message(s))\n", i+1, conv.Title, conv.Type, conv.Summary.MessageCount)
				}
			}
		} else {
			fmt.Println(warningStyle.Render("⚠️  No conversations found"))
			fmt.Println("   This could mean:")
			fmt.Println("   • No conversations have been created yet")
			fmt.Println("   • Workspace stores exist but hold no conversation data")
		}
		fmt.Println()

		// Step 4 (optional): Check the search service
		searchHealthy := true
		if healthcheckSearch {
			fmt.Println(infoStyle.Render("Step 4: Checking semantic search service..."))
			cfg := config.Load()
			client := search.NewClient(cfg.SearchURL)
			health, err := client.Health(context.Background())
			if err != nil {
				searchHealthy = false
				fmt.Println(warningStyle.Render("⚠️  Search service unreachable:"), err)
			} else {
				fmt.Println(successStyle.Render(fmt.Sprintf("✅ Search service is %s", health.Status)))
				if healthcheckVerbose {
					fmt.Printf("   Embeddings indexed: %v\n", health.EmbeddingsIndexed)
					fmt.Printf("   Conversations indexed: %d\n", health.ConversationCount)
				}
			}
			fmt.Println()
		}

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()

		if withStore > 0 && envelope.TotalConversations > 0 {
			fmt.Println(successStyle.Render("✅ Health check passed!"))
			fmt.Println(successStyle.Render(fmt.Sprintf("   • Workspaces: %d (%d with stores)", len(workspaces), withStore)))
			fmt.Println(successStyle.Render(fmt.Sprintf("   • Conversations: %d found", envelope.TotalConversations)))
			if healthcheckSearch && !searchHealthy {
				fmt.Println(warningStyle.Render("   • Search service: unreachable"))
			}
			return nil
		} else if withStore > 0 {
			fmt.Println(warningStyle.Render("⚠️  Storage available but no conversations found"))
			fmt.Println("   • Workspace stores are readable")
			fmt.Println("   • No conversations are currently available")
			return nil
		}

		fmt.Println(errorStyle.Render("❌ Health check failed"))
		fmt.Println("   • No workspace stores are available")
		fmt.Println("   • Cannot access conversation data")
		return fmt.Errorf("health check failed: no storage available")
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed diagnostic information")
	healthcheckCmd.Flags().BoolVar(&healthcheckSearch, "search", false, "Also check the semantic search service")
}
