package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-archive/internal/config"
	"github.com/iksnae/cursor-archive/internal/search"
	"github.com/spf13/cobra"
)

var (
	searchSearchURL string
	searchTopK      int
	searchType      string
	searchMinScore  float64
)

var (
	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	matchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	matchMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	matchContentStyle = lipgloss.NewStyle().
				Padding(0, 2)
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Semantic search over indexed conversations",
	Long: `Run a similarity query against the semantic search service.

Run 'cursor-archive index' first to build the index.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		cfg := config.Load()
		if cmd.Flags().Changed("search-url") {
			cfg.SearchURL = searchSearchURL
		}
		client := search.NewClient(cfg.SearchURL)

		results, err := client.Search(context.Background(), search.Request{
			Query:      query,
			TopK:       searchTopK,
			FilterType: searchType,
			MinScore:   searchMinScore,
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println(matchMetaStyle.Render("No matches found"))
			return nil
		}

		fmt.Println(matchTitleStyle.Render(fmt.Sprintf("🔎 %d match(es) for %q", len(results), query)))
		fmt.Println()

		for i, result := range results {
			displaySearchResult(i+1, result)
		}
		return nil
	},
}

func displaySearchResult(rank int, result search.Result) {
	header := fmt.Sprintf("%d. %s %s",
		rank,
		matchTitleStyle.Render(result.ConversationTitle),
		scoreStyle.Render(fmt.Sprintf("%.2f", result.SimilarityScore)))
	fmt.Println(header)

	var metaParts []string
	metaParts = append(metaParts, result.Type)
	metaParts = append(metaParts, result.MessageRole)
	if result.Timestamp > 0 {
		metaParts = append(metaParts, time.UnixMilli(result.Timestamp).Format("2006-01-02 15:04"))
	}
	if result.WorkspaceFolder != "" {
		metaParts = append(metaParts, result.WorkspaceFolder)
	}
	fmt.Println(matchMetaStyle.Render("   " + strings.Join(metaParts, " • ")))

	content := truncate(strings.TrimSpace(result.MessageContent), 300)
	fmt.Println(matchContentStyle.Render(wrapText(content, 80)))
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchSearchURL, "search-url", "", "Base URL of the semantic search service")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 5, "Maximum number of results")
	searchCmd.Flags().StringVar(&searchType, "type", "", `Filter by conversation type ("chat" or "composer")`)
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", 0, "Minimum similarity score (0-1)")
}
