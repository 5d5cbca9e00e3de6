package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-archive/internal"
	"github.com/spf13/cobra"
)

var (
	listWorkspace string
	listType      string
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations across all workspaces",
	Long: `List every conversation found in Cursor's workspace storage,
newest first. Both composer threads and chat tabs are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		if listType != "" && listType != internal.ConversationTypeChat && listType != internal.ConversationTypeComposer {
			return fmt.Errorf(`invalid --type %q (must be "chat" or "composer")`, listType)
		}

		assembler := internal.NewExportAssembler(paths.BasePath)
		envelope, err := assembler.Export(context.Background(), internal.DefaultExportOptions())
		if err != nil {
			return fmt.Errorf("failed to collect conversations: %w", err)
		}

		conversations := envelope.Conversations
		if listWorkspace != "" {
			filtered := make([]internal.Conversation, 0, len(conversations))
			for _, conv := range conversations {
				if conv.Workspace.ID == listWorkspace {
					filtered = append(filtered, conv)
				}
			}
			conversations = filtered
		}
		if listType != "" {
			filtered := make([]internal.Conversation, 0, len(conversations))
			for _, conv := range conversations {
				if conv.Type == listType {
					filtered = append(filtered, conv)
				}
			}
			conversations = filtered
		}

		displayConversations(conversations)
		return nil
	},
}

func displayConversations(conversations []internal.Conversation) {
	if len(conversations) == 0 {
		fmt.Println(headerStyle.Render("📋 No conversations found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d conversation(s)", len(conversations)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns with better spacing
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Type")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Updated")+"\t"+titleStyle.Render("Workspace")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 120))

	for _, conv := range conversations {
		title := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Render(truncate(conv.Title, 45))

		msgCount := countStyle.Render(strconv.Itoa(conv.Summary.MessageCount))

		updated := dateStyle.Render("-")
		if conv.LastUpdatedAt > 0 {
			t := time.UnixMilli(conv.LastUpdatedAt)
			now := time.Now()
			diff := now.Sub(t)
			if diff < 24*time.Hour {
				updated = dateStyle.Render(t.Format("Today 15:04"))
			} else if diff < 7*24*time.Hour {
				updated = dateStyle.Render(t.Format("Mon 15:04"))
			} else if diff < 365*24*time.Hour {
				updated = dateStyle.Render(t.Format("Jan 02 15:04"))
			} else {
				updated = dateStyle.Render(t.Format("2006-01-02"))
			}
		}

		workspace := dateStyle.Render("-")
		if conv.Workspace.Folder != "" {
			folder := conv.Workspace.Folder
			if strings.Contains(folder, "/") {
				parts := strings.Split(folder, "/")
				folder = parts[len(parts)-1]
			}
			workspace = workspaceStyle.Render(truncate(folder, 25))
		} else if conv.Workspace.ID != "" {
			shortWS := conv.Workspace.ID
			if len(shortWS) > 12 {
				shortWS = shortWS[:12]
			}
			workspace = workspaceStyle.Render(shortWS)
		}

		// Show short ID (first 8 chars) for readability
		shortID := conv.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		id := idStyle.Render(shortID)

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", id, typeStyle.Render(conv.Type), title, msgCount, updated, workspace)
	}

	_ = w.Flush()
	fmt.Println()
	first := conversations[0]
	fmt.Println(idStyle.Render("💡 Tip: Use the full ID (e.g., ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(first.ID) +
		idStyle.Render(fmt.Sprintf(") with `cursor-archive show <id> --workspace %s --type %s`", first.Workspace.ID, first.Type)))
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listWorkspace, "workspace", "", "Filter by workspace ID")
	listCmd.Flags().StringVar(&listType, "type", "", `Filter by conversation type ("chat" or "composer")`)
}
