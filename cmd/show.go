package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-archive/internal"
	"github.com/spf13/cobra"
)

var (
	showWorkspace string
	showType      string
	limit         int
)

var (
	// Styles for show command
	convHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	convMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	contextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108")).
			Padding(0, 2)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Show a single conversation",
	Long: `Display one conversation from a workspace store.

The workspace ID and conversation type are required because IDs are only
unique within a workspace and a type. Use 'cursor-archive list' to find
all three values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		lookup := internal.NewConversationLookup(paths.BasePath)
		result, err := lookup.Lookup(showWorkspace, showType, id)
		if err != nil {
			return err
		}

		conv := result.Conversation
		displayConversationHeader(conv)

		messagesToShow := conv.Messages
		total := len(messagesToShow)
		if limit > 0 && limit < len(messagesToShow) {
			messagesToShow = messagesToShow[:limit]
		}

		for i, msg := range messagesToShow {
			displayMessage(i+1, msg, total)
		}

		if limit > 0 && limit < total {
			remaining := total - limit
			fmt.Println()
			fmt.Println(lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true).
				Render(fmt.Sprintf("... (%d more message(s))", remaining)))
		}

		return nil
	},
}

func displayConversationHeader(conv *internal.Conversation) {
	if conv == nil {
		return
	}
	header := convHeaderStyle.Render(fmt.Sprintf("💬 %s", conv.Title))
	fmt.Println(header)

	var metaParts []string
	metaParts = append(metaParts, fmt.Sprintf("Type: %s", conv.Type))
	if conv.CreatedAtISO != "" {
		metaParts = append(metaParts, fmt.Sprintf("Created: %s", conv.CreatedAtISO))
	}
	metaParts = append(metaParts, fmt.Sprintf("Messages: %d", conv.Summary.MessageCount))
	if conv.Workspace.Folder != "" {
		metaParts = append(metaParts, fmt.Sprintf("Workspace: %s", conv.Workspace.Folder))
	}
	if conv.Summary.HasCodeContext {
		metaParts = append(metaParts, fmt.Sprintf("Files: %d", len(conv.Summary.FilesReferenced)))
	}

	meta := convMetaStyle.Render(strings.Join(metaParts, " • "))
	fmt.Println(meta)

	fmt.Println()
}

func displayMessage(index int, msg internal.Message, total int) {
	var roleStyle lipgloss.Style
	var roleLabel string

	switch msg.Role {
	case internal.RoleUser:
		roleStyle = userMessageStyle
		roleLabel = "👤 User"
	case internal.RoleAssistant:
		roleStyle = assistantMessageStyle
		roleLabel = "🤖 Assistant"
	default:
		roleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		roleLabel = fmt.Sprintf("🔧 %s", msg.Role)
	}

	// Message header
	header := roleStyle.Render(roleLabel) + " " + timestampStyle.Render(fmt.Sprintf("[%d/%d]", index, total))
	if msg.TimestampISO != "" {
		if t, err := time.Parse(time.RFC3339, msg.TimestampISO); err == nil {
			header += " " + timestampStyle.Render(t.Format("15:04:05"))
		} else {
			header += " " + timestampStyle.Render(msg.TimestampISO)
		}
	}
	if msg.Metadata != nil && msg.Metadata.Model != "" {
		header += " " + timestampStyle.Render(fmt.Sprintf("(%s)", msg.Metadata.Model))
	}

	fmt.Println(header)

	// Message content
	content := strings.TrimSpace(msg.Content)
	if content != "" {
		content = wrapText(content, 80)
		fmt.Println(messageContentStyle.Render(content))
	} else {
		fmt.Println(messageContentStyle.Foreground(lipgloss.Color("240")).Render("(empty message)"))
	}

	// Attached context, when present
	if msg.Context != nil && !msg.Context.IsEmpty() {
		var parts []string
		if n := len(msg.Context.CodeSelections); n > 0 {
			parts = append(parts, fmt.Sprintf("%d code selection(s)", n))
		}
		for _, f := range msg.Context.Files {
			parts = append(parts, f)
		}
		for _, f := range msg.Context.Folders {
			parts = append(parts, f+"/")
		}
		if len(parts) > 0 {
			fmt.Println(contextStyle.Render("📎 " + strings.Join(parts, ", ")))
		}
	}

	fmt.Println()
}

// truncate shortens s to at most max runes, appending "..." when cut.
// Rune-based so multi-byte text is never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func wrapText(text string, width int) string {
	lines := strings.Split(text, "\n")
	var wrapped []string

	for _, line := range lines {
		if len(line) <= width {
			wrapped = append(wrapped, line)
			continue
		}

		// Wrap long lines
		words := strings.Fields(line)
		currentLine := ""
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				if currentLine != "" {
					wrapped = append(wrapped, currentLine)
					currentLine = word
				} else {
					wrapped = append(wrapped, word)
					currentLine = ""
				}
			} else {
				if currentLine == "" {
					currentLine = word
				} else {
					currentLine += " " + word
				}
			}
		}
		if currentLine != "" {
			wrapped = append(wrapped, currentLine)
		}
	}

	return strings.Join(wrapped, "\n")
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showWorkspace, "workspace", "w", "", "Workspace ID the conversation belongs to (required)")
	showCmd.Flags().StringVarP(&showType, "type", "t", "", `Conversation type, "chat" or "composer" (required)`)
	showCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of messages to show")
	_ = showCmd.MarkFlagRequired("workspace")
	_ = showCmd.MarkFlagRequired("type")
}
