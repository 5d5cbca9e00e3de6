package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/cursor-archive/internal"
)

// MarkdownExporter writes a human-readable rendering of the export.
type MarkdownExporter struct{}

// Export writes the envelope to w as Markdown.
func (e *MarkdownExporter) Export(envelope *internal.ExportEnvelope, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Cursor Conversation Export\n\n")
	_, _ = fmt.Fprintf(w, "**Exported:** %s  \n", envelope.ExportedAtISO)
	_, _ = fmt.Fprintf(w, "**Conversations:** %d  \n", envelope.TotalConversations)
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", envelope.TotalMessages)

	for i := range envelope.Conversations {
		e.exportConversation(&envelope.Conversations[i], w)
	}

	return nil
}

func (e *MarkdownExporter) exportConversation(conv *internal.Conversation, w io.Writer) {
	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## %s\n\n", conv.Title)
	_, _ = fmt.Fprintf(w, "**ID:** %s  \n", conv.ID)
	_, _ = fmt.Fprintf(w, "**Type:** %s  \n", conv.Type)
	if conv.Workspace.Folder != "" {
		_, _ = fmt.Fprintf(w, "**Workspace:** %s  \n", conv.Workspace.Folder)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", conv.Summary.MessageCount)

	for i, msg := range conv.Messages {
		timestamp := ""
		if msg.TimestampISO != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.TimestampISO)
		}

		content := escapeMarkdown(msg.Content)
		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, content)

		if msg.Context != nil && len(msg.Context.Files) > 0 {
			_, _ = fmt.Fprintf(w, "_Files: %s_\n\n", strings.Join(msg.Context.Files, ", "))
		}

		if i < len(conv.Messages)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// escapeMarkdown escapes markdown emphasis outside code blocks.
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format.
func (e *MarkdownExporter) Extension() string {
	return "md"
}
