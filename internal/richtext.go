package internal

import (
	"encoding/json"
	"strings"
)

// richTextNode is one node of the Lexical editor tree Cursor persists
// alongside the plain text of a composer message.
type richTextNode struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	Children []richTextNode `json:"children,omitempty"`
}

// ExtractRichText recovers plain text from a composer message's
// richText payload. Paragraph nodes become lines, code nodes become
// fenced blocks, everything else contributes its text content. An
// empty or unreadable payload yields "".
func ExtractRichText(richTextJSON string) string {
	if richTextJSON == "" {
		return ""
	}

	var doc struct {
		Root richTextNode `json:"root"`
	}
	if err := json.Unmarshal([]byte(richTextJSON), &doc); err != nil {
		LogDebug("unreadable richText payload: %v", err)
		return ""
	}

	return strings.TrimSpace(renderRichTextNode(doc.Root))
}

func renderRichTextNode(node richTextNode) string {
	switch node.Type {
	case "text":
		return node.Text
	case "linebreak":
		return "\n"
	case "code":
		code := renderRichTextChildren(node.Children)
		if code == "" {
			return ""
		}
		return "\n```\n" + code + "\n```\n"
	case "paragraph":
		text := renderRichTextChildren(node.Children)
		if text == "" {
			return ""
		}
		return text + "\n"
	default:
		text := node.Text
		text += renderRichTextChildren(node.Children)
		return text
	}
}

func renderRichTextChildren(children []richTextNode) string {
	var sb strings.Builder
	for _, child := range children {
		sb.WriteString(renderRichTextNode(child))
	}
	return sb.String()
}
