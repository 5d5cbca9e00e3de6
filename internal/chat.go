package internal

import (
	"fmt"

	"github.com/google/uuid"
)

// bubbleTimestampQuantum is the spacing, in milliseconds, between
// synthesized timestamps for bubbles that carry none of their own.
// The offset is keyed to the bubble's position in the tab so repeated
// normalization of the same input always yields the same timestamps.
const bubbleTimestampQuantum = int64(1000)

// ChatNormalizer converts raw chat tabs to canonical conversations.
type ChatNormalizer struct{}

// NewChatNormalizer creates a new ChatNormalizer.
func NewChatNormalizer() *ChatNormalizer {
	return &ChatNormalizer{}
}

// Normalize converts one raw chat tab into a Conversation of type
// "chat". Bubbles with no text are dropped; bubble order is preserved.
// A bubble without an explicit timestamp gets the tab's anchor time
// plus its zero-based index times the quantum.
func (n *ChatNormalizer) Normalize(tab *RawChatTab, workspaceID, workspaceFolder string) (*Conversation, error) {
	if tab == nil {
		return nil, fmt.Errorf("tab is nil")
	}

	id := tab.TabID
	if id == "" {
		id = uuid.NewString()
	}

	hasCode := false
	messages := make([]Message, 0, len(tab.Bubbles))
	for i, bubble := range tab.Bubbles {
		if hasSelections(bubble) {
			hasCode = true
		}
		if bubble.Text == "" {
			continue
		}

		timestamp := bubble.Timestamp
		if timestamp == 0 {
			timestamp = tab.LastSendTime + int64(i)*bubbleTimestampQuantum
		}

		msg := Message{
			ID:           fmt.Sprintf("%s-bubble-%d", id, i),
			Role:         chatRole(bubble.Type),
			Content:      bubble.Text,
			Timestamp:    timestamp,
			TimestampISO: formatTimestamp(timestamp),
			Context:      bubbleContext(bubble),
		}
		if bubble.ModelType != "" {
			msg.Metadata = &MessageMetadata{Model: bubble.ModelType}
		}
		messages = append(messages, msg)
	}

	title := tab.ChatTitle
	if title == "" {
		title = untitledConversation
	}

	return &Conversation{
		ID:               id,
		Type:             ConversationTypeChat,
		Title:            title,
		Messages:         messages,
		CreatedAt:        tab.LastSendTime,
		CreatedAtISO:     formatTimestamp(tab.LastSendTime),
		LastUpdatedAt:    tab.LastSendTime,
		LastUpdatedAtISO: formatTimestamp(tab.LastSendTime),
		Workspace:        WorkspaceRef{ID: workspaceID, Folder: workspaceFolder},
		Summary:          ComputeSummary(messages, nil, hasCode),
	}, nil
}

// chatRole maps the bubble role marker to a role. Only the "ai" marker
// means assistant; anything else is user.
func chatRole(bubbleType string) string {
	if bubbleType == "ai" {
		return RoleAssistant
	}
	return RoleUser
}

// bubbleContext builds the context bundle for a chat bubble. Chat
// bubbles only ever carry code selections; files, folders, docs and
// commits do not exist in this shape.
func bubbleContext(bubble RawChatBubble) *ContextBundle {
	var selections []string
	for _, sel := range bubble.Selections {
		if sel.Text == "" {
			continue
		}
		selections = append(selections, sel.Text)
	}
	if len(selections) == 0 {
		return nil
	}
	return &ContextBundle{CodeSelections: selections}
}

func hasSelections(bubble RawChatBubble) bool {
	for _, sel := range bubble.Selections {
		if sel.Text != "" {
			return true
		}
	}
	return false
}
