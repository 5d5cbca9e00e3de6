package internal

import (
	"fmt"
)

// ComposerNormalizer converts raw composer threads to canonical
// conversations.
type ComposerNormalizer struct{}

// NewComposerNormalizer creates a new ComposerNormalizer.
func NewComposerNormalizer() *ComposerNormalizer {
	return &ComposerNormalizer{}
}

// Normalize converts one raw thread into a Conversation of type
// "composer". Message order is preserved exactly as stored; a thread
// with no readable message list normalizes to an empty conversation
// rather than failing.
func (n *ComposerNormalizer) Normalize(thread *RawComposerThread, workspaceID, workspaceFolder string) (*Conversation, error) {
	if thread == nil {
		return nil, fmt.Errorf("thread is nil")
	}

	files := newFileSet()
	threadContext := ExtractContext(thread.Context)
	if threadContext != nil {
		files.AddAll(threadContext.Files)
	}

	raws := thread.Messages()
	messages := make([]Message, 0, len(raws))
	for i, raw := range raws {
		bundle := ExtractContext(raw.Context)
		if bundle != nil {
			files.AddAll(bundle.Files)
		}

		id := raw.BubbleID
		if id == "" {
			id = fmt.Sprintf("%s-msg-%d", thread.ComposerID, i)
		}

		msg := Message{
			ID:           id,
			Role:         composerRole(raw.Type),
			Content:      raw.Content(),
			Timestamp:    raw.Timestamp,
			TimestampISO: formatTimestamp(raw.Timestamp),
			Context:      bundle,
		}
		if raw.BubbleID != "" {
			msg.Metadata = &MessageMetadata{SourceID: raw.BubbleID}
		}
		messages = append(messages, msg)
	}

	// A composer conversation has code context when it references any
	// file or the thread-level context carries a selection.
	hasCode := len(files.Paths()) > 0 ||
		(threadContext != nil && len(threadContext.CodeSelections) > 0)

	title := thread.Name
	if title == "" {
		title = untitledConversation
	}

	createdAt := thread.CreatedAt
	lastUpdatedAt := thread.LastUpdatedAt
	if lastUpdatedAt == 0 {
		lastUpdatedAt = createdAt
	}

	return &Conversation{
		ID:               thread.ComposerID,
		Type:             ConversationTypeComposer,
		Title:            title,
		Messages:         messages,
		CreatedAt:        createdAt,
		CreatedAtISO:     formatTimestamp(createdAt),
		LastUpdatedAt:    lastUpdatedAt,
		LastUpdatedAtISO: formatTimestamp(lastUpdatedAt),
		Workspace:        WorkspaceRef{ID: workspaceID, Folder: workspaceFolder},
		Summary:          ComputeSummary(messages, files.Paths(), hasCode),
	}, nil
}

// composerRole maps the numeric discriminant to a role. The mapping is
// a closed binary one: 1 means user, every other value is treated as
// assistant.
func composerRole(msgType int) string {
	if msgType == 1 {
		return RoleUser
	}
	return RoleAssistant
}
