package internal

import "time"

// Conversation types and message roles are closed sets. Normalization
// never emits a value outside of these.
const (
	ConversationTypeComposer = "composer"
	ConversationTypeChat     = "chat"

	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// untitledConversation is the title used when the raw record has none.
const untitledConversation = "Untitled Conversation"

// Conversation is the canonical, type-tagged representation produced by
// normalizing either source shape. Instances are built fresh on every
// export or lookup call and never persisted.
type Conversation struct {
	ID               string       `json:"id"`
	Type             string       `json:"type"` // "composer" or "chat"
	Title            string       `json:"title"`
	Messages         []Message    `json:"messages"`
	CreatedAt        int64        `json:"createdAt"`
	CreatedAtISO     string       `json:"createdAtISO"`
	LastUpdatedAt    int64        `json:"lastUpdatedAt"`
	LastUpdatedAtISO string       `json:"lastUpdatedAtISO"`
	Workspace        WorkspaceRef `json:"workspace"`
	Summary          Summary      `json:"summary"`
}

// WorkspaceRef identifies the workspace a conversation came from.
type WorkspaceRef struct {
	ID     string `json:"id"`
	Folder string `json:"folder,omitempty"`
}

// Message is a normalized conversation turn.
type Message struct {
	ID           string           `json:"id"`
	Role         string           `json:"role"` // "user" or "assistant"
	Content      string           `json:"content"`
	Timestamp    int64            `json:"timestamp"`
	TimestampISO string           `json:"timestampISO"`
	Context      *ContextBundle   `json:"context,omitempty"`
	Metadata     *MessageMetadata `json:"metadata,omitempty"`
}

// MessageMetadata carries optional provenance for a message.
type MessageMetadata struct {
	Model    string `json:"model,omitempty"`
	SourceID string `json:"sourceId,omitempty"`
}

// ContextBundle groups the references attached to a message or thread.
// Files are unique; folders are listed exactly as the source carries
// them.
type ContextBundle struct {
	CodeSelections []string    `json:"codeSelections,omitempty"`
	Files          []string    `json:"files,omitempty"`
	Folders        []string    `json:"folders,omitempty"`
	Docs           []DocRef    `json:"docs,omitempty"`
	Commits        []CommitRef `json:"commits,omitempty"`
}

// IsEmpty reports whether the bundle carries no references at all.
func (b *ContextBundle) IsEmpty() bool {
	if b == nil {
		return true
	}
	return len(b.CodeSelections) == 0 && len(b.Files) == 0 &&
		len(b.Folders) == 0 && len(b.Docs) == 0 && len(b.Commits) == 0
}

// DocRef is a referenced documentation entry.
type DocRef struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// CommitRef is a referenced git commit.
type CommitRef struct {
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}

// Summary holds aggregate statistics derived from a conversation's
// message list. MessageCount is always the true length of Messages.
type Summary struct {
	MessageCount          int      `json:"messageCount"`
	UserMessageCount      int      `json:"userMessageCount"`
	AssistantMessageCount int      `json:"assistantMessageCount"`
	HasCodeContext        bool     `json:"hasCodeContext"`
	FilesReferenced       []string `json:"filesReferenced"`
	AverageMessageLength  int      `json:"averageMessageLength"`
}

// ExportEnvelope is the top-level wrapper returned by a bulk export.
type ExportEnvelope struct {
	ExportedAt         int64          `json:"exportedAt"`
	ExportedAtISO      string         `json:"exportedAtISO"`
	TotalConversations int            `json:"totalConversations"`
	TotalMessages      int            `json:"totalMessages"`
	Conversations      []Conversation `json:"conversations"`
	Metadata           ExportMetadata `json:"metadata"`
}

// ExportMetadata identifies the export format and the individual run.
type ExportMetadata struct {
	Version     string `json:"version"`
	Source      string `json:"source"`
	Description string `json:"description"`
	ExportID    string `json:"exportId"`
}

// formatTimestamp formats a Unix timestamp (milliseconds) to ISO8601.
func formatTimestamp(ts int64) string {
	t := time.Unix(0, ts*int64(time.Millisecond))
	return t.Format(time.RFC3339)
}
