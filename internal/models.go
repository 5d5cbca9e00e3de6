package internal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Raw shapes as Cursor persists them in a workspace's state database.
// Two independently evolved formats exist side by side: composer
// threads under one key, chat tabs under another. Field names and
// timestamp semantics differ between them; the normalizers reconcile
// the two into the canonical Conversation shape.

// ComposerCollection is the value stored under the composer data key.
type ComposerCollection struct {
	AllComposers []RawComposerThread `json:"allComposers"`
}

// RawComposerThread is one open-ended assistant thread. The message
// list is kept as raw JSON because older records store it in shapes
// that are not proper arrays; Messages decodes it leniently.
type RawComposerThread struct {
	ComposerID    string          `json:"composerId"`
	Name          string          `json:"name,omitempty"`
	CreatedAt     int64           `json:"createdAt,omitempty"`
	LastUpdatedAt int64           `json:"lastUpdatedAt,omitempty"`
	Conversation  json.RawMessage `json:"conversation,omitempty"`
	Context       *RawContext     `json:"context,omitempty"`
}

// RawThreadMessage is one message inside a composer thread. Some
// records carry the content only as a serialized rich text tree with an
// empty text field.
type RawThreadMessage struct {
	BubbleID  string      `json:"bubbleId,omitempty"`
	Type      int         `json:"type"` // 1=user, anything else=assistant
	Text      string      `json:"text,omitempty"`
	RichText  string      `json:"richText,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
	Context   *RawContext `json:"context,omitempty"`
}

// Content returns the message text, recovering it from the rich text
// payload when the plain field is empty.
func (m *RawThreadMessage) Content() string {
	if m.Text != "" {
		return m.Text
	}
	return ExtractRichText(m.RichText)
}

// Messages decodes the thread's message list. An absent or malformed
// list yields an empty slice, never an error.
func (t *RawComposerThread) Messages() []RawThreadMessage {
	if len(t.Conversation) == 0 {
		return nil
	}
	var msgs []RawThreadMessage
	if err := json.Unmarshal(t.Conversation, &msgs); err != nil {
		LogDebug("thread %s: unreadable conversation list, treating as empty: %v", t.ComposerID, err)
		return nil
	}
	return msgs
}

// GetCreatedAt returns the creation time, zero when unset.
func (t *RawComposerThread) GetCreatedAt() time.Time {
	if t.CreatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(0, t.CreatedAt*int64(time.Millisecond))
}

// GetLastUpdatedAt returns the last-update time, falling back to the
// creation time when unset.
func (t *RawComposerThread) GetLastUpdatedAt() time.Time {
	if t.LastUpdatedAt == 0 {
		return t.GetCreatedAt()
	}
	return time.Unix(0, t.LastUpdatedAt*int64(time.Millisecond))
}

// RawContext is the context sub-structure attached to a thread or to
// an individual message.
type RawContext struct {
	Selections       []RawSelection       `json:"selections,omitempty"`
	FileSelections   []RawFileSelection   `json:"fileSelections,omitempty"`
	FolderSelections []RawFolderSelection `json:"folderSelections,omitempty"`
	SelectedDocs     []RawDoc             `json:"selectedDocs,omitempty"`
	SelectedCommits  []RawCommit          `json:"selectedCommits,omitempty"`
}

// RawSelection is an inline code selection.
type RawSelection struct {
	Text string `json:"text,omitempty"`
}

// RawFileSelection references a file, by URI or bare name depending on
// the record's vintage.
type RawFileSelection struct {
	URI      *RawURI `json:"uri,omitempty"`
	FileName string  `json:"fileName,omitempty"`
}

// RawURI carries the two path spellings Cursor has used over time.
type RawURI struct {
	FsPath string `json:"fsPath,omitempty"`
	Path   string `json:"path,omitempty"`
}

// RawFolderSelection references a folder.
type RawFolderSelection struct {
	RelativePath string `json:"relativePath,omitempty"`
	Name         string `json:"name,omitempty"`
}

// RawDoc is a referenced documentation entry.
type RawDoc struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
}

// RawCommit is a referenced commit; the hash field name varies.
type RawCommit struct {
	SHA     string `json:"sha,omitempty"`
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}

// ChatCollection is the value stored under the chat tabs key.
type ChatCollection struct {
	Tabs []RawChatTab `json:"tabs"`
}

// RawChatTab is one linear chat, anchored by a single timestamp.
type RawChatTab struct {
	TabID        string          `json:"tabId"`
	ChatTitle    string          `json:"chatTitle,omitempty"`
	LastSendTime int64           `json:"lastSendTime,omitempty"`
	Bubbles      []RawChatBubble `json:"bubbles,omitempty"`
}

// RawChatBubble is one turn within a chat tab. The timestamp is
// optional; bubbles without one get a synthesized timestamp during
// normalization.
type RawChatBubble struct {
	Type       string         `json:"type"` // "ai"=assistant, anything else=user
	Text       string         `json:"text,omitempty"`
	Timestamp  int64          `json:"timestamp,omitempty"`
	ModelType  string         `json:"modelType,omitempty"`
	Selections []RawSelection `json:"selections,omitempty"`
}

// ParseComposerCollection parses the composer data blob.
func ParseComposerCollection(value []byte) ([]RawComposerThread, error) {
	var collection ComposerCollection
	if err := json.Unmarshal(value, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse composer data: %w", err)
	}
	return collection.AllComposers, nil
}

// ParseChatTabs parses the chat tabs blob.
func ParseChatTabs(value []byte) ([]RawChatTab, error) {
	var collection ChatCollection
	if err := json.Unmarshal(value, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse chat data: %w", err)
	}
	return collection.Tabs, nil
}
