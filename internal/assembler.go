package internal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Fixed metadata identifying the export format.
const (
	exportFormatVersion = "1.0"
	exportSource        = "cursor-archive"
	exportDescription   = "Canonical export of Cursor composer threads and chat tabs"
)

// ExportOptions controls which source shapes a bulk export includes.
type ExportOptions struct {
	IncludeComposers bool
	IncludeChats     bool
}

// DefaultExportOptions includes both shapes.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{IncludeComposers: true, IncludeChats: true}
}

// ExportAssembler walks every workspace, normalizes its conversations
// and wraps the merged result in an export envelope. A workspace whose
// store cannot be opened or parsed is logged and skipped; the export as
// a whole succeeds as long as workspace enumeration does.
type ExportAssembler struct {
	basePath string
	composer *ComposerNormalizer
	chat     *ChatNormalizer
	dedup    *Deduplicator
}

// NewExportAssembler creates an assembler rooted at the given storage
// base path.
func NewExportAssembler(basePath string) *ExportAssembler {
	return &ExportAssembler{
		basePath: basePath,
		composer: NewComposerNormalizer(),
		chat:     NewChatNormalizer(),
		dedup:    NewDeduplicator(),
	}
}

// Export assembles the full export envelope. The context bounds the
// whole run; cancellation between workspaces discards the in-flight
// attempt without leaving partial state behind.
func (a *ExportAssembler) Export(ctx context.Context, opts ExportOptions) (*ExportEnvelope, error) {
	workspaces, err := ListWorkspaces(a.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate workspaces: %w", err)
	}

	conversations := make([]Conversation, 0)
	for _, ws := range workspaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		convs, err := a.collectWorkspace(ws, opts)
		if err != nil {
			LogWarn("skipping workspace %s: %v", ws.ID, err)
			continue
		}
		conversations = append(conversations, convs...)
	}

	conversations = a.dedup.Deduplicate(conversations)

	// Stable sort: conversations with equal lastUpdatedAt keep their
	// enumeration order.
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastUpdatedAt > conversations[j].LastUpdatedAt
	})

	totalMessages := 0
	for _, conv := range conversations {
		totalMessages += conv.Summary.MessageCount
	}

	now := time.Now()
	return &ExportEnvelope{
		ExportedAt:         now.UnixMilli(),
		ExportedAtISO:      now.Format(time.RFC3339),
		TotalConversations: len(conversations),
		TotalMessages:      totalMessages,
		Conversations:      conversations,
		Metadata: ExportMetadata{
			Version:     exportFormatVersion,
			Source:      exportSource,
			Description: exportDescription,
			ExportID:    uuid.NewString(),
		},
	}, nil
}

// collectWorkspace normalizes one workspace's conversations. The store
// handle is scoped to this call and released on every exit path.
func (a *ExportAssembler) collectWorkspace(ws *WorkspaceInfo, opts ExportOptions) ([]Conversation, error) {
	if !ws.HasStore() {
		return nil, &NotFoundError{Resource: "store", WorkspaceID: ws.ID}
	}

	store, err := OpenStore(ws.StorePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	var conversations []Conversation

	if opts.IncludeComposers {
		threads, err := store.LoadComposerThreads()
		if err != nil {
			return nil, err
		}
		for i := range threads {
			conv, err := a.composer.Normalize(&threads[i], ws.ID, ws.Folder)
			if err != nil {
				LogWarn("failed to normalize thread %s: %v", threads[i].ComposerID, err)
				continue
			}
			conversations = append(conversations, *conv)
		}
	}

	if opts.IncludeChats {
		tabs, err := store.LoadChatTabs()
		if err != nil {
			return nil, err
		}
		for i := range tabs {
			conv, err := a.chat.Normalize(&tabs[i], ws.ID, ws.Folder)
			if err != nil {
				LogWarn("failed to normalize chat tab %s: %v", tabs[i].TabID, err)
				continue
			}
			conversations = append(conversations, *conv)
		}
	}

	return conversations, nil
}
