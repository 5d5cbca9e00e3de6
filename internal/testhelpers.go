package internal

// Shared builders for tests in this package and in internal/export.

// CreateTestConversation builds a small composer conversation with two
// messages.
func CreateTestConversation(id string) *Conversation {
	return CreateTestConversationWithMessages(id, []Message{
		{
			ID:           id + "-msg-0",
			Role:         RoleUser,
			Content:      "Hello",
			Timestamp:    1000,
			TimestampISO: formatTimestamp(1000),
		},
		{
			ID:           id + "-msg-1",
			Role:         RoleAssistant,
			Content:      "Hi there",
			Timestamp:    2000,
			TimestampISO: formatTimestamp(2000),
		},
	})
}

// CreateTestConversationWithMessages builds a composer conversation
// around the given messages.
func CreateTestConversationWithMessages(id string, messages []Message) *Conversation {
	return &Conversation{
		ID:               id,
		Type:             ConversationTypeComposer,
		Title:            "Test Conversation",
		Messages:         messages,
		CreatedAt:        1000,
		CreatedAtISO:     formatTimestamp(1000),
		LastUpdatedAt:    2000,
		LastUpdatedAtISO: formatTimestamp(2000),
		Workspace:        WorkspaceRef{ID: "ws1", Folder: "/home/user/project"},
		Summary:          ComputeSummary(messages, nil, false),
	}
}

// CreateTestEnvelope wraps conversations in an export envelope with
// consistent totals.
func CreateTestEnvelope(conversations ...Conversation) *ExportEnvelope {
	totalMessages := 0
	for _, conv := range conversations {
		totalMessages += conv.Summary.MessageCount
	}
	if conversations == nil {
		conversations = []Conversation{}
	}
	return &ExportEnvelope{
		ExportedAt:         3000,
		ExportedAtISO:      formatTimestamp(3000),
		TotalConversations: len(conversations),
		TotalMessages:      totalMessages,
		Conversations:      conversations,
		Metadata: ExportMetadata{
			Version:     exportFormatVersion,
			Source:      exportSource,
			Description: exportDescription,
			ExportID:    "test-export",
		},
	}
}
