package internal

// LookupResult wraps a single normalized conversation with the
// metadata that located it.
type LookupResult struct {
	Success      bool           `json:"success"`
	Conversation *Conversation  `json:"conversation"`
	Metadata     LookupMetadata `json:"metadata"`
}

// LookupMetadata echoes the parameters a lookup was performed with.
type LookupMetadata struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	WorkspaceID string `json:"workspaceId"`
}

// ConversationLookup locates and normalizes exactly one raw record
// without processing the rest of the workspace.
type ConversationLookup struct {
	basePath string
	composer *ComposerNormalizer
	chat     *ChatNormalizer
}

// NewConversationLookup creates a lookup rooted at the given storage
// base path.
func NewConversationLookup(basePath string) *ConversationLookup {
	return &ConversationLookup{
		basePath: basePath,
		composer: NewComposerNormalizer(),
		chat:     NewChatNormalizer(),
	}
}

// Lookup finds the conversation with the given id of the given type in
// the given workspace. The type is a strict partition: an id that only
// exists under the other type is not found. Unlike bulk export, any
// read or parse failure here is terminal.
func (l *ConversationLookup) Lookup(workspaceID, convType, id string) (*LookupResult, error) {
	if workspaceID == "" {
		return nil, &ValidationError{Param: "workspaceId", Reason: "workspaceId is required"}
	}
	if convType == "" {
		return nil, &ValidationError{Param: "type", Reason: "type is required"}
	}
	if convType != ConversationTypeChat && convType != ConversationTypeComposer {
		return nil, &ValidationError{Param: "type", Reason: `type must be "chat" or "composer"`}
	}
	if id == "" {
		return nil, &ValidationError{Param: "id", Reason: "id is required"}
	}

	ws, err := FindWorkspace(l.basePath, workspaceID)
	if err != nil {
		return nil, err
	}
	if !ws.HasStore() {
		return nil, &NotFoundError{Resource: "store", WorkspaceID: workspaceID}
	}

	store, err := OpenStore(ws.StorePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	var conv *Conversation
	switch convType {
	case ConversationTypeComposer:
		threads, err := store.LoadComposerThreads()
		if err != nil {
			return nil, err
		}
		for i := range threads {
			if threads[i].ComposerID == id {
				conv, err = l.composer.Normalize(&threads[i], ws.ID, ws.Folder)
				if err != nil {
					return nil, err
				}
				break
			}
		}
	case ConversationTypeChat:
		tabs, err := store.LoadChatTabs()
		if err != nil {
			return nil, err
		}
		for i := range tabs {
			if tabs[i].TabID == id {
				conv, err = l.chat.Normalize(&tabs[i], ws.ID, ws.Folder)
				if err != nil {
					return nil, err
				}
				break
			}
		}
	}

	if conv == nil {
		return nil, &NotFoundError{Resource: "conversation", ID: id, Type: convType, WorkspaceID: workspaceID}
	}

	return &LookupResult{
		Success:      true,
		Conversation: conv,
		Metadata:     LookupMetadata{ID: id, Type: convType, WorkspaceID: workspaceID},
	}, nil
}
