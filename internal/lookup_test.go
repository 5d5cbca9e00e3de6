package internal

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/iksnae/cursor-archive/testutil"
)

func TestConversationLookup_Validation(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	l := NewConversationLookup(base)

	tests := []struct {
		name        string
		workspaceID string
		convType    string
		id          string
		wantParam   string
	}{
		{"missing workspace", "", "chat", "c1", "workspaceId"},
		{"missing type", "ws1", "", "c1", "type"},
		{"invalid type", "ws1", "thread", "c1", "type"},
		{"missing id", "ws1", "chat", "", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Lookup(tt.workspaceID, tt.convType, tt.id)
			if err == nil {
				t.Fatal("Lookup() succeeded, want validation error")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %T, want *ValidationError", err)
			}
			if validationErr.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", validationErr.Param, tt.wantParam)
			}
		})
	}
}

func TestConversationLookup_Found(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	seedFullWorkspace(t, base, "ws1")

	l := NewConversationLookup(base)

	result, err := l.Lookup("ws1", ConversationTypeComposer, "composer1")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !result.Success {
		t.Error("Success = false")
	}
	if result.Conversation == nil || result.Conversation.ID != "composer1" {
		t.Fatalf("Conversation = %+v", result.Conversation)
	}
	if result.Conversation.Type != ConversationTypeComposer {
		t.Errorf("Type = %q", result.Conversation.Type)
	}
	wantMeta := LookupMetadata{ID: "composer1", Type: "composer", WorkspaceID: "ws1"}
	if result.Metadata != wantMeta {
		t.Errorf("Metadata = %+v, want %+v", result.Metadata, wantMeta)
	}

	chatResult, err := l.Lookup("ws1", ConversationTypeChat, "tab1")
	if err != nil {
		t.Fatalf("Lookup(chat) error = %v", err)
	}
	if chatResult.Conversation.ID != "tab1" || chatResult.Conversation.Type != ConversationTypeChat {
		t.Errorf("Conversation = %+v", chatResult.Conversation)
	}
}

func TestConversationLookup_TypeIsStrictPartition(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	seedFullWorkspace(t, base, "ws1")

	l := NewConversationLookup(base)

	// composer1 exists, but only as a composer thread.
	_, err := l.Lookup("ws1", ConversationTypeChat, "composer1")
	if err == nil {
		t.Fatal("Lookup() with wrong type succeeded")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %T, want *NotFoundError", err)
	}
	if notFound.Resource != "conversation" {
		t.Errorf("Resource = %q, want conversation", notFound.Resource)
	}
}

func TestConversationLookup_NotFound(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	seedFullWorkspace(t, base, "ws1")
	testutil.AddWorkspace(t, base, "storeless", "")

	l := NewConversationLookup(base)

	tests := []struct {
		name         string
		workspaceID  string
		convType     string
		id           string
		wantResource string
	}{
		{"unknown workspace", "nope", "chat", "tab1", "workspace"},
		{"workspace without store", "storeless", "chat", "tab1", "store"},
		{"unknown conversation", "ws1", "composer", "ghost", "conversation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Lookup(tt.workspaceID, tt.convType, tt.id)
			if err == nil {
				t.Fatal("Lookup() succeeded, want not found")
			}
			var notFound *NotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("error = %T, want *NotFoundError", err)
			}
			if notFound.Resource != tt.wantResource {
				t.Errorf("Resource = %q, want %q", notFound.Resource, tt.wantResource)
			}
		})
	}
}

func TestConversationLookup_MatchesExport(t *testing.T) {
	base := testutil.CreateStorageDir(t)
	seedFullWorkspace(t, base, "ws1")

	envelope, err := NewExportAssembler(base).Export(context.Background(), DefaultExportOptions())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	l := NewConversationLookup(base)
	for _, exported := range envelope.Conversations {
		result, err := l.Lookup(exported.Workspace.ID, exported.Type, exported.ID)
		if err != nil {
			t.Fatalf("Lookup(%s/%s) error = %v", exported.Type, exported.ID, err)
		}
		if !reflect.DeepEqual(*result.Conversation, exported) {
			t.Errorf("lookup of %s differs from its exported record\nlookup: %+v\nexport: %+v",
				exported.ID, *result.Conversation, exported)
		}
	}
}
