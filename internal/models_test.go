package internal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseComposerCollection(t *testing.T) {
	data := []byte(`{
		"allComposers": [
			{"composerId": "c1", "name": "First", "createdAt": 1000},
			{"composerId": "c2"}
		]
	}`)

	threads, err := ParseComposerCollection(data)
	if err != nil {
		t.Fatalf("ParseComposerCollection() error = %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("got %d threads, want 2", len(threads))
	}
	if threads[0].ComposerID != "c1" || threads[0].Name != "First" {
		t.Errorf("first thread = %+v", threads[0])
	}
}

func TestParseComposerCollection_Invalid(t *testing.T) {
	if _, err := ParseComposerCollection([]byte("not json")); err == nil {
		t.Error("ParseComposerCollection(invalid) succeeded, want error")
	}
}

func TestParseChatTabs(t *testing.T) {
	data := []byte(`{
		"tabs": [
			{"tabId": "t1", "chatTitle": "Chat", "lastSendTime": 2000,
			 "bubbles": [{"type": "user", "text": "hi"}]}
		]
	}`)

	tabs, err := ParseChatTabs(data)
	if err != nil {
		t.Fatalf("ParseChatTabs() error = %v", err)
	}
	if len(tabs) != 1 {
		t.Fatalf("got %d tabs, want 1", len(tabs))
	}
	if tabs[0].TabID != "t1" || len(tabs[0].Bubbles) != 1 {
		t.Errorf("tab = %+v", tabs[0])
	}
}

func TestParseChatTabs_Invalid(t *testing.T) {
	if _, err := ParseChatTabs([]byte("{")); err == nil {
		t.Error("ParseChatTabs(invalid) succeeded, want error")
	}
}

func TestRawComposerThread_Messages(t *testing.T) {
	tests := []struct {
		name         string
		conversation string
		want         int
	}{
		{"absent list", "", 0},
		{"empty array", "[]", 0},
		{"proper array", `[{"type": 1, "text": "hi"}, {"type": 2, "text": "yo"}]`, 2},
		{"object instead of array", `{"weird": true}`, 0},
		{"scalar", `42`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thread := RawComposerThread{ComposerID: "c1"}
			if tt.conversation != "" {
				thread.Conversation = json.RawMessage(tt.conversation)
			}
			if got := thread.Messages(); len(got) != tt.want {
				t.Errorf("Messages() returned %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRawComposerThread_Times(t *testing.T) {
	thread := RawComposerThread{CreatedAt: 1700000000000}
	if got := thread.GetCreatedAt(); got != time.Unix(0, 1700000000000*int64(time.Millisecond)) {
		t.Errorf("GetCreatedAt() = %v", got)
	}
	// LastUpdatedAt falls back to CreatedAt when unset.
	if got := thread.GetLastUpdatedAt(); !got.Equal(thread.GetCreatedAt()) {
		t.Errorf("GetLastUpdatedAt() = %v, want createdAt fallback", got)
	}

	var empty RawComposerThread
	if !empty.GetCreatedAt().IsZero() {
		t.Error("GetCreatedAt() on zero thread is not zero time")
	}
}
