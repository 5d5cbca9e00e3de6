package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/cursor-archive/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	conv := internal.CreateTestConversation("c1")
	envelope := internal.CreateTestEnvelope(*conv)

	var buf bytes.Buffer
	e := &MarkdownExporter{}
	if err := e.Export(envelope, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"# Cursor Conversation Export",
		"## Test Conversation",
		"**ID:** c1",
		"**Type:** composer",
		"**user:**",
		"**assistant:**",
		"Hello",
		"Hi there",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMarkdownExporter_FileReferences(t *testing.T) {
	conv := internal.CreateTestConversationWithMessages("c1", []internal.Message{
		{
			ID:      "m1",
			Role:    internal.RoleUser,
			Content: "look at this",
			Context: &internal.ContextBundle{Files: []string{"/src/main.go", "/src/util.go"}},
		},
	})

	var buf bytes.Buffer
	e := &MarkdownExporter{}
	if err := e.Export(internal.CreateTestEnvelope(*conv), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if !strings.Contains(buf.String(), "_Files: /src/main.go, /src/util.go_") {
		t.Errorf("output missing file references:\n%s", buf.String())
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "emphasis escaped",
			in:   "this is **bold** and __underlined__",
			want: `this is \*\*bold\*\* and \_\_underlined\_\_`,
		},
		{
			name: "code blocks untouched",
			in:   "```go\nx := **p\n```",
			want: "```go\nx := **p\n```",
		},
		{
			name: "plain text untouched",
			in:   "nothing special",
			want: "nothing special",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.in); got != tt.want {
				t.Errorf("escapeMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}
