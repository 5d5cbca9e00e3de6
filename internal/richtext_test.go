package internal

import (
	"testing"
)

func TestExtractRichText(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "empty payload",
			json: "",
			want: "",
		},
		{
			name: "invalid json",
			json: "{not json",
			want: "",
		},
		{
			name: "single paragraph",
			json: `{"root": {"type": "root", "children": [
				{"type": "paragraph", "children": [
					{"type": "text", "text": "Fix the failing test"}
				]}
			]}}`,
			want: "Fix the failing test",
		},
		{
			name: "multiple paragraphs become lines",
			json: `{"root": {"type": "root", "children": [
				{"type": "paragraph", "children": [{"type": "text", "text": "first"}]},
				{"type": "paragraph", "children": [{"type": "text", "text": "second"}]}
			]}}`,
			want: "first\nsecond",
		},
		{
			name: "code node becomes fenced block",
			json: `{"root": {"type": "root", "children": [
				{"type": "paragraph", "children": [{"type": "text", "text": "try this"}]},
				{"type": "code", "children": [{"type": "text", "text": "x := 1"}]}
			]}}`,
			want: "try this\n\n```\nx := 1\n```",
		},
		{
			name: "unknown node types pass their text through",
			json: `{"root": {"type": "root", "children": [
				{"type": "mention", "text": "@file.go"}
			]}}`,
			want: "@file.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractRichText(tt.json); got != tt.want {
				t.Errorf("ExtractRichText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawThreadMessage_Content(t *testing.T) {
	plain := RawThreadMessage{Text: "hello"}
	if got := plain.Content(); got != "hello" {
		t.Errorf("Content() = %q, want plain text", got)
	}

	rich := RawThreadMessage{
		RichText: `{"root": {"type": "root", "children": [
			{"type": "paragraph", "children": [{"type": "text", "text": "from rich text"}]}
		]}}`,
	}
	if got := rich.Content(); got != "from rich text" {
		t.Errorf("Content() = %q, want rich text fallback", got)
	}

	both := RawThreadMessage{Text: "plain wins", RichText: `{"root": {"children": []}}`}
	if got := both.Content(); got != "plain wins" {
		t.Errorf("Content() = %q, want plain text preferred", got)
	}
}
