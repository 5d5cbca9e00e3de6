package testutil

import (
	"encoding/json"
	"testing"
)

// SampleComposerData is a composer collection with two threads: one
// with messages and context, one empty.
const SampleComposerData = `{
	"allComposers": [
		{
			"composerId": "composer1",
			"name": "Fix the build",
			"createdAt": 1000,
			"lastUpdatedAt": 2000,
			"conversation": [
				{
					"bubbleId": "b1",
					"type": 1,
					"text": "Hi",
					"timestamp": 100,
					"context": {
						"fileSelections": [{"uri": {"fsPath": "/src/main.go"}}],
						"selections": [{"text": "func main() {}"}]
					}
				},
				{
					"bubbleId": "b2",
					"type": 2,
					"text": "Hello",
					"timestamp": 200
				}
			]
		},
		{
			"composerId": "composer2",
			"createdAt": 5000,
			"lastUpdatedAt": 6000
		}
	]
}`

// SampleChatData is a chat collection with one tab of three bubbles,
// the middle one carrying an explicit timestamp.
const SampleChatData = `{
	"tabs": [
		{
			"tabId": "tab1",
			"chatTitle": "Debugging session",
			"lastSendTime": 1000,
			"bubbles": [
				{"type": "user", "text": "What does this error mean?"},
				{"type": "ai", "text": "It means the pointer is nil.", "timestamp": 5000, "modelType": "gpt-4"},
				{"type": "user", "text": "How do I fix it?"}
			]
		}
	]
}`

// ComposerData marshals threads into the persisted collection shape.
func ComposerData(t *testing.T, threads ...map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"allComposers": threads})
	if err != nil {
		t.Fatalf("Failed to marshal composer data: %v", err)
	}
	return string(data)
}

// ChatData marshals tabs into the persisted collection shape.
func ChatData(t *testing.T, tabs ...map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"tabs": tabs})
	if err != nil {
		t.Fatalf("Failed to marshal chat data: %v", err)
	}
	return string(data)
}
