package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/cursor-archive/internal"
)

// JSONLExporter writes one conversation per line, for streaming
// consumers that don't want to hold the whole envelope in memory.
type JSONLExporter struct{}

// Export writes each conversation as a single JSON line.
func (e *JSONLExporter) Export(envelope *internal.ExportEnvelope, w io.Writer) error {
	enc := json.NewEncoder(w)

	for i := range envelope.Conversations {
		if err := enc.Encode(&envelope.Conversations[i]); err != nil {
			return fmt.Errorf("failed to encode conversation: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format.
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
