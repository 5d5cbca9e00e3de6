package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/cursor-archive/internal"
)

// JSONExporter writes the full envelope as pretty-printed JSON. This is
// the canonical interchange format; the semantic search service indexes
// exactly this shape.
type JSONExporter struct{}

// Export writes the envelope to w.
func (e *JSONExporter) Export(envelope *internal.ExportEnvelope, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(envelope)
}

// Extension returns the file extension for this format.
func (e *JSONExporter) Extension() string {
	return "json"
}
