package export

import (
	"io"

	"github.com/iksnae/cursor-archive/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the envelope as YAML.
type YAMLExporter struct{}

// Export writes the envelope to w.
func (e *YAMLExporter) Export(envelope *internal.ExportEnvelope, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(envelope)
}

// Extension returns the file extension for this format.
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
