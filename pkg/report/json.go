package report

import (
	"encoding/json"
	"io"
)

// JSONReporter writes a Summary as a JSON document.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Report encodes summary followed by a newline.
func (r *JSONReporter) Report(w io.Writer, summary Summary) error {
	enc := json.NewEncoder(w)
	if r.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(summary)
}
