package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes indented JSON.
type JSONFormatter struct{}

// Format encodes data as JSON with two-space indentation.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}
