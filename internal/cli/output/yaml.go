package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes YAML documents.
type YAMLFormatter struct{}

// Format encodes data as a single YAML document.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
