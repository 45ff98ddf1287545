package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a structured output format for listing commands.
type Format string

const (
	// FormatTable renders a styled table.
	FormatTable Format = "table"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"

	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
)

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// Valid returns true if the format is known.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format string case-insensitively.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(s))
	return f, f.Valid()
}

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatYAML), string(FormatJSON)}
}

// WriteStructured encodes v to w as YAML or JSON.
func WriteStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}
