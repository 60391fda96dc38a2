package cmd

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML writes v as YAML.
func outputYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// joinComma joins values with ", " for compact text output.
func joinComma(values []string) string {
	return strings.Join(values, ", ")
}
