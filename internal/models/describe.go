package models

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// DescriptionJSON renders a table description the way DescribeTable returns it.
func DescriptionJSON(desc TableDescription) (string, error) {
	return marshalIndent(desc)
}

// DescriptionYAML renders a table description as a YAML document.
func DescriptionYAML(desc TableDescription) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(desc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
