// Package summarizer writes human-readable reports of render results.
package summarizer

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter turns a Summary into file contents.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a function to Formatter.
type FormatFunc func(summary *Summary) string

// Format implements Formatter.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// JSONFormatter renders an indented JSON document.
var JSONFormatter = FormatFunc(func(s *Summary) string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return string(data) + "\n"
})

// YAMLFormatter renders a YAML document.
var YAMLFormatter = FormatFunc(func(s *Summary) string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
})

// FormatterFor picks a formatter from the extension of path: .json and
// .yaml/.yml get structured output, everything else Markdown.
func FormatterFor(path string) Formatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormatter
	case ".yaml", ".yml":
		return YAMLFormatter
	}
	return NewMarkdownFormatter()
}
