// Package output renders cleaning reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents report format types.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

// Writer renders a report to an underlying io.Writer.
type Writer interface {
	// Write outputs a single report.
	Write(r *Report) error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	indent int
}

// WithIndent sets the indentation width for structured formats.
func WithIndent(n int) WriterOption {
	return func(c *writerConfig) {
		c.indent = n
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		indent: 2,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatText:
		return &TextWriter{w: w}, nil
	case FormatJSON:
		return &JSONWriter{w: w, indent: strings.Repeat(" ", cfg.indent)}, nil
	case FormatYAML:
		return &YAMLWriter{w: w, indent: cfg.indent}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// JSONWriter writes reports as indented JSON.
type JSONWriter struct {
	w      io.Writer
	indent string
}

// Write encodes the report as a JSON document.
func (w *JSONWriter) Write(r *Report) error {
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", w.indent)
	return enc.Encode(r)
}

// YAMLWriter writes reports as YAML.
type YAMLWriter struct {
	w      io.Writer
	indent int
}

// Write encodes the report as a YAML document.
func (w *YAMLWriter) Write(r *Report) error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(w.indent)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// TextWriter writes a human-readable summary.
type TextWriter struct {
	w io.Writer
}

// Write prints the report summary.
func (w *TextWriter) Write(r *Report) error {
	_, err := io.WriteString(w.w, r.String())
	return err
}
