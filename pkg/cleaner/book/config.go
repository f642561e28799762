// Package book provides a heuristic cleaner for digitized book text.
// It removes page numbers, running headers and footers, separators,
// ISBN and publisher boilerplate, and trailing bibliography sections,
// then normalizes blank-line spacing.
package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default heuristic thresholds.
const (
	DefaultMaxLineLength               = 50
	DefaultMinRepeat                   = 3
	DefaultBibliographyMinOffset       = 0.5
	DefaultBibliographyConfidentOffset = 0.8
	DefaultTOCMaxSpan                  = 300
)

// Config defines the heuristic thresholds of the book cleaner.
type Config struct {
	// === Running headers/footers ===

	// MaxLineLength is the longest trimmed line (in runes) considered a
	// header/footer candidate.
	// Default: 50.
	MaxLineLength int `json:"max_line_length" yaml:"max_line_length" mapstructure:"max_line_length" validate:"gte=1"`

	// MinRepeat is the number of identical occurrences at which a short line
	// is treated as a running header/footer.
	// Default: 3.
	MinRepeat int `json:"min_repeat" yaml:"min_repeat" mapstructure:"min_repeat" validate:"gte=2"`

	// === Back matter ===

	// BibliographyMinOffset is the fraction of the document before which
	// bibliography headings are ignored.
	// Default: 0.5.
	BibliographyMinOffset float64 `json:"bibliography_min_offset" yaml:"bibliography_min_offset" mapstructure:"bibliography_min_offset" validate:"gte=0,lte=1"`

	// VerifyCitations requires headings found before BibliographyConfidentOffset
	// to be followed by citation-like lines.
	VerifyCitations bool `json:"verify_citations" yaml:"verify_citations" mapstructure:"verify_citations"`

	// BibliographyConfidentOffset is the fraction after which a heading is
	// accepted without citation evidence. Only used with VerifyCitations.
	// Default: 0.8.
	BibliographyConfidentOffset float64 `json:"bibliography_confident_offset" yaml:"bibliography_confident_offset" mapstructure:"bibliography_confident_offset" validate:"gte=0,lte=1,gtefield=BibliographyMinOffset"`

	// === Front matter ===

	// RemoveTOC drops a detected table of contents.
	RemoveTOC bool `json:"remove_toc" yaml:"remove_toc" mapstructure:"remove_toc"`

	// TOCMaxSpan caps the number of lines a table of contents may cover
	// when no explicit end marker is found.
	// Default: 300.
	TOCMaxSpan int `json:"toc_max_span" yaml:"toc_max_span" mapstructure:"toc_max_span" validate:"gte=1"`
}

// DefaultConfig returns conservative defaults that suit most digitized books.
func DefaultConfig() *Config {
	return &Config{
		MaxLineLength:               DefaultMaxLineLength,
		MinRepeat:                   DefaultMinRepeat,
		BibliographyMinOffset:       DefaultBibliographyMinOffset,
		VerifyCitations:             false,
		BibliographyConfidentOffset: DefaultBibliographyConfidentOffset,
		RemoveTOC:                   false,
		TOCMaxSpan:                  DefaultTOCMaxSpan,
	}
}

// PresetThorough returns a config that also strips the table of contents
// and only truncates mid-book headings backed by citations.
func PresetThorough() *Config {
	cfg := DefaultConfig()
	cfg.RemoveTOC = true
	cfg.VerifyCitations = true
	cfg.BibliographyMinOffset = 0.3
	return cfg
}

// FieldError describes a single invalid config field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// ConfigError is returned by Validate when one or more fields are invalid.
type ConfigError struct {
	Fields []FieldError
}

func (e *ConfigError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s %s (got %v)", f.Field, f.Message, f.Value)
	}
	return "invalid book cleaner config: " + strings.Join(parts, "; ")
}

var validate = validator.New()

// Validate checks the thresholds for out-of-range values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	cfgErr := &ConfigError{}
	for _, e := range verrs {
		cfgErr.Fields = append(cfgErr.Fields, FieldError{
			Field:   e.Field(),
			Message: formatValidationError(e),
			Value:   e.Value(),
		})
	}
	return cfgErr
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s", e.Param())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
