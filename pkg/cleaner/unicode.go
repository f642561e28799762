package cleaner

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnicodeCleaner composes text to NFC and drops invisible characters left
// behind by OCR and e-book converters, so that running headers typed with
// decomposed diacritics still compare equal.
type UnicodeCleaner struct{}

// NewUnicode creates a new Unicode normalizing cleaner.
func NewUnicode() *UnicodeCleaner {
	return &UnicodeCleaner{}
}

// Clean returns the NFC form of text without zero-width characters,
// soft hyphens or byte order marks.
func (c *UnicodeCleaner) Clean(text string) (string, error) {
	text = strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff', '\u00ad':
			return -1
		}
		return r
	}, text)
	return norm.NFC.String(text), nil
}

// Name returns the cleaner type.
func (c *UnicodeCleaner) Name() string {
	return "unicode"
}
