package book

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPageNumber = 1
	maxPageNumber = 99999

	minSeparatorRunes = 3
)

// pageNumberRe matches a bare or decorated page number. Exactly one capture
// group is non-empty on a match.
var pageNumberRe = regexp.MustCompile(`(?i)^(?:` +
	`[-–—]\s*(\d{1,5})\s*[-–—]` + // - 12 -
	`|\[\s*(\d{1,5})\s*\]` + // [12]
	`|\(\s*(\d{1,5})\s*\)` + // (12)
	`|(?:page|pg\.?|p\.|strona|str\.)\s*(\d{1,5})(?:\s+(?:of|z)\s+\d{1,5})?` + // Page 12 of 300
	`|(\d{1,5})` +
	`)$`)

// boilerplateRe matches publisher and copyright lines by their opening words.
var boilerplateRe = regexp.MustCompile(`(?i)^(?:` +
	`(?:e-?)?isbn(?:[^a-z]|$)` +
	`|published\s+by\b` +
	`|all\s+rights\s+reserved` +
	`|copyright\s*(?:©|\(c\)|\d{4})` +
	`|©` +
	`|first\s+published\s+(?:in|by)\b` +
	`|project\s+gutenberg` +
	`|wydawnictwo\b` +
	`|drukarnia\b` +
	`|plik\s+jest\s+zabezpieczony` +
	`|zabezpieczony\s+znakiem\s+wodnym` +
	`)`)

var (
	isbnCharsRe = regexp.MustCompile(`^[\d\s\-Xx]+$`)
	isbn10Re    = regexp.MustCompile(`^\d{9}[\dXx]$`)
	isbn13Re    = regexp.MustCompile(`^\d{13}$`)
)

// IsPageNumber reports whether the line is a standalone page number, bare or
// decorated ("- 12 -", "[12]", "Page 12"), in the range 1-99999.
// Lines that merely start with digits are not page numbers.
func IsPageNumber(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}

	m := pageNumberRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		return err == nil && n >= minPageNumber && n <= maxPageNumber
	}
	return false
}

// IsSeparator reports whether the line, ignoring whitespace, is three or more
// repetitions of a single non-alphanumeric character ("***", "- - -").
func IsSeparator(line string) bool {
	s := strings.Join(strings.Fields(line), "")
	if utf8.RuneCountInString(s) < minSeparatorRunes {
		return false
	}

	first, _ := utf8.DecodeRuneInString(s)
	if unicode.IsLetter(first) || unicode.IsNumber(first) {
		return false
	}
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// IsBoilerplate reports whether the line is ISBN or publisher front matter.
// Matching is anchored at the start of the line so prose that mentions
// "the ISBN system" is kept.
func IsBoilerplate(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if boilerplateRe.MatchString(s) {
		return true
	}
	return isISBNNumber(s)
}

// isISBNNumber reports whether s is a bare 10 or 13 digit ISBN-like number
// with optional hyphens or spaces.
func isISBNNumber(s string) bool {
	if !isbnCharsRe.MatchString(s) {
		return false
	}
	digits := strings.NewReplacer("-", "", " ", "", "\t", "").Replace(s)
	return isbn10Re.MatchString(digits) || isbn13Re.MatchString(digits)
}
