package book

import (
	"strings"
	"unicode/utf8"
)

const (
	tocSearchWindow   = 500
	tocBlankRunEnd    = 5
	drmMarker         = "==="
	minDRMMarkerRunes = 30
)

// TOCHeadings are the folded headings that open a table of contents.
var TOCHeadings = []string{
	"contents",
	"table of contents",
	"spis treści",
	"spis rzeczy",
}

// frontMatterMarkers name the first sections that follow a table of contents.
var frontMatterMarkers = []string{
	"preface",
	"introduction",
	"foreword",
	"przedmowa",
	"wstęp",
	"wprowadzenie",
}

// TOCRange is the half-open line range [Start, End) of a table of contents.
type TOCRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the line index falls inside the range.
func (r TOCRange) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Len returns the number of lines covered.
func (r TOCRange) Len() int {
	return r.End - r.Start
}

// IsTOCHeading reports whether the line opens a table of contents.
func IsTOCHeading(line string) bool {
	s := strings.TrimSuffix(foldLine(line), ":")
	for _, h := range TOCHeadings {
		if s == h {
			return true
		}
	}
	return false
}

// DetectTOC locates the first table of contents. The range ends after a
// long "===" marker line, at a run of five blank lines, at an uppercase
// front-matter heading such as "PREFACE", or maxSpan lines after the
// heading, whichever comes first in that priority order.
func DetectTOC(lines []string, maxSpan int) (TOCRange, bool) {
	for i, line := range lines {
		if !IsTOCHeading(line) {
			continue
		}
		return TOCRange{Start: i, End: tocEnd(lines, i, maxSpan)}, true
	}
	return TOCRange{}, false
}

func tocEnd(lines []string, start, maxSpan int) int {
	n := len(lines)
	body := start + 1
	for body < n && strings.TrimSpace(lines[body]) == "" {
		body++
	}
	limit := min(body+tocSearchWindow, n)

	for j := body; j < limit; j++ {
		s := strings.TrimSpace(lines[j])
		if strings.Contains(s, drmMarker) && utf8.RuneCountInString(s) > minDRMMarkerRunes {
			k := j + 1
			for k < n && strings.TrimSpace(lines[k]) == "" {
				k++
			}
			return k
		}
	}

	blanks := 0
	for j := body; j < limit; j++ {
		s := strings.TrimSpace(lines[j])
		if s == "" {
			blanks++
			if blanks >= tocBlankRunEnd {
				return j - tocBlankRunEnd + 1
			}
			continue
		}
		blanks = 0
		if isFrontMatterHeading(s) {
			return j
		}
	}

	return min(start+maxSpan, n)
}

// isFrontMatterHeading reports whether s is an uppercase line naming a
// section that follows the table of contents.
func isFrontMatterHeading(s string) bool {
	if strings.ToUpper(s) != s || strings.ToLower(s) == s {
		return false
	}
	folded := foldLine(s)
	for _, marker := range frontMatterMarkers {
		if strings.Contains(folded, marker) {
			return true
		}
	}
	return false
}
