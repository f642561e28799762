package book

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	maxHeadingRunes = 50

	citationWindow       = 30
	minCitationPatterns  = 3
	minCitationLikeLines = 5
	minCitationLineRunes = 20
)

// BibliographyKeywords are the back-matter headings that start a cutoff.
var BibliographyKeywords = []string{
	"bibliography",
	"references",
	"works cited",
	"notes",
	"index",
	"bibliografia",
	"przypisy",
	"spis literatury",
}

var bibliographyHeadingRe = buildHeadingRe(BibliographyKeywords)

// buildHeadingRe matches a folded heading made of one keyword, optionally
// preceded by chapter numbering and followed by trailing punctuation.
func buildHeadingRe(keywords []string) *regexp.Regexp {
	alts := make([]string, len(keywords))
	for i, kw := range keywords {
		alts[i] = strings.Join(strings.Fields(regexp.QuoteMeta(kw)), `\s+`)
	}
	return regexp.MustCompile(`^(?:(?:chapter|rozdział|part|appendix)\s+)?` +
		`(?:\d+[.)]?\s*|[ivxlc]+[.)]\s*|[ivxlc]+\s+)?` +
		`(?:` + strings.Join(alts, "|") + `)[\s.:;]*$`)
}

var (
	citationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{4}\)`),                                                  // (2020)
		regexp.MustCompile(`\d{4}[,.]`),                                                  // 2020,
		regexp.MustCompile(`[A-Z][a-z]+,\s+[A-Z]\.`),                                     // Smith, J.
		regexp.MustCompile(`[A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż]+ [A-ZĄĆĘŁŃÓŚŹŻ][a-ząćęłńóśźż]+,`), // Kowalski Jan,
	}
	citationMarkers = []string{", ", " – ", "London", "New York", "Warszawa", "Kraków", "red.", "ed.", "przeł."}
)

// foldLine trims and case-folds a line for heading comparison.
func foldLine(line string) string {
	return cases.Fold().String(strings.Join(strings.Fields(line), " "))
}

// IsBibliographyHeading reports whether the line is a standalone back-matter
// heading such as "References", "Works  Cited" or "12. Notes:".
func IsBibliographyHeading(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" || utf8.RuneCountInString(s) > maxHeadingRunes {
		return false
	}
	return bibliographyHeadingRe.MatchString(foldLine(s))
}

// DetectBibliographyCutoff returns the index of the first bibliography
// heading at or after the BibliographyMinOffset fraction of the document.
// Everything from that index on is back matter. It returns len(lines) when
// no heading is found.
//
// The fraction is taken over content lines: non-blank lines that no rule
// removes. Page numbers, running headers and blank runs do not shift the
// guard, so cleaned text keeps the same guard as its source.
func DetectBibliographyCutoff(lines []string, cfg *Config) int {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	repeated := DetectRepeatedShortLines(lines, cfg.MaxLineLength, cfg.MinRepeat)
	var toc TOCRange
	if cfg.RemoveTOC {
		toc, _ = DetectTOC(lines, cfg.TOCMaxSpan)
	}
	cutoff, _ := detectCutoff(lines, contentIndexes(lines, repeated, toc), cfg)
	return cutoff
}

// contentIndexes returns the indexes of lines that survive filtering.
func contentIndexes(lines []string, repeated map[string]struct{}, toc TOCRange) []int {
	idx := make([]int, 0, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		if _, drop := dropReason(i, line, repeated, toc); drop {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// detectCutoff scans the content lines for a back-matter heading. It also
// returns the headings skipped for lack of citation evidence.
func detectCutoff(lines []string, content []int, cfg *Config) (int, []int) {
	guard := offsetIndex(len(content), cfg.BibliographyMinOffset)
	confident := offsetIndex(len(content), cfg.BibliographyConfidentOffset)

	var rejected []int
	for rank := guard; rank < len(content); rank++ {
		i := content[rank]
		if !IsBibliographyHeading(lines[i]) {
			continue
		}
		if cfg.VerifyCitations && rank < confident && !hasCitationEvidence(followingContent(lines, content, rank)) {
			rejected = append(rejected, i)
			continue
		}
		return i, rejected
	}
	return len(lines), rejected
}

// followingContent returns up to citationWindow content lines after rank.
func followingContent(lines []string, content []int, rank int) []string {
	next := content[rank+1:]
	if len(next) > citationWindow {
		next = next[:citationWindow]
	}
	out := make([]string, len(next))
	for k, i := range next {
		out[k] = lines[i]
	}
	return out
}

// offsetIndex converts a document fraction into a line index.
func offsetIndex(n int, fraction float64) int {
	idx := int(math.Ceil(float64(n) * fraction))
	if idx < 0 {
		return 0
	}
	if idx > n {
		return n
	}
	return idx
}

// hasCitationEvidence reports whether the lines following a heading look like
// a reference list.
func hasCitationEvidence(following []string) bool {
	if len(following) > citationWindow {
		following = following[:citationWindow]
	}

	patterns, citationLike := 0, 0
	for _, line := range following {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		for _, re := range citationPatterns {
			if re.MatchString(s) {
				patterns++
				break
			}
		}
		if looksLikeCitation(s) {
			citationLike++
		}
	}
	return patterns >= minCitationPatterns || citationLike >= minCitationLikeLines
}

func looksLikeCitation(s string) bool {
	if utf8.RuneCountInString(s) <= minCitationLineRunes {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, marker := range citationMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
