package book

import (
	"sort"
	"strings"
	"time"
)

// Cleaner strips page furniture and back matter from book text.
// It implements the cleaner.Cleaner interface and is safe for concurrent use.
type Cleaner struct {
	config *Config
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{
		config: config,
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "book"
}

// Config returns the configuration in use.
func (c *Cleaner) Config() *Config {
	return c.config
}

// Clean implements the cleaner.Cleaner interface. It never fails.
func (c *Cleaner) Clean(text string) (string, error) {
	return c.CleanWithStats(text).Content, nil
}

// CleanBook cleans text with the default configuration.
func CleanBook(text string) string {
	return New(nil).CleanWithStats(text).Content
}

// CleanWithStats performs cleaning and returns detailed stats.
func (c *Cleaner) CleanWithStats(text string) *Result {
	startTime := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	stats := result.Stats
	stats.InputBytes = len(text)

	if text == "" {
		stats.TotalDuration = time.Since(startTime)
		return result
	}

	doc := SplitLines(text)
	lines := doc.Lines
	stats.InputLines = len(lines)

	// Detection runs over the full input sequence.
	detectStart := time.Now()
	repeated := DetectRepeatedShortLines(lines, c.config.MaxLineLength, c.config.MinRepeat)
	var toc TOCRange
	hasTOC := false
	if c.config.RemoveTOC {
		toc, hasTOC = DetectTOC(lines, c.config.TOCMaxSpan)
	}
	cutoff, rejected := detectCutoff(lines, contentIndexes(lines, repeated, toc), c.config)
	stats.DetectDuration = time.Since(detectStart)

	stats.BibliographyCutoff = cutoff
	stats.RejectedHeadings = rejected
	stats.RepeatedTexts = sortedKeys(repeated)
	if hasTOC {
		if toc.End > cutoff {
			toc.End = cutoff
		}
		if toc.Start < toc.End {
			stats.TOC = &toc
		}
	}

	filterStart := time.Now()
	kept := make([]string, 0, cutoff)
	for i, line := range lines[:cutoff] {
		if reason, drop := dropReason(i, line, repeated, toc); drop {
			stats.RecordRemoval(reason)
			continue
		}
		kept = append(kept, line)
	}
	if removed := len(lines) - cutoff; removed > 0 {
		stats.LinesRemoved[ReasonBibliography] += removed
	}
	stats.FilterDuration = time.Since(filterStart)

	normalizeStart := time.Now()
	normalized := NormalizeBlankLines(kept)
	if collapsed := len(kept) - len(normalized); collapsed > 0 {
		stats.LinesRemoved[ReasonBlank] += collapsed
	}
	stats.NormalizeDuration = time.Since(normalizeStart)

	result.Content = doc.Join(normalized)
	stats.OutputLines = len(normalized)
	stats.OutputBytes = len(result.Content)
	stats.TotalDuration = time.Since(startTime)

	return result
}

// dropReason returns the rule that drops the line at index i, if any.
// Blank lines are left to NormalizeBlankLines.
func dropReason(i int, line string, repeated map[string]struct{}, toc TOCRange) (Reason, bool) {
	switch {
	case toc.Contains(i):
		return ReasonTOC, true
	case isRepeated(line, repeated):
		return ReasonRepeated, true
	case IsPageNumber(line):
		return ReasonPageNumber, true
	case IsSeparator(line):
		return ReasonSeparator, true
	case IsBoilerplate(line):
		return ReasonBoilerplate, true
	}
	return "", false
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Document is a text split into lines along with the separator convention
// needed to join it back.
type Document struct {
	Lines []string

	// Separator is "\r\n" when the first line break is CRLF, "\n" otherwise.
	// In an LF document a stray "\r" stays part of its line.
	Separator string

	// TrailingSeparator records whether the input ended with a line break.
	TrailingSeparator bool
}

// SplitLines splits text into lines and records its line-break convention.
// A final line break does not produce an extra empty line.
func SplitLines(text string) Document {
	doc := Document{Separator: "\n"}
	if text == "" {
		return doc
	}
	if nl := strings.IndexByte(text, '\n'); nl > 0 && text[nl-1] == '\r' {
		doc.Separator = "\r\n"
	}

	if strings.HasSuffix(text, "\n") {
		doc.TrailingSeparator = true
		text = strings.TrimSuffix(text, "\n")
		if doc.Separator == "\r\n" {
			text = strings.TrimSuffix(text, "\r")
		}
	}

	doc.Lines = strings.Split(text, "\n")
	if doc.Separator == "\r\n" {
		for i, line := range doc.Lines {
			doc.Lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return doc
}

// Join joins lines with the document's separator, restoring a final line
// break when the source had one and there is content to terminate.
func (d Document) Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, d.Separator)
	if d.TrailingSeparator {
		out += d.Separator
	}
	return out
}
