package book

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Reason names the rule that removed a line.
type Reason string

const (
	ReasonPageNumber   Reason = "page_number"
	ReasonSeparator    Reason = "separator"
	ReasonBoilerplate  Reason = "boilerplate"
	ReasonRepeated     Reason = "repeated"
	ReasonBibliography Reason = "bibliography"
	ReasonTOC          Reason = "toc"
	ReasonBlank        Reason = "blank"
)

// Stats captures metrics about what the cleaner did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`
	InputLines  int `json:"input_lines" yaml:"input_lines"`
	OutputLines int `json:"output_lines" yaml:"output_lines"`

	// LinesRemoved counts dropped lines per rule.
	LinesRemoved map[Reason]int `json:"lines_removed" yaml:"lines_removed"`

	// RepeatedTexts lists the texts flagged as running headers/footers.
	RepeatedTexts []string `json:"repeated_texts,omitempty" yaml:"repeated_texts,omitempty"`

	// BibliographyCutoff is the first back-matter line, or InputLines.
	BibliographyCutoff int `json:"bibliography_cutoff" yaml:"bibliography_cutoff"`

	// RejectedHeadings are back-matter headings kept because no citations
	// followed them. Only set when VerifyCitations is on.
	RejectedHeadings []int `json:"rejected_headings,omitempty" yaml:"rejected_headings,omitempty"`

	// TOC is the removed table of contents, if any.
	TOC *TOCRange `json:"toc,omitempty" yaml:"toc,omitempty"`

	// Timing
	DetectDuration    time.Duration `json:"detect_duration_ns" yaml:"detect_duration_ns"`
	FilterDuration    time.Duration `json:"filter_duration_ns" yaml:"filter_duration_ns"`
	NormalizeDuration time.Duration `json:"normalize_duration_ns" yaml:"normalize_duration_ns"`
	TotalDuration     time.Duration `json:"total_duration_ns" yaml:"total_duration_ns"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		LinesRemoved: make(map[Reason]int),
	}
}

// RecordRemoval records that a line was dropped for the given reason.
func (s *Stats) RecordRemoval(reason Reason) {
	s.LinesRemoved[reason]++
}

// TotalLinesRemoved returns the sum of all removed lines.
func (s *Stats) TotalLinesRemoved() int {
	total := 0
	for _, count := range s.LinesRemoved {
		total += count
	}
	return total
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// HasBibliography reports whether back matter was cut.
func (s *Stats) HasBibliography() bool {
	return s.BibliographyCutoff < s.InputLines
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))
	sb.WriteString(fmt.Sprintf("Lines: %d -> %d (%d removed)\n",
		s.InputLines, s.OutputLines, s.TotalLinesRemoved()))

	if len(s.LinesRemoved) > 0 {
		reasons := make([]string, 0, len(s.LinesRemoved))
		for reason := range s.LinesRemoved {
			reasons = append(reasons, string(reason))
		}
		sort.Strings(reasons)

		parts := make([]string, len(reasons))
		for i, reason := range reasons {
			parts[i] = fmt.Sprintf("%s=%d", reason, s.LinesRemoved[Reason(reason)])
		}
		sb.WriteString("Removed by rule: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	if len(s.RepeatedTexts) > 0 {
		sb.WriteString(fmt.Sprintf("Running headers/footers: %q\n", s.RepeatedTexts))
	}
	if s.HasBibliography() {
		sb.WriteString(fmt.Sprintf("Back matter from line %d\n", s.BibliographyCutoff+1))
	}
	if s.TOC != nil {
		sb.WriteString(fmt.Sprintf("Table of contents: lines %d-%d (%d lines)\n", s.TOC.Start+1, s.TOC.End, s.TOC.Len()))
	}
	for _, i := range s.RejectedHeadings {
		sb.WriteString(fmt.Sprintf("Kept heading without citations at line %d\n", i+1))
	}

	sb.WriteString(fmt.Sprintf("Timing: detect=%v, filter=%v, normalize=%v, total=%v\n",
		s.DetectDuration.Round(time.Microsecond),
		s.FilterDuration.Round(time.Microsecond),
		s.NormalizeDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Result contains the output of a cleaning operation.
type Result struct {
	// Content is the cleaned text.
	Content string `json:"content" yaml:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats" yaml:"stats"`
}
