package output

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/bookclean/pkg/cleaner/book"
)

// Report describes one cleaning run.
type Report struct {
	Source           string       `json:"source" yaml:"source"`
	Destination      string       `json:"destination,omitempty" yaml:"destination,omitempty"`
	Cleaner          string       `json:"cleaner" yaml:"cleaner"`
	Config           *book.Config `json:"config" yaml:"config"`
	Stats            *book.Stats  `json:"stats" yaml:"stats"`
	ReductionPercent float64      `json:"reduction_percent" yaml:"reduction_percent"`
}

// NewReport builds a report for a cleaning result.
func NewReport(source, destination, cleanerName string, cfg *book.Config, stats *book.Stats) *Report {
	return &Report{
		Source:           source,
		Destination:      destination,
		Cleaner:          cleanerName,
		Config:           cfg,
		Stats:            stats,
		ReductionPercent: stats.ReductionPercent(),
	}
}

// String returns the text form of the report.
func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString("=== Book Cleaner Stats ===\n")
	sb.WriteString(fmt.Sprintf("Source: %s\n", r.Source))
	if r.Destination != "" {
		sb.WriteString(fmt.Sprintf("Output: %s\n", r.Destination))
	}
	sb.WriteString(fmt.Sprintf("Cleaner: %s\n", r.Cleaner))
	sb.WriteString(fmt.Sprintf("Size: %s -> %s\n",
		humanize.Bytes(uint64(r.Stats.InputBytes)),
		humanize.Bytes(uint64(r.Stats.OutputBytes))))
	sb.WriteString(r.Stats.String())
	return sb.String()
}
