package book

import (
	"fmt"
	"testing"
)

// bodyLines returns n unique prose lines.
func bodyLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("Paragraph %d tells more of the story.", i)
	}
	return lines
}

func citationLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("Smith, J. (%d). A history of things. London: Penguin.", 1990+i)
	}
	return lines
}

func TestIsBibliographyHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"References", true},
		{"REFERENCES", true},
		{"  Works   Cited  ", true},
		{"Bibliography", true},
		{"Notes:", true},
		{"Index", true},
		{"12. References", true},
		{"Chapter 9 Notes", true},
		{"IV. Notes", true},
		{"Bibliografia", true},
		{"PRZYPISY", true},
		{"Spis literatury", true},
		{"Rozdział 12 Przypisy", true},
		{"", false},
		{"References to the war were common.", false},
		{"Notes on a Scandal", false},
		{"Index finger", false},
		{"See the references", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsBibliographyHeading(tt.line); got != tt.want {
				t.Errorf("IsBibliographyHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDetectBibliographyCutoff(t *testing.T) {
	t.Run("heading in second half", func(t *testing.T) {
		lines := append(bodyLines(90), "References")
		lines = append(lines, citationLines(9)...)

		if got := DetectBibliographyCutoff(lines, DefaultConfig()); got != 90 {
			t.Errorf("expected cutoff 90, got %d", got)
		}
	})

	t.Run("heading before guard is ignored", func(t *testing.T) {
		lines := bodyLines(100)
		lines[10] = "Notes"

		if got := DetectBibliographyCutoff(lines, DefaultConfig()); got != len(lines) {
			t.Errorf("expected no cutoff (%d), got %d", len(lines), got)
		}
	})

	t.Run("first heading after guard wins", func(t *testing.T) {
		lines := bodyLines(100)
		lines[20] = "Notes"
		lines[70] = "Notes"
		lines[85] = "Index"

		if got := DetectBibliographyCutoff(lines, DefaultConfig()); got != 70 {
			t.Errorf("expected cutoff 70, got %d", got)
		}
	})

	t.Run("no heading", func(t *testing.T) {
		lines := bodyLines(10)
		if got := DetectBibliographyCutoff(lines, DefaultConfig()); got != 10 {
			t.Errorf("expected cutoff 10, got %d", got)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		if got := DetectBibliographyCutoff(nil, nil); got != 0 {
			t.Errorf("expected cutoff 0, got %d", got)
		}
	})

	t.Run("page numbers do not move the guard", func(t *testing.T) {
		lines := []string{"1", "2", "3", "4", "5", "6"}
		lines = append(lines, bodyLines(6)...)
		lines[7] = "Notes"

		// Raw index 7 of 12 is past the midpoint, but only one of six
		// content lines precedes the heading.
		if got := DetectBibliographyCutoff(lines, DefaultConfig()); got != len(lines) {
			t.Errorf("expected no cutoff (%d), got %d", len(lines), got)
		}
	})

	t.Run("removed table of contents does not move the guard", func(t *testing.T) {
		lines := []string{"Contents"}
		for i := 1; i <= 8; i++ {
			lines = append(lines, fmt.Sprintf("Chapter %d ..... %d", i, i*10))
		}
		lines = append(lines, "PREFACE")
		lines = append(lines, bodyLines(8)...)
		lines[12] = "Notes"

		cfg := DefaultConfig()
		if got := DetectBibliographyCutoff(lines, cfg); got != 12 {
			t.Errorf("with the TOC kept, expected cutoff 12, got %d", got)
		}

		cfg.RemoveTOC = true
		if got := DetectBibliographyCutoff(lines, cfg); got != len(lines) {
			t.Errorf("with the TOC removed, expected no cutoff (%d), got %d", len(lines), got)
		}
	})

	t.Run("zero offset scans whole document", func(t *testing.T) {
		lines := bodyLines(10)
		lines[1] = "Bibliography"
		cfg := DefaultConfig()
		cfg.BibliographyMinOffset = 0

		if got := DetectBibliographyCutoff(lines, cfg); got != 1 {
			t.Errorf("expected cutoff 1, got %d", got)
		}
	})
}

func TestDetectBibliographyCutoff_VerifyCitations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerifyCitations = true

	t.Run("mid-book heading with citations", func(t *testing.T) {
		lines := bodyLines(100)
		lines[60] = "References"
		copy(lines[61:], citationLines(10))

		if got := DetectBibliographyCutoff(lines, cfg); got != 60 {
			t.Errorf("expected cutoff 60, got %d", got)
		}
	})

	t.Run("mid-book heading followed by prose", func(t *testing.T) {
		lines := bodyLines(100)
		lines[60] = "Notes"

		if got := DetectBibliographyCutoff(lines, cfg); got != 100 {
			t.Errorf("expected no cutoff, got %d", got)
		}
	})

	t.Run("late heading needs no evidence", func(t *testing.T) {
		lines := bodyLines(100)
		lines[60] = "Notes"
		lines[85] = "Index"

		if got := DetectBibliographyCutoff(lines, cfg); got != 85 {
			t.Errorf("expected cutoff 85, got %d", got)
		}
	})
}

func TestHasCitationEvidence(t *testing.T) {
	if !hasCitationEvidence(citationLines(3)) {
		t.Error("expected three dated citations to count as evidence")
	}
	if hasCitationEvidence(bodyLines(30)) {
		t.Error("expected prose not to count as evidence")
	}

	// Evidence past the window is not considered.
	lines := append(bodyLines(citationWindow), citationLines(10)...)
	if hasCitationEvidence(lines) {
		t.Error("expected citations beyond the window to be ignored")
	}
}
