package book

import (
	"strings"
	"unicode/utf8"
)

// RepeatedLineProfile counts occurrences of short, non-empty trimmed lines.
type RepeatedLineProfile map[string]int

// ProfileShortLines builds the occurrence profile of lines whose trimmed
// text is at most maxLen runes. Text is compared verbatim, case preserved.
func ProfileShortLines(lines []string, maxLen int) RepeatedLineProfile {
	profile := make(RepeatedLineProfile)
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || utf8.RuneCountInString(s) > maxLen {
			continue
		}
		profile[s]++
	}
	return profile
}

// Flagged returns the texts occurring at least minRepeat times.
func (p RepeatedLineProfile) Flagged(minRepeat int) map[string]struct{} {
	flagged := make(map[string]struct{})
	for text, count := range p {
		if count >= minRepeat {
			flagged[text] = struct{}{}
		}
	}
	return flagged
}

// DetectRepeatedShortLines returns the trimmed texts of short lines that
// recur often enough to be running headers or footers. Every occurrence of
// a returned text should be dropped, not just the repeats.
//
// A short line that legitimately repeats (a refrain, a one-word reply) is
// removed as well.
func DetectRepeatedShortLines(lines []string, maxLen, minRepeat int) map[string]struct{} {
	return ProfileShortLines(lines, maxLen).Flagged(minRepeat)
}

// isRepeated reports whether the line's trimmed text is in the flagged set.
func isRepeated(line string, flagged map[string]struct{}) bool {
	if len(flagged) == 0 {
		return false
	}
	_, ok := flagged[strings.TrimSpace(line)]
	return ok
}
