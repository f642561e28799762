package book

import "strings"

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// NormalizeBlankLines collapses each run of blank or whitespace-only lines
// into a single empty line and drops leading and trailing blank lines.
// The input slice is not modified.
func NormalizeBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	pending := false
	for _, line := range lines {
		if isBlank(line) {
			pending = len(out) > 0
			continue
		}
		if pending {
			out = append(out, "")
			pending = false
		}
		out = append(out, line)
	}
	return out
}
