package textscan

import "strings"

// SplitLines splits text on any line break and returns the trimmed,
// non-empty lines in order
func SplitLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// FindLinePrefix returns the index of the first line that starts with
// prefix, or -1
func FindLinePrefix(lines []string, prefix string) int {
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}
	return -1
}

// RemoveRange returns lines without the closed range [from, to]
func RemoveRange(lines []string, from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to >= len(lines) {
		to = len(lines) - 1
	}
	if from > to {
		return append([]string(nil), lines...)
	}
	out := make([]string, 0, len(lines)-(to-from+1))
	out = append(out, lines[:from]...)
	return append(out, lines[to+1:]...)
}
