package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Wrap word-wraps s to width cells and returns the resulting lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}
	wrapped := ansi.Wordwrap(s, width, "-")
	// Words longer than width are left intact by Wordwrap.
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Hardwrap(line, width, true)
		}
	}
	return strings.Split(strings.Join(lines, "\n"), "\n")
}

// Truncate shortens s to width cells, appending tail when it was cut.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, tail)
}

// SplitLines splits s on newlines; an empty string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
