package helper

import (
	"strings"
)

// SplitLines parses a newline-separated textarea value into a list,
// trimming whitespace and dropping empty lines.
func SplitLines(value string) []string {
	items := []string{}
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// JoinLines is the inverse of SplitLines, used to pre-populate textareas.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
