package util

import (
	"fmt"
	"strings"
)

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max < 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// TruncateLeft shortens s to at most max runes keeping its end, which is the
// informative part of a path.
func TruncateLeft(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max < 3 {
		return string(r[len(r)-max:])
	}
	return "..." + string(r[len(r)-(max-3):])
}

// Visible makes tabs, trailing spaces and carriage returns of a line visible.
func Visible(line string) string {
	body := strings.TrimRight(line, " ")
	trailing := len(line) - len(body)
	body = strings.ReplaceAll(body, "\t", "→")
	body = strings.ReplaceAll(body, "\r", "␍")
	return body + strings.Repeat("·", trailing)
}

// FormatFileSize formats a file size in bytes into a human-readable string
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
