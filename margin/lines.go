package margin

import "strings"

// SplitLines splits text on "\n" and "\r\n". The terminators are not part of
// the returned lines and a lone '\r' is kept as content. Consecutive
// terminators produce empty lines, and the empty string yields one empty line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// IsBlank reports whether line holds nothing but spaces and tabs.
func IsBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isSpace(line[i]) {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// bounds returns the half-open range of lines that survive edge trimming.
// Only the outermost blank line at each end is dropped, and a single line is
// never dropped.
func bounds(lines []string) (first, last int) {
	first, last = 0, len(lines)
	if len(lines) < 2 {
		return first, last
	}
	if IsBlank(lines[first]) {
		first++
	}
	if last > first && IsBlank(lines[last-1]) {
		last--
	}
	return first, last
}

// cut looks for prefix after the leading spaces and tabs of line. It returns
// the rest of the line following the prefix and true, or line itself and
// false when something else comes first.
func cut(line, prefix string) (string, bool) {
	for i := 0; i <= len(line); i++ {
		if strings.HasPrefix(line[i:], prefix) {
			return line[i+len(prefix):], true
		}
		if i == len(line) || !isSpace(line[i]) {
			break
		}
	}
	return line, false
}
