package margin

import (
	"fmt"
	"strings"
)

// MissingMarginError is returned by TrimStrict for the first content line
// that does not carry the margin prefix.
type MissingMarginError struct {
	Line   int // 1-based line number in the input
	Text   string
	Prefix string
}

func (e *MissingMarginError) Error() string {
	return fmt.Sprintf("line %d has no %q margin: %q", e.Line, e.Prefix, e.Text)
}

// TrimStrict is like Trim but fails when a line left after edge trimming
// neither carries the margin nor is blank.
func TrimStrict(text string) (string, error) {
	return Trimmer{}.TrimStrict(text)
}

// TrimStrict is like Trim but fails when a line left after edge trimming
// neither carries the margin nor is blank. Blank lines pass through unchanged.
func (t Trimmer) TrimStrict(text string) (string, error) {
	lines := SplitLines(text)
	first, last := bounds(lines)
	prefix := t.Prefix()

	out := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		line, ok := cut(lines[i], prefix)
		if !ok && !IsBlank(line) {
			return "", &MissingMarginError{Line: i + 1, Text: lines[i], Prefix: prefix}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n"), nil
}
