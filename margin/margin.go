// Package margin turns multi-line strings that are indented for source code
// readability into the text they are meant to hold.
//
// Every line may start with spaces or tabs followed by a margin marker ('|' by
// default). Both are layout and get removed, the rest of the line is content:
//
//	usage := margin.Trim(`
//		|Usage: tool [flags]
//		|
//		|  -v  verbose output
//	`)
//
// A blank first line and a blank last line are dropped as well, so a literal
// may open and close on its own lines. Lines without a marker are kept as they
// are, leading whitespace included.
//
// Trimming is not idempotent: a line of the result that itself starts with
// optional whitespace and the marker loses it on a second pass.
package margin

import "strings"

// DefaultMarker is the margin marker used by Trim.
const DefaultMarker = '|'

// Trim removes the margin of text using DefaultMarker.
func Trim(text string) string {
	return TrimWith(text, DefaultMarker)
}

// TrimWith removes the margin of text using marker.
func TrimWith(text string, marker rune) string {
	return NewTrimmer(marker).Trim(text)
}

// TrimPrefix removes the margin of text using a multi-character prefix in
// place of a single marker.
func TrimPrefix(text, prefix string) string {
	return NewPrefixTrimmer(prefix).Trim(text)
}

// Trimmer removes margins delimited by a fixed prefix. The zero value uses
// DefaultMarker. A Trimmer holds no mutable state and may be shared between
// goroutines.
type Trimmer struct {
	prefix string
	set    bool
}

// NewTrimmer returns a Trimmer for a single-character marker.
func NewTrimmer(marker rune) Trimmer {
	return Trimmer{prefix: string(marker), set: true}
}

// NewPrefixTrimmer returns a Trimmer for an arbitrary prefix. The empty
// prefix matches at the start of every line and removes nothing.
func NewPrefixTrimmer(prefix string) Trimmer {
	return Trimmer{prefix: prefix, set: true}
}

// Prefix returns the margin prefix t looks for.
func (t Trimmer) Prefix() string {
	if !t.set {
		return string(DefaultMarker)
	}
	return t.prefix
}

// Trim removes the margin of text. It never fails.
func (t Trimmer) Trim(text string) string {
	lines := SplitLines(text)
	first, last := bounds(lines)
	prefix := t.Prefix()

	var b strings.Builder
	b.Grow(len(text))
	for i := first; i < last; i++ {
		if i > first {
			b.WriteByte('\n')
		}
		line, _ := cut(lines[i], prefix)
		b.WriteString(line)
	}
	return b.String()
}
