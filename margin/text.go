package margin

// Trimmable is implemented by string-like values that can drop their margin.
type Trimmable interface {
	TrimMargin() string
	TrimMarginWith(marker rune) string
}

// Text is a string with margin trimming methods attached.
type Text string

var _ Trimmable = Text("")

// TrimMargin is Trim applied to t.
func (t Text) TrimMargin() string {
	return Trim(string(t))
}

// TrimMarginWith is TrimWith applied to t.
func (t Text) TrimMarginWith(marker rune) string {
	return TrimWith(string(t), marker)
}
