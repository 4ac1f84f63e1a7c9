package margin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	reports := Analyze("\n  |one\n  two\n  |\n   ")
	require.Len(t, reports, 5)

	want := []LineReport{
		{Number: 1, Original: "", Status: Dropped},
		{Number: 2, Original: "  |one", Result: "one", Status: Trimmed},
		{Number: 3, Original: "  two", Result: "  two", Status: Unmarked},
		{Number: 4, Original: "  |", Result: "", Status: Trimmed},
		{Number: 5, Original: "   ", Status: Dropped},
	}
	assert.Equal(t, want, reports)
}

func TestAnalyzeJoinsToTrim(t *testing.T) {
	inputs := []string{
		"",
		"x|y",
		"\n\n|a\n\n\n",
		"\r\n  |a\r\n  b\r\n",
		"\n        |This string has a margin\n        |indicated by the '|' character.\n        |\n    ",
	}
	for _, in := range inputs {
		var kept []string
		for _, r := range Analyze(in) {
			if r.Status != Dropped {
				kept = append(kept, r.Result)
			}
		}
		assert.Equal(t, Trim(in), strings.Join(kept, "\n"), "input %q", in)
	}
}

func TestCounts(t *testing.T) {
	counts := Counts(NewTrimmer('#').Analyze("\n #a\n b\n #c\n"))
	assert.Equal(t, 2, counts[Trimmed])
	assert.Equal(t, 1, counts[Unmarked])
	assert.Equal(t, 2, counts[Dropped])
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "trimmed", Trimmed.String())
	assert.Equal(t, "unmarked", Unmarked.String())
	assert.Equal(t, "dropped", Dropped.String())
	assert.Equal(t, "unknown", Status(42).String())
}
