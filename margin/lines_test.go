package margin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n", []string{"a", ""}},
		{"\n\n", []string{"", "", ""}},
		{"a\r\nb\r\n", []string{"a", "b", ""}},
		{"a\rb\nc", []string{"a\rb", "c"}},
		{"a\r\r\nb", []string{"a\r", "b"}},
		{"a\r", []string{"a\r"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SplitLines(tc.in), "input %q", tc.in)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t \t"))
	assert.False(t, IsBlank("  |"))
	assert.False(t, IsBlank("\u00a0"))
	assert.False(t, IsBlank("\r"))
}

func TestBounds(t *testing.T) {
	tests := []struct {
		lines       []string
		first, last int
	}{
		{[]string{""}, 0, 1},
		{[]string{"  "}, 0, 1},
		{[]string{"", ""}, 1, 1},
		{[]string{"", "a", ""}, 1, 2},
		{[]string{"", "", "a", "", ""}, 1, 4},
		{[]string{"a", "b"}, 0, 2},
		{[]string{"a", " \t"}, 0, 1},
	}
	for _, tc := range tests {
		first, last := bounds(tc.lines)
		assert.Equal(t, tc.first, first, "first of %q", tc.lines)
		assert.Equal(t, tc.last, last, "last of %q", tc.lines)
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		line, prefix string
		want         string
		ok           bool
	}{
		{"|a", "|", "a", true},
		{"  \t|a", "|", "a", true},
		{"  a|b", "|", "  a|b", false},
		{"   ", "|", "   ", false},
		{"", "|", "", false},
		{"  a", "", "  a", true},
		{"  //b", "//", "b", true},
		{"  /b", "//", "  /b", false},
	}
	for _, tc := range tests {
		got, ok := cut(tc.line, tc.prefix)
		assert.Equal(t, tc.want, got, "cut(%q, %q)", tc.line, tc.prefix)
		assert.Equal(t, tc.ok, ok, "cut(%q, %q)", tc.line, tc.prefix)
	}
}
