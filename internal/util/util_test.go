package util

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected text: %s", got)
	}
	if got := Truncate("truncate-me", 4); got != "t..." {
		t.Fatalf("unexpected truncation: %s", got)
	}
	if got := Truncate("xyz", 2); got != "xy" {
		t.Fatalf("unexpected short truncation: %s", got)
	}
	if got := Truncate("größer", 5); got != "gr..." {
		t.Fatalf("unexpected rune truncation: %s", got)
	}
}

func TestTruncateLeft(t *testing.T) {
	if got := TruncateLeft("a/b/c/file.txt", 11); got != "...file.txt" {
		t.Fatalf("unexpected left truncation: %s", got)
	}
	if got := TruncateLeft("file", 10); got != "file" {
		t.Fatalf("unexpected text: %s", got)
	}
}

func TestVisible(t *testing.T) {
	if got := Visible("\tx  "); got != "→x··" {
		t.Fatalf("Visible=%q", got)
	}
	if got := Visible("a\r"); got != "a␍" {
		t.Fatalf("Visible=%q", got)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for i, tc := range tests {
		if got := FormatFileSize(tc.in); got != tc.want {
			t.Fatalf("case %d: got %q want %q", i, got, tc.want)
		}
	}
}
