package margin

import (
	"strings"
	"testing"
)

func FuzzTrim(f *testing.F) {
	f.Add("", '|')
	f.Add("\n  |a\n  |b\n", '|')
	f.Add("\r\n\t#x\r\n", '#')
	f.Add("x|y\n\n", '|')
	f.Fuzz(func(t *testing.T, in string, marker rune) {
		out := TrimWith(in, marker)
		if len(out) > len(in) {
			t.Fatalf("output grew: %q -> %q", in, out)
		}
		if marker == DefaultMarker && out != Trim(in) {
			t.Fatalf("Trim and TrimWith disagree on %q", in)
		}

		var kept []string
		for _, r := range NewTrimmer(marker).Analyze(in) {
			if r.Status != Dropped {
				kept = append(kept, r.Result)
			}
		}
		if joined := strings.Join(kept, "\n"); joined != out {
			t.Fatalf("Analyze disagrees with TrimWith on %q: %q vs %q", in, joined, out)
		}
	})
}
