package margin

// Status is the decision taken for one input line.
type Status int

const (
	// Trimmed lines carried the margin, which was removed.
	Trimmed Status = iota
	// Unmarked lines had no margin and pass through unchanged.
	Unmarked
	// Dropped lines were blank edge lines and are not part of the output.
	Dropped
)

func (s Status) String() string {
	switch s {
	case Trimmed:
		return "trimmed"
	case Unmarked:
		return "unmarked"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// LineReport describes what happened to a single input line.
type LineReport struct {
	Number   int // 1-based line number in the input
	Original string
	Result   string
	Status   Status
}

// Analyze reports the decision taken for every line of text using
// DefaultMarker.
func Analyze(text string) []LineReport {
	return Trimmer{}.Analyze(text)
}

// Analyze reports the decision taken for every line of text, in input order.
// Joining the Result of every report that is not Dropped with "\n" gives
// t.Trim(text).
func (t Trimmer) Analyze(text string) []LineReport {
	lines := SplitLines(text)
	first, last := bounds(lines)
	prefix := t.Prefix()

	reports := make([]LineReport, len(lines))
	for i, line := range lines {
		r := LineReport{Number: i + 1, Original: line}
		switch result, ok := cut(line, prefix); {
		case i < first || i >= last:
			r.Status = Dropped
		case ok:
			r.Result, r.Status = result, Trimmed
		default:
			r.Result, r.Status = line, Unmarked
		}
		reports[i] = r
	}
	return reports
}

// Counts tallies reports by status.
func Counts(reports []LineReport) map[Status]int {
	counts := make(map[Status]int, 3)
	for _, r := range reports {
		counts[r.Status]++
	}
	return counts
}
