package margin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimStrict(t *testing.T) {
	out, err := TrimStrict("\n    |one\n\n    |two\n  ")
	require.NoError(t, err)
	assert.Equal(t, "one\n\ntwo", out)
}

func TestTrimStrictMissingMargin(t *testing.T) {
	_, err := TrimStrict("\n    |one\n    two\n    |three\n")
	require.Error(t, err)

	var missing *MissingMarginError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 3, missing.Line)
	assert.Equal(t, "    two", missing.Text)
	assert.Equal(t, "|", missing.Prefix)
	assert.Contains(t, err.Error(), "line 3")
}

func TestTrimStrictAgreesWithTrim(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\n  |a\n  |b\n",
		"\r\n\t|a\r\n\r\n\t|b\r\n",
	}
	for _, in := range inputs {
		out, err := TrimStrict(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, Trim(in), out, "input %q", in)
	}
}

func TestTrimmerTrimStrictCustomPrefix(t *testing.T) {
	tr := NewPrefixTrimmer("> ")
	out, err := tr.TrimStrict("\n  > quoted\n  > lines\n")
	require.NoError(t, err)
	assert.Equal(t, "quoted\nlines", out)

	_, err = tr.TrimStrict("  >tight")
	var missing *MissingMarginError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Line)
	assert.Equal(t, "> ", missing.Prefix)
}
