package exec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nansierrors "github.com/0x4ndy/nansi/internal/errors"
)

func TestExpandArg(t *testing.T) {
	t.Setenv("NANSI_TEST", "value")
	t.Setenv("NANSI_OTHER", "other")

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "no references",
			arg:  "plain-argument",
			want: "plain-argument",
		},
		{
			name: "empty argument",
			arg:  "",
			want: "",
		},
		{
			name: "single reference",
			arg:  "{NANSI_TEST}",
			want: "value",
		},
		{
			name: "reference embedded in text",
			arg:  "pre-{NANSI_TEST}-post",
			want: "pre-value-post",
		},
		{
			name: "two references",
			arg:  "{NANSI_TEST}:{NANSI_OTHER}",
			want: "value:other",
		},
		{
			name: "repeated reference replaced everywhere",
			arg:  "{NANSI_TEST}/{NANSI_TEST}",
			want: "value/value",
		},
		{
			name: "backslash-escaped opening brace is literal",
			arg:  `\{NANSI_TEST}`,
			want: `\{NANSI_TEST}`,
		},
		{
			name: "dollar-escaped opening brace is literal",
			arg:  "${NANSI_TEST}",
			want: "${NANSI_TEST}",
		},
		{
			name: "stray closing brace is ignored",
			arg:  "a}b",
			want: "a}b",
		},
		{
			name: "closing brace at position zero is ignored",
			arg:  "}abc",
			want: "}abc",
		},
		{
			name: "unclosed reference passes through unchanged",
			arg:  "{NANSI_TEST",
			want: "{NANSI_TEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandArg(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandArgUndefinedVariable(t *testing.T) {
	_, err := ExpandArg("{NANSI_DEFINITELY_UNDEFINED}")
	require.Error(t, err)

	var nerr *nansierrors.Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, nansierrors.ErrCodeUndefinedVar, nerr.Code)
	assert.Contains(t, nerr.Message, "NANSI_DEFINITELY_UNDEFINED")
}

func TestExpandArgUnbalancedBraces(t *testing.T) {
	t.Setenv("NANSI_TEST", "value")

	_, err := ExpandArg("{NANSI_{TEST}")
	require.Error(t, err)

	var nerr *nansierrors.Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, nansierrors.ErrCodeUnbalancedBraces, nerr.Code)
}

// An escaped delimiter inside an open reference is dropped from the
// collected name rather than recorded literally. The name "A$B" below is
// looked up in the environment, but the literal "{A$B}" never occurs in
// the argument, so the replacement is a no-op.
func TestExpandArgEscapedDelimiterInsideReference(t *testing.T) {
	t.Setenv("A$B", "value")

	got, err := ExpandArg("{A${B}")
	require.NoError(t, err)
	assert.Equal(t, "{A${B}", got)
}

func TestExpandArgEscapedDelimiterInsideReferenceUndefined(t *testing.T) {
	_, err := ExpandArg("{NANSI_A${NANSI_B}")
	require.Error(t, err)

	var nerr *nansierrors.Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, nansierrors.ErrCodeUndefinedVar, nerr.Code)
	assert.Contains(t, nerr.Message, "NANSI_A$NANSI_B")
}

// Substitution is two-pass: names are collected first, then replaced one
// by one as literal substrings. A value inserted by an earlier replacement
// that textually contains a later placeholder is rewritten again. This
// pins the documented behavior of the collect-then-replace design.
func TestExpandArgReplacementOrderQuirk(t *testing.T) {
	t.Setenv("NANSI_FIRST", "x{NANSI_SECOND}y")
	t.Setenv("NANSI_SECOND", "z")

	got, err := ExpandArg("{NANSI_FIRST} {NANSI_SECOND}")
	require.NoError(t, err)
	assert.Equal(t, "xzy z", got)
}

func TestExpandArgs(t *testing.T) {
	t.Setenv("NANSI_TEST", "value")

	t.Run("all arguments templated", func(t *testing.T) {
		got, err := expandArgs([]string{"-n", "{NANSI_TEST}", "literal"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-n", "value", "literal"}, got)
	})

	t.Run("failure aborts the vector", func(t *testing.T) {
		_, err := expandArgs([]string{"ok", "{NANSI_DEFINITELY_UNDEFINED}"})
		require.Error(t, err)
	})

	t.Run("empty vector", func(t *testing.T) {
		got, err := expandArgs(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
