package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("  5 2\t4 3 \n")
	require.NoError(t, err)
	assert.Equal(t, checkers.Sq(5, 2), from)
	assert.Equal(t, checkers.Sq(4, 3), to)
}

func TestParseMoveRejects(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrTokenCount},
		{"5 2 4", ErrTokenCount},
		{"5 2 4 3 1", ErrTokenCount},
		{"5,2,4,3", ErrTokenCount},
		{"a b c d", ErrNotInteger},
		{"5 2 4 3.0", ErrNotInteger},
		{"5 2 4 8", ErrOutOfRange},
		{"-1 2 4 3", ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, _, err := ParseMove(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
