package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInitialBoard(t *testing.T) {
	b := NewInitialBoard()
	assert.Equal(t, "1m1m1m1m/m1m1m1m1/1m1m1m1m/8/8/M1M1M1M1/1M1M1M1M/M1M1M1M1", b.Encode())
}

func TestDecodeRoundTrip(t *testing.T) {
	b := NewInitialBoard()
	b.ApplyMove(5, 2, 4, 3)
	b.Set(0, 1, king(White))
	b.Set(7, 2, king(Black))

	pos := &Position{Board: b, SideToMove: Black}
	decoded, err := DecodePosition(pos.Encode())
	require.NoError(t, err)
	assert.Equal(t, pos.Board, decoded.Board)
	assert.Equal(t, Black, decoded.SideToMove)
}

func TestDecodeAcceptsInitialBoardString(t *testing.T) {
	_, err := DecodeBoard(initialBoardString)
	require.Error(t, err, "newlines are not rank separators")

	b, err := DecodeBoard(".m.m.m.m/m.m.m.m./.m.m.m.m/......../......../M.M.M.M./.M.M.M.M/M.M.M.M.")
	require.NoError(t, err)
	assert.Equal(t, NewInitialBoard(), b)
}

func TestDecodePositionDefaultsToWhite(t *testing.T) {
	pos, err := DecodePosition("8/8/8/8/8/8/8/8")
	require.NoError(t, err)
	assert.Equal(t, White, pos.SideToMove)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	for _, s := range []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/9",
		"8/8/8/8/8/8/8/7",
		"8/8/8/8/8/8/8/x7",
		"m7/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8 w extra",
	} {
		_, err := DecodePosition(s)
		assert.ErrorIsf(t, err, ErrInvalidPosition, "input %q", s)
	}
}
