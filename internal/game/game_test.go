package game

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

func man(p checkers.Player) checkers.Piece { return checkers.MakePiece(p, checkers.KindMan) }

func TestNewStandard(t *testing.T) {
	g := NewStandard()
	_, err := uuid.Parse(g.ID)
	require.NoError(t, err)
	assert.Equal(t, checkers.White, g.ToMove)
	assert.Equal(t, checkers.NewInitialBoard(), g.Board)
	assert.Len(t, g.History, 1)
	assert.False(t, g.Over())
	assert.NotEqual(t, g.ID, NewStandard().ID)
}

func TestResolveHumanMove(t *testing.T) {
	g := NewStandard()

	s, err := g.ResolveHumanMove(checkers.Sq(5, 2), checkers.Sq(4, 3))
	require.NoError(t, err)
	assert.Equal(t, man(checkers.White), s.Board.At(4, 3))
	assert.Equal(t, checkers.NewInitialBoard(), g.Board, "resolving must not apply")

	cases := []struct {
		name     string
		from, to checkers.Square
		want     error
	}{
		{"empty origin", checkers.Sq(4, 3), checkers.Sq(3, 4), ErrNoPiece},
		{"opponent piece", checkers.Sq(2, 1), checkers.Sq(3, 2), ErrNotYourPiece},
		{"blocked", checkers.Sq(6, 1), checkers.Sq(5, 2), ErrIllegalMove},
		{"backward", checkers.Sq(5, 2), checkers.Sq(6, 3), ErrIllegalMove},
		{"off board", checkers.Sq(5, 0), checkers.Sq(4, -1), ErrIllegalMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.ResolveHumanMove(tc.from, tc.to)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResolveHumanMoveCaptureRules(t *testing.T) {
	var b checkers.Board
	b.Set(5, 2, man(checkers.White))
	b.Set(4, 3, man(checkers.Black))
	b.Set(2, 5, man(checkers.Black))
	b.Set(5, 6, man(checkers.White))
	g := New(b, checkers.White)

	_, err := g.ResolveHumanMove(checkers.Sq(5, 6), checkers.Sq(4, 7))
	assert.ErrorIs(t, err, ErrCaptureRequired, "step while a capture exists")

	_, err = g.ResolveHumanMove(checkers.Sq(5, 2), checkers.Sq(3, 4))
	assert.ErrorIs(t, err, ErrCaptureRequired, "chain stopped early")

	s, err := g.ResolveHumanMove(checkers.Sq(5, 2), checkers.Sq(1, 6))
	require.NoError(t, err)
	assert.Len(t, s.Move.Captured, 2)
	assert.Equal(t, 0, s.Board.Count(checkers.Black))
}

func TestApplyTracksHistory(t *testing.T) {
	g := NewStandard()
	created := g.UpdatedAt

	s, err := g.ResolveHumanMove(checkers.Sq(5, 2), checkers.Sq(4, 3))
	require.NoError(t, err)
	g.Apply(s)

	assert.Equal(t, checkers.Black, g.ToMove)
	assert.Equal(t, 1, g.Plies)
	assert.Len(t, g.History, 2)
	assert.Equal(t, 1, g.Seen())
	assert.False(t, g.UpdatedAt.Before(created))
	pos := g.Position()
	assert.Equal(t, pos.Hash(), g.History[1])
}

func TestComputerMove(t *testing.T) {
	g := NewStandard()
	e := engine.NewEngine(engine.SearchConfig{MaxDepth: 2})

	res, err := g.ComputerMove(context.Background(), e)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, res.Board, g.Board)
	assert.Equal(t, checkers.Black, g.ToMove)
}

func TestComputerMoveWithoutPly(t *testing.T) {
	var b checkers.Board
	b.Set(3, 4, man(checkers.White))
	g := New(b, checkers.Black)
	require.True(t, g.Over())

	res, err := g.ComputerMove(context.Background(), engine.NewEngine(engine.DefaultSearchConfig()))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, b, g.Board)
	assert.Equal(t, 0, g.Plies)
}

func TestComputerMoveRejectsZeroDepth(t *testing.T) {
	g := NewStandard()
	_, err := g.ComputerMove(context.Background(), engine.NewEngine(engine.SearchConfig{MaxDepth: 0}))
	assert.ErrorIs(t, err, ErrZeroDepth)
	assert.Equal(t, 0, g.Plies)
}
