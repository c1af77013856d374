package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checkers/internal/checkers"
)

func man(p checkers.Player) checkers.Piece  { return checkers.MakePiece(p, checkers.KindMan) }
func king(p checkers.Player) checkers.Piece { return checkers.MakePiece(p, checkers.KindKing) }

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	b := checkers.NewInitialBoard()
	assert.Equal(t, 0, Evaluate(b, checkers.White))
	assert.Equal(t, 0, Evaluate(b, checkers.Black))
}

func TestEvaluatePieceTerms(t *testing.T) {
	cases := []struct {
		name  string
		setup func(b *checkers.Board)
		white int
	}{
		{
			name:  "lone man is exposed",
			setup: func(b *checkers.Board) { b.Set(5, 2, man(checkers.White)) },
			white: 5 + 2 - 2,
		},
		{
			name: "protected and exposed",
			setup: func(b *checkers.Board) {
				b.Set(5, 2, man(checkers.White))
				b.Set(6, 1, man(checkers.White))
			},
			white: (5 + 2 + 3 - 2) + (5 + 1 - 2),
		},
		{
			name: "fully covered man",
			setup: func(b *checkers.Board) {
				b.Set(5, 2, man(checkers.White))
				b.Set(6, 1, man(checkers.White))
				b.Set(6, 3, man(checkers.White))
				b.Set(7, 0, man(checkers.White))
				b.Set(7, 2, man(checkers.White))
				b.Set(7, 4, man(checkers.White))
			},
			white: (5 + 2 + 3) + (5 + 1 + 3) + (5 + 1 + 3) + 5 + 5 + 5,
		},
		{
			name:  "king on back rank has no rear",
			setup: func(b *checkers.Board) { b.Set(7, 0, king(checkers.White)) },
			white: 10,
		},
		{
			name:  "black king uses black rear",
			setup: func(b *checkers.Board) { b.Set(3, 2, king(checkers.Black)) },
			white: -(10 - 2),
		},
		{
			name: "enemy piece behind is neither cover nor gap",
			setup: func(b *checkers.Board) {
				b.Set(3, 0, man(checkers.White))
				b.Set(4, 1, man(checkers.Black))
			},
			white: (5 + 4) - (5 + 4 - 2),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b checkers.Board
			tc.setup(&b)
			assert.Equal(t, tc.white, Evaluate(b, checkers.White))
			assert.Equal(t, -tc.white, Evaluate(b, checkers.Black))
		})
	}
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	b := checkers.NewInitialBoard()
	side := checkers.White
	for ply := 0; ply < 30; ply++ {
		moves := checkers.GenerateMoves(b, side)
		if len(moves) == 0 {
			break
		}
		b = moves[(ply*5)%len(moves)].Board
		assert.Equal(t, -Evaluate(b, checkers.White), Evaluate(b, checkers.Black), "ply %d", ply)
		side = side.Opponent()
	}
}
