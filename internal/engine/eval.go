package engine

import "checkers/internal/checkers"

const (
	manValue  = 5
	kingValue = 10

	protectedBonus = 3
	exposedPenalty = 2
)

// Evaluate scores b from player's side: sum of player's piece values minus
// the opponent's. Each piece is valued from its own owner's point of view.
// There is no win/loss term; the score is usable at any depth.
func Evaluate(b checkers.Board, player checkers.Player) int {
	opp := player.Opponent()
	own, other := 0, 0
	for r := 0; r < checkers.Size; r++ {
		for c := 0; c < checkers.Size; c++ {
			pc := b.At(r, c)
			if pc == 0 {
				continue
			}
			switch pc.Owner() {
			case player:
				own += pieceScore(&b, pc, r, c)
			case opp:
				other += pieceScore(&b, pc, r, c)
			}
		}
	}
	return own - other
}

func pieceScore(b *checkers.Board, pc checkers.Piece, row, col int) int {
	side := pc.Owner()
	v := 0
	switch pc.Kind() {
	case checkers.KindMan:
		v = manValue + advance(side, row)
	case checkers.KindKing:
		v = kingValue
	}
	protected, exposed := rearCover(b, side, row, col)
	if protected {
		v += protectedBonus
	}
	if exposed {
		v -= exposedPenalty
	}
	return v
}

// advance is how far a Man has travelled toward its promotion row.
func advance(side checkers.Player, row int) int {
	if side == checkers.White {
		return checkers.Size - 1 - row
	}
	return row
}

// backward is the row step pointing back toward side's own back rank.
func backward(side checkers.Player) int {
	if side == checkers.White {
		return +1
	}
	return -1
}

// rearCover inspects the two backward diagonal neighbours. protected: a
// friendly piece stands on either; exposed: either is on the board and empty.
// Kings use the same rear as Men of their colour.
func rearCover(b *checkers.Board, side checkers.Player, row, col int) (protected, exposed bool) {
	r := row + backward(side)
	for _, c := range [2]int{col - 1, col + 1} {
		if !checkers.InBounds(r, c) {
			continue
		}
		pc := b.At(r, c)
		if pc == 0 {
			exposed = true
		} else if pc.Owner() == side {
			protected = true
		}
	}
	return protected, exposed
}
