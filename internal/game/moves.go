package game

import (
	"context"
	"errors"
	"fmt"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

var (
	ErrNoPiece         = errors.New("no piece on that square")
	ErrNotYourPiece    = errors.New("that piece is not yours")
	ErrIllegalMove     = errors.New("illegal move")
	ErrCaptureRequired = errors.New("captures are mandatory and must be completed")
	ErrZeroDepth       = errors.New("search depth 0 does not choose a move")
)

// LegalMoves lists every ply available to the side to move.
func (g *Game) LegalMoves() []checkers.Successor {
	return checkers.GenerateMoves(g.Board, g.ToMove)
}

// Over reports whether the side to move has no legal ply.
func (g *Game) Over() bool {
	return !checkers.HasMoves(g.Board, g.ToMove)
}

// ResolveHumanMove maps a from/to pair typed by the human onto a generated
// ply. A capture chain is named by its origin and final landing square; when
// several chains share both, the first generated one is taken.
func (g *Game) ResolveHumanMove(from, to checkers.Square) (checkers.Successor, error) {
	if !from.Valid() || !to.Valid() {
		return checkers.Successor{}, fmt.Errorf("%w: %v to %v is off the board", ErrIllegalMove, from, to)
	}
	pc := g.Board.At(from.Row, from.Col)
	if pc == 0 {
		return checkers.Successor{}, fmt.Errorf("%w: %v", ErrNoPiece, from)
	}
	if pc.Owner() != g.ToMove {
		return checkers.Successor{}, fmt.Errorf("%w: %v", ErrNotYourPiece, from)
	}

	moves := g.LegalMoves()
	for _, s := range moves {
		if s.Move.From == from && s.Move.To() == to {
			return s, nil
		}
	}
	// A legal step or jump that was not generated lost to a mandatory capture
	// elsewhere, or is a jump that must be continued.
	if g.Board.IsMoveLegal(from.Row, from.Col, to.Row, to.Col, g.ToMove) {
		return checkers.Successor{}, fmt.Errorf("%w: %v to %v", ErrCaptureRequired, from, to)
	}
	return checkers.Successor{}, fmt.Errorf("%w: %v to %v", ErrIllegalMove, from, to)
}

// ComputerMove searches for the side to move and applies the result.
// A result with Found=false means the side to move has no ply; the game is
// left unchanged.
func (g *Game) ComputerMove(ctx context.Context, e *engine.Engine) (engine.SearchResult, error) {
	res, err := e.Search(ctx, g.Board, g.ToMove)
	if err != nil {
		return res, err
	}
	if !res.Found {
		return res, nil
	}
	if len(res.Move.Path) == 0 {
		return res, ErrZeroDepth
	}
	g.Apply(checkers.Successor{Move: res.Move, Board: res.Board})
	return res, nil
}
