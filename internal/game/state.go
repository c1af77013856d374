package game

import (
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
)

// Game is the authoritative state of one human-vs-computer session.
// Only Apply replaces Board.
type Game struct {
	ID        string
	Board     checkers.Board
	ToMove    checkers.Player
	History   []uint64 // position hashes, oldest first, current last
	Plies     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(b checkers.Board, toMove checkers.Player) *Game {
	now := time.Now()
	g := &Game{
		ID:        uuid.NewString(),
		Board:     b,
		ToMove:    toMove,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.History = append(g.History, g.hash())
	return g
}

// NewStandard starts from the opening position with White to move.
func NewStandard() *Game {
	return New(checkers.NewInitialBoard(), checkers.White)
}

func FromPosition(pos *checkers.Position) *Game {
	return New(pos.Board, pos.SideToMove)
}

func (g *Game) Position() checkers.Position {
	return checkers.Position{Board: g.Board, SideToMove: g.ToMove}
}

func (g *Game) hash() uint64 {
	pos := g.Position()
	return pos.Hash()
}

// Seen counts how often the current position has occurred, itself included.
func (g *Game) Seen() int {
	h := g.hash()
	n := 0
	for _, x := range g.History {
		if x == h {
			n++
		}
	}
	return n
}

// Apply makes s the new board and passes the turn.
func (g *Game) Apply(s checkers.Successor) {
	g.Board = s.Board
	g.ToMove = g.ToMove.Opponent()
	g.Plies++
	g.UpdatedAt = time.Now()
	g.History = append(g.History, g.hash())
}
