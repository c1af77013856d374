package checkers

import (
	"fmt"
	"strings"
)

type Player int8

const (
	NoPlayer Player = -1
	White    Player = 0
	Black    Player = 1
)

func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opponent returns the other side; NoPlayer stays NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoPlayer
	}
}

type PieceKind int8

const (
	KindNone PieceKind = iota
	KindMan
	KindKing
)

func (k PieceKind) String() string {
	switch k {
	case KindMan:
		return "Man"
	case KindKing:
		return "King"
	default:
		return "None"
	}
}

type Piece int8 // 0 = empty; >0 White; <0 Black; abs = PieceKind

func MakePiece(owner Player, kind PieceKind) Piece {
	if kind == KindNone || owner == NoPlayer {
		return 0
	}
	if owner == White {
		return Piece(kind)
	}
	return -Piece(kind)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Owner() Player {
	if p == 0 {
		return NoPlayer
	}
	if p > 0 {
		return White
	}
	return Black
}

func (p Piece) IsKing() bool { return p.Kind() == KindKing }

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Index() int { return indexOf(s.Row, s.Col) }

func (s Square) Valid() bool { return InBounds(s.Row, s.Col) }

func (s Square) String() string { return fmt.Sprintf("%d %d", s.Row, s.Col) }

type Board struct {
	Squares [NumSquares]Piece
}

// Move describes one ply: the origin, every landing square in order and
// every jumped square in order. A simple step has one landing and no captures.
type Move struct {
	From     Square   `json:"from"`
	Path     []Square `json:"path"`
	Captured []Square `json:"captured,omitempty"`
}

// To is the final landing square.
func (m Move) To() Square {
	if len(m.Path) == 0 {
		return m.From
	}
	return m.Path[len(m.Path)-1]
}

func (m Move) IsCapture() bool { return len(m.Captured) > 0 }

// String renders "5 2 - 4 3" for steps and "5 2 x 3 4 x 1 6" for chains.
func (m Move) String() string {
	sep := " - "
	if m.IsCapture() {
		sep = " x "
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	for _, s := range m.Path {
		sb.WriteString(sep)
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Successor pairs a move with the board it produces.
type Successor struct {
	Move  Move
	Board Board
}

// SquareView is the read-only per-square data handed to renderers.
type SquareView struct {
	Kind  PieceKind
	Owner Player
}
