package checkers

import (
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	Size       = 8
	NumSquares = Size * Size

	// Rows each side fills in the opening position.
	startRows = 3
)

func indexOf(row, col int) int { return row*Size + col }
func rowOf(sq int) int         { return sq / Size }
func colOf(sq int) int         { return sq % Size }

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// InBounds reports whether (row, col) lies on the 8x8 grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsDark reports whether pieces may stand on (row, col).
func IsDark(row, col int) bool { return (row+col)%2 == 1 }

// forwardDir: White moves toward row 0, Black toward row 7.
func forwardDir(p Player) int {
	switch p {
	case White:
		return -1
	case Black:
		return +1
	}
	return 0
}

// PromotionRow is the opponent's back rank for p.
func PromotionRow(p Player) int {
	if p == White {
		return 0
	}
	return Size - 1
}

const initialBoardString = `.m.m.m.m
m.m.m.m.
.m.m.m.m
........
........
M.M.M.M.
.M.M.M.M
M.M.M.M.`

// NewInitialBoard returns the standard opening position.
func NewInitialBoard() Board {
	var b Board
	b.Initialize()
	return b
}

// Initialize resets b to the opening position: Black Men on the dark squares
// of rows 0-2, White Men on rows 5-7.
func (b *Board) Initialize() {
	*b = Board{}
	lines := strings.Split(initialBoardString, "\n")
	if len(lines) != Size {
		panic("initialBoardString must have 8 rows")
	}
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Size {
			panic("initialBoardString must have 8 columns")
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			pc, ok := pieceFromChar(ch)
			if !ok || !IsDark(r, c) {
				panic("bad square in initialBoardString: " + string(ch))
			}
			b.Squares[indexOf(r, c)] = pc
		}
	}
}

// Clone returns an independent copy. Board is a value type, so this is a
// plain array copy.
func (b *Board) Clone() Board {
	return *b
}

func (b *Board) At(row, col int) Piece {
	if !InBounds(row, col) {
		return 0
	}
	return b.Squares[indexOf(row, col)]
}

// Set places pc on (row, col). Light squares and off-board coordinates are ignored.
func (b *Board) Set(row, col int, pc Piece) {
	if !InBounds(row, col) || !IsDark(row, col) {
		return
	}
	b.Squares[indexOf(row, col)] = pc
}

func (b *Board) Count(p Player) int {
	n := 0
	for _, pc := range b.Squares {
		if pc != 0 && pc.Owner() == p {
			n++
		}
	}
	return n
}

// View exposes kind and owner of every square for rendering.
func (b *Board) View() [Size][Size]SquareView {
	var v [Size][Size]SquareView
	for sq, pc := range b.Squares {
		v[rowOf(sq)][colOf(sq)] = SquareView{Kind: pc.Kind(), Owner: pc.Owner()}
	}
	return v
}

// IsMoveLegal checks a single step or a single jump for player.
// The origin must hold one of player's pieces and the destination must be an
// empty square on the board. A step is one diagonal square; a jump is two
// diagonal squares over an opponent piece. Men only go forward; Kings go
// either way.
func (b *Board) IsMoveLegal(fromRow, fromCol, toRow, toCol int, player Player) bool {
	if !InBounds(fromRow, fromCol) || !InBounds(toRow, toCol) {
		return false
	}
	pc := b.At(fromRow, fromCol)
	if pc == 0 || pc.Owner() != player {
		return false
	}
	if b.At(toRow, toCol) != 0 {
		return false
	}

	dr, dc := toRow-fromRow, toCol-fromCol
	if abs(dr) != abs(dc) {
		return false
	}
	if !pc.IsKing() && dr*forwardDir(player) <= 0 {
		return false
	}

	switch abs(dr) {
	case 1:
		return true
	case 2:
		mid := b.At(fromRow+dr/2, fromCol+dc/2)
		return mid != 0 && mid.Owner() == player.Opponent()
	}
	return false
}

// ApplyMove relocates the piece and crowns a Man that reaches its
// promotion row. It does not validate; callers check IsMoveLegal first.
func (b *Board) ApplyMove(fromRow, fromCol, toRow, toCol int) {
	from := indexOf(fromRow, fromCol)
	pc := b.Squares[from]
	b.Squares[from] = 0
	if pc.Kind() == KindMan && toRow == PromotionRow(pc.Owner()) {
		pc = MakePiece(pc.Owner(), KindKing)
	}
	b.Squares[indexOf(toRow, toCol)] = pc
}

// ApplyCapture removes the jumped piece.
func (b *Board) ApplyCapture(midRow, midCol int) {
	b.Squares[indexOf(midRow, midCol)] = 0
}
