package checkers

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPosition = errors.New("invalid position")

// Position = board + side to move.
type Position struct {
	Board      Board
	SideToMove Player
}

var charToPiece = map[rune]Piece{
	'm': MakePiece(Black, KindMan),
	'k': MakePiece(Black, KindKing),
	'M': MakePiece(White, KindMan),
	'K': MakePiece(White, KindKing),
}

func pieceFromChar(ch rune) (Piece, bool) {
	pc, ok := charToPiece[ch]
	return pc, ok
}

func pieceToChar(pc Piece) rune {
	for ch, v := range charToPiece {
		if v == pc {
			return ch
		}
	}
	return '.'
}

// Encode writes 8 ranks separated by '/', row 0 first. Digits compress
// runs of empty squares.
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			pc := b.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// Encode appends " w" or " b" for the side to move.
func (p *Position) Encode() string {
	side := "w"
	if p.SideToMove == Black {
		side = "b"
	}
	return p.Board.Encode() + " " + side
}

// DecodeBoard parses the output of Board.Encode. '.' is accepted for a
// single empty square.
func DecodeBoard(s string) (Board, error) {
	var b Board
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidPosition, Size, len(rows))
	}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Size {
				return Board{}, fmt.Errorf("%w: rank %d too long", ErrInvalidPosition, r)
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := pieceFromChar(ch)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown piece %q", ErrInvalidPosition, ch)
			}
			if !IsDark(r, c) {
				return Board{}, fmt.Errorf("%w: piece on light square (%d,%d)", ErrInvalidPosition, r, c)
			}
			b.Squares[indexOf(r, c)] = pc
			c++
		}
		if c != Size {
			return Board{}, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidPosition, r, c)
		}
	}
	return b, nil
}

// DecodePosition parses "<board> <w|b>". The side defaults to White when omitted.
func DecodePosition(s string) (*Position, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return nil, ErrInvalidPosition
	}
	b, err := DecodeBoard(parts[0])
	if err != nil {
		return nil, err
	}
	stm := White
	if len(parts) == 2 {
		switch parts[1] {
		case "w":
		case "b":
			stm = Black
		default:
			return nil, fmt.Errorf("%w: side %q", ErrInvalidPosition, parts[1])
		}
	}
	return &Position{Board: b, SideToMove: stm}, nil
}
