package console

import (
	"fmt"
	"io"
	"strings"

	"checkers/internal/checkers"
)

// Render draws b with row and column indices. Men are w/b, Kings W/B.
func Render(w io.Writer, b checkers.Board) error {
	view := b.View()
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < checkers.Size; c++ {
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteByte('\n')
	for r, row := range view {
		fmt.Fprintf(&sb, "%2d ", r)
		for _, sq := range row {
			sb.WriteByte(' ')
			sb.WriteByte(squareChar(sq))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func squareChar(sq checkers.SquareView) byte {
	var ch byte
	switch sq.Owner {
	case checkers.White:
		ch = 'w'
	case checkers.Black:
		ch = 'b'
	default:
		return '.'
	}
	if sq.Kind == checkers.KindKing {
		ch -= 'a' - 'A'
	}
	return ch
}
