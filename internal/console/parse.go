package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/checkers"
)

var (
	ErrTokenCount = errors.New("expected four numbers: fromRow fromCol toRow toCol")
	ErrNotInteger = errors.New("not an integer")
	ErrOutOfRange = errors.New("coordinate out of range 0-7")
)

// ParseMove reads "fromRow fromCol toRow toCol" (0-based, whitespace
// separated). It only checks syntax and range; legality is up to the game.
func ParseMove(line string) (from, to checkers.Square, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return from, to, fmt.Errorf("%w: got %d", ErrTokenCount, len(fields))
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return from, to, fmt.Errorf("%w: %q", ErrNotInteger, f)
		}
		if n < 0 || n >= checkers.Size {
			return from, to, fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		v[i] = n
	}
	return checkers.Sq(v[0], v[1]), checkers.Sq(v[2], v[3]), nil
}
