package checkers

var (
	kingDirs     = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	whiteManDirs = [][2]int{{-1, -1}, {-1, 1}}
	blackManDirs = [][2]int{{1, -1}, {1, 1}}
)

// directions returns the diagonals pc may travel along, in generation order.
func directions(pc Piece) [][2]int {
	if pc.IsKing() {
		return kingDirs
	}
	switch pc.Owner() {
	case White:
		return whiteManDirs
	case Black:
		return blackManDirs
	}
	return nil
}

// GenerateMoves lists every full-ply outcome for player.
// Captures are mandatory: when any jump exists only capture sequences are
// returned. A jump that can be continued is only offered in its extended
// form; each branch of a forking chain is a separate successor.
// Order is origin square row-major, then direction order, then chain branch.
func GenerateMoves(b Board, player Player) []Successor {
	var steps, jumps []Successor
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == 0 || pc.Owner() != player {
			continue
		}
		row, col := rowOf(sq), colOf(sq)
		genJumps(&b, row, col, player, Move{From: Sq(row, col)}, &jumps)
		if len(jumps) == 0 {
			genSteps(&b, row, col, player, &steps)
		}
	}
	if len(jumps) > 0 {
		return jumps
	}
	return steps
}

// Successors returns only the resulting boards of GenerateMoves.
func Successors(b Board, player Player) []Board {
	moves := GenerateMoves(b, player)
	out := make([]Board, len(moves))
	for i, s := range moves {
		out[i] = s.Board
	}
	return out
}

// HasMoves reports whether player can make any ply on b.
func HasMoves(b Board, player Player) bool {
	return len(GenerateMoves(b, player)) > 0
}

func genSteps(b *Board, row, col int, player Player, out *[]Successor) {
	for _, d := range directions(b.At(row, col)) {
		tr, tc := row+d[0], col+d[1]
		if !b.IsMoveLegal(row, col, tr, tc, player) {
			continue
		}
		nb := b.Clone()
		nb.ApplyMove(row, col, tr, tc)
		*out = append(*out, Successor{
			Move:  Move{From: Sq(row, col), Path: []Square{Sq(tr, tc)}},
			Board: nb,
		})
	}
}

// genJumps appends every capture chain that continues prefix from (row, col)
// and reports whether at least one jump was available.
// A Man that is crowned by a jump ends its ply on the crowning square.
func genJumps(b *Board, row, col int, player Player, prefix Move, out *[]Successor) bool {
	pc := b.At(row, col)
	found := false
	for _, d := range directions(pc) {
		mr, mc := row+d[0], col+d[1]
		tr, tc := row+2*d[0], col+2*d[1]
		if !b.IsMoveLegal(row, col, tr, tc, player) {
			continue
		}
		found = true

		nb := b.Clone()
		nb.ApplyMove(row, col, tr, tc)
		nb.ApplyCapture(mr, mc)
		mv := prefix.extend(Sq(tr, tc), Sq(mr, mc))

		crowned := !pc.IsKing() && nb.At(tr, tc).IsKing()
		if crowned || !genJumps(&nb, tr, tc, player, mv, out) {
			*out = append(*out, Successor{Move: mv, Board: nb})
		}
	}
	return found
}

// extend copies m so sibling branches never share backing arrays.
func (m Move) extend(landing, captured Square) Move {
	path := make([]Square, len(m.Path), len(m.Path)+1)
	copy(path, m.Path)
	caps := make([]Square, len(m.Captured), len(m.Captured)+1)
	copy(caps, m.Captured)
	return Move{
		From:     m.From,
		Path:     append(path, landing),
		Captured: append(caps, captured),
	}
}
