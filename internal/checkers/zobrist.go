package checkers

import "sync"

const zobristKinds = 3 // PieceKind in [1..2]; 0 unused

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq int) uint64 {
	if pc == 0 || sq < 0 || sq >= NumSquares {
		return 0
	}
	var sideIdx int
	switch pc.Owner() {
	case White:
		sideIdx = 0
	case Black:
		sideIdx = 1
	default:
		return 0
	}
	k := int(pc.Kind())
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	return zobristPieces[sideIdx][k][sq]
}

// Hash is the Zobrist hash of the piece placement.
func (b *Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		h ^= pieceHashKey(pc, sq)
	}
	return h
}

// Hash folds the side to move into the board hash.
func (p *Position) Hash() uint64 {
	h := p.Board.Hash()
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}

// HashAfter updates h incrementally for m applied to b, without the side
// key. b is the board before the move.
func HashAfter(h uint64, b *Board, m Move) uint64 {
	initZobrist()

	from := m.From.Index()
	pc := b.Squares[from]
	h ^= pieceHashKey(pc, from)
	for _, c := range m.Captured {
		h ^= pieceHashKey(b.Squares[c.Index()], c.Index())
	}
	to := m.To()
	landed := pc
	if pc.Kind() == KindMan && to.Row == PromotionRow(pc.Owner()) {
		landed = MakePiece(pc.Owner(), KindKing)
	}
	h ^= pieceHashKey(landed, to.Index())
	return h
}
