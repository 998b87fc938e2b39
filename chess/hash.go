package chess

import (
	"math/rand"
	"sync"
)

// Per-(color, piece type, square) hash constants. Generated once per
// process from a fixed seed and immutable afterwards; regenerating them
// mid-search would invalidate every cached score.
var (
	hashOnce  sync.Once
	pieceKeys [2][7][8][8]uint64
)

func initHashKeys() {
	// Fixed seed for reproducibility in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for pt := 1; pt < 7; pt++ {
			for rank := 0; rank < 8; rank++ {
				for file := 0; file < 8; file++ {
					pieceKeys[c][pt][rank][file] = rnd.Uint64()
				}
			}
		}
	}
}

// Hash returns a 64-bit placement hash: the XOR of one constant per piece
// on the board. Side to move, castling rights, en passant and Moved flags
// are deliberately not folded in; the hash is a pure material/placement
// key for the search's transposition cache.
func (b *Board) Hash() uint64 {
	hashOnce.Do(initHashKeys)
	var key uint64
	for _, p := range b.pieces {
		key ^= pieceKeys[p.Color][p.Type][p.Square.Rank][p.Square.File]
	}
	return key
}
