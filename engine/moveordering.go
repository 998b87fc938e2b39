package engine

import (
	"golang.org/x/exp/slices"

	"chess-core/chess"
)

// rootMove is one candidate move at the search root, scored by the value
// of whatever it captures (0 for quiet moves).
type rootMove struct {
	piece        *chess.Piece
	to           chess.Square
	captureValue int
}

// scoredRootMoves enumerates every legal move for side and orders captures
// of the most valuable victims first. The sort is stable so that quiet
// moves keep piece traversal order, which is what makes the root's
// first-maximal tie break deterministic. Deeper plies do not re-sort.
func scoredRootMoves(b *chess.Board, side chess.Color) []rootMove {
	moves := make([]rootMove, 0, 32)
	for _, p := range b.PiecesOf(side) {
		for _, to := range b.LegalMoves(p) {
			value := 0
			if victim := b.PieceAt(to); victim != nil && victim.Color != side {
				value = PieceValue[victim.Type]
			}
			moves = append(moves, rootMove{piece: p, to: to, captureValue: value})
		}
	}
	slices.SortStableFunc(moves, func(a, b rootMove) bool {
		return a.captureValue > b.captureValue
	})
	return moves
}
