package engine

import "chess-core/chess"

// PieceValue holds the material weight per piece type in centipawns,
// indexed by chess.PieceType. The king's large value stands in for a real
// mate score: losing it dominates any material swing.
var PieceValue = [7]int{
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   10000,
}

// Evaluate returns the static material balance of the position from side's
// perspective: the sum of side's piece values minus the opponent's.
func Evaluate(b *chess.Board, side chess.Color) int {
	score := 0
	for _, p := range b.Pieces() {
		if p.Color == side {
			score += PieceValue[p.Type]
		} else {
			score -= PieceValue[p.Type]
		}
	}
	return score
}
