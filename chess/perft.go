package chess

// Perft counts the leaf nodes of the legal move tree to the given depth
// with toMove playing first. Used to validate move generation against
// reference generators.
func Perft(b *Board, toMove Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, p := range b.PiecesOf(toMove) {
		for _, to := range b.LegalMoves(p) {
			if depth == 1 {
				nodes++
				continue
			}
			child := b.Clone()
			child.ApplyMove(child.PieceByID(p.ID), to)
			nodes += Perft(child, toMove.Opposite(), depth-1)
		}
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts, keyed by the move in
// coordinate notation.
func PerftDivide(b *Board, toMove Color, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	for _, p := range b.PiecesOf(toMove) {
		for _, to := range b.LegalMoves(p) {
			child := b.Clone()
			m := child.ApplyMove(child.PieceByID(p.ID), to)
			div[m.String()] = Perft(child, toMove.Opposite(), depth-1)
		}
	}
	return div
}
