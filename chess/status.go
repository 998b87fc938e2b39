package chess

// InCheck reports whether c's king square is attacked by the opposing side.
// A board with no king of that color is never in check.
func (b *Board) InCheck(c Color) bool {
	king := b.King(c)
	if king == nil {
		return false
	}
	return b.IsSquareAttacked(king.Square, c.Opposite())
}

// InCheckmate reports whether c is in check with no legal moves.
func (b *Board) InCheckmate(c Color) bool {
	return b.InCheck(c) && !b.HasLegalMoves(c)
}

// InStalemate reports whether c is not in check yet has no legal moves.
func (b *Board) InStalemate(c Color) bool {
	return !b.InCheck(c) && !b.HasLegalMoves(c)
}
