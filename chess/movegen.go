package chess

// Fixed offset sets, {rank, file} deltas.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, -1}, {1, 0}, {1, 1},
	{0, -1}, {0, 1},
	{-1, -1}, {-1, 0}, {-1, 1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// pawnDir is the forward rank delta for each color.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// pawnStartRank is the rank pawns double-step from.
func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

// PseudoLegalMoves returns the destinations reachable by p under piece
// geometry and occupancy alone, ignoring whether the mover's own king would
// be left in check. Castling is not included here; it is offered by
// LegalMoves once eligibility holds.
func (b *Board) PseudoLegalMoves(p *Piece) []Square {
	if p == nil {
		return nil
	}
	switch p.Type {
	case Pawn:
		return b.pawnMoves(p)
	case Knight:
		return b.stepMoves(p, knightOffsets)
	case King:
		return b.stepMoves(p, kingOffsets)
	case Rook:
		return b.slideMoves(p, rookDirs[:])
	case Bishop:
		return b.slideMoves(p, bishopDirs[:])
	case Queen:
		return append(b.slideMoves(p, rookDirs[:]), b.slideMoves(p, bishopDirs[:])...)
	default:
		return nil
	}
}

func (b *Board) pawnMoves(p *Piece) []Square {
	moves := make([]Square, 0, 4)
	dir := pawnDir(p.Color)

	one := Square{p.Square.Rank + dir, p.Square.File}
	if one.InBounds() && b.PieceAt(one) == nil {
		moves = append(moves, one)
		two := Square{p.Square.Rank + 2*dir, p.Square.File}
		if p.Square.Rank == pawnStartRank(p.Color) && two.InBounds() && b.PieceAt(two) == nil {
			moves = append(moves, two)
		}
	}
	for _, df := range [2]int{-1, 1} {
		diag := Square{p.Square.Rank + dir, p.Square.File + df}
		if !diag.InBounds() {
			continue
		}
		if victim := b.PieceAt(diag); victim != nil && victim.Color != p.Color {
			moves = append(moves, diag)
		}
	}
	return moves
}

func (b *Board) stepMoves(p *Piece, offsets [8][2]int) []Square {
	moves := make([]Square, 0, 8)
	for _, off := range offsets {
		to := Square{p.Square.Rank + off[0], p.Square.File + off[1]}
		if !to.InBounds() {
			continue
		}
		if occ := b.PieceAt(to); occ != nil && occ.Color == p.Color {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

func (b *Board) slideMoves(p *Piece, dirs [][2]int) []Square {
	moves := make([]Square, 0, 14)
	for _, dir := range dirs {
		to := Square{p.Square.Rank + dir[0], p.Square.File + dir[1]}
		for to.InBounds() {
			occ := b.PieceAt(to)
			if occ == nil {
				moves = append(moves, to)
				to = Square{to.Rank + dir[0], to.File + dir[1]}
				continue
			}
			if occ.Color != p.Color {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// IsSquareAttacked reports whether any piece of color by attacks sq. Pawn
// attacks are the two forward diagonals regardless of occupancy; forward
// pushes never attack. Other pieces attack their pseudo-legal destinations.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	for _, p := range b.pieces {
		if p.Color != by {
			continue
		}
		if p.Type == Pawn {
			dir := pawnDir(by)
			if sq.Rank == p.Square.Rank+dir &&
				(sq.File == p.Square.File-1 || sq.File == p.Square.File+1) {
				return true
			}
			continue
		}
		for _, to := range b.PseudoLegalMoves(p) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// LegalMoves filters the pseudo-legal destinations of p down to moves that
// do not leave p's own king attacked, by trying each one on a clone. For an
// eligible unmoved king the castling destinations are offered as well; the
// rook relocation itself happens inside ApplyMove.
func (b *Board) LegalMoves(p *Piece) []Square {
	if p == nil {
		return nil
	}
	moves := make([]Square, 0, 8)
	for _, to := range b.PseudoLegalMoves(p) {
		trial := b.Clone()
		trial.ApplyMove(trial.PieceByID(p.ID), to)
		if !trial.InCheck(p.Color) {
			moves = append(moves, to)
		}
	}
	if p.Type == King && !p.Moved {
		if b.CanCastleKingside(p.Color) {
			moves = append(moves, Square{p.Square.Rank, 6})
		}
		if b.CanCastleQueenside(p.Color) {
			moves = append(moves, Square{p.Square.Rank, 2})
		}
	}
	return moves
}

// HasLegalMoves reports whether color has at least one legal move.
func (b *Board) HasLegalMoves(c Color) bool {
	for _, p := range b.PiecesOf(c) {
		if len(b.LegalMoves(p)) > 0 {
			return true
		}
	}
	return false
}

// CanCastleKingside reports short-castle eligibility for c: king and h-rook
// unmoved, the squares between them empty, and none of the squares the king
// stands on or passes through attacked by the opponent.
func (b *Board) CanCastleKingside(c Color) bool {
	return b.canCastle(c, 7, []int{5, 6}, []int{4, 5, 6})
}

// CanCastleQueenside reports long-castle eligibility for c. The b-file
// square must be empty but may be attacked; the king only crosses d and c.
func (b *Board) CanCastleQueenside(c Color) bool {
	return b.canCastle(c, 0, []int{1, 2, 3}, []int{4, 3, 2})
}

func homeRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func (b *Board) canCastle(c Color, rookFile int, emptyFiles, kingPath []int) bool {
	rank := homeRank(c)
	king := b.King(c)
	if king == nil || king.Moved || king.Square != (Square{rank, 4}) {
		return false
	}
	rook := b.PieceAt(Square{rank, rookFile})
	if rook == nil || rook.Type != Rook || rook.Color != c || rook.Moved {
		return false
	}
	for _, f := range emptyFiles {
		if b.PieceAt(Square{rank, f}) != nil {
			return false
		}
	}
	opp := c.Opposite()
	for _, f := range kingPath {
		if b.IsSquareAttacked(Square{rank, f}, opp) {
			return false
		}
	}
	return true
}
