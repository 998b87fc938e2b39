package chess

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Square is a board coordinate. Rank and File are both in [0,8);
// rank 0 is White's back rank, file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

// String returns the algebraic coordinate, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File), '1' + byte(s.Rank)})
}

// Piece is an identity-bearing piece value. ID is unique within one board
// lifetime and survives cloning; Moved is tracked only for castling
// eligibility.
type Piece struct {
	ID     int
	Type   PieceType
	Color  Color
	Square Square
	Moved  bool
}

// Move records an applied move for notification and history purposes.
// It carries no legality of its own.
type Move struct {
	From  Square
	To    Square
	Piece PieceType
}

func (m Move) String() string { return m.From.String() + m.To.String() }

// Board holds the piece collection for one game. At most one piece occupies
// a square and at most one king exists per color. A Board is either the
// live game state or a private search clone; the two never share pieces.
type Board struct {
	pieces []*Piece
	grid   [8][8]*Piece
	nextID int
}

// NewBoard returns a board populated with the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset repopulates the standard 32-piece starting layout with fresh IDs.
func (b *Board) Reset() {
	b.pieces = b.pieces[:0]
	b.grid = [8][8]*Piece{}
	b.nextID = 0

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.addPiece(backRank[file], White, Square{0, file})
		b.addPiece(Pawn, White, Square{1, file})
		b.addPiece(Pawn, Black, Square{6, file})
		b.addPiece(backRank[file], Black, Square{7, file})
	}
}

// addPiece places a new piece with the next free ID. The target square must
// be empty.
func (b *Board) addPiece(pt PieceType, c Color, sq Square) *Piece {
	p := &Piece{ID: b.nextID, Type: pt, Color: c, Square: sq}
	b.nextID++
	b.pieces = append(b.pieces, p)
	b.grid[sq.Rank][sq.File] = p
	return p
}

// PieceAt returns the occupant of sq, or nil if empty or out of bounds.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.grid[sq.Rank][sq.File]
}

// PieceByID returns the piece with the given ID, or nil if it has been
// captured. IDs are preserved by Clone, so this is how search code maps a
// live piece onto its counterpart in a clone.
func (b *Board) PieceByID(id int) *Piece {
	for _, p := range b.pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Pieces returns all pieces currently on the board, in a stable traversal
// order. The slice is shared; callers must not modify it.
func (b *Board) Pieces() []*Piece { return b.pieces }

// PiecesOf returns the pieces of one color in stable traversal order.
func (b *Board) PiecesOf(c Color) []*Piece {
	out := make([]*Piece, 0, 16)
	for _, p := range b.pieces {
		if p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// King returns the king of the given color, or nil if absent.
func (b *Board) King(c Color) *Piece {
	for _, p := range b.pieces {
		if p.Type == King && p.Color == c {
			return p
		}
	}
	return nil
}

// remove takes a piece off the board.
func (b *Board) remove(p *Piece) {
	b.grid[p.Square.Rank][p.Square.File] = nil
	for i, q := range b.pieces {
		if q == p {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			return
		}
	}
}

// relocate moves a piece to an empty square and marks it moved.
func (b *Board) relocate(p *Piece, to Square) {
	b.grid[p.Square.Rank][p.Square.File] = nil
	p.Square = to
	p.Moved = true
	b.grid[to.Rank][to.File] = p
}

// ApplyMove captures any opposing occupant of to, relocates p there and
// marks it moved. A king moving two files also relocates the matching rook
// (castling). No legality is checked here; callers must only pass
// destinations drawn from LegalMoves. Returns the Move record.
func (b *Board) ApplyMove(p *Piece, to Square) Move {
	if p == nil || !to.InBounds() {
		return Move{}
	}
	m := Move{From: p.Square, To: to, Piece: p.Type}

	if victim := b.PieceAt(to); victim != nil && victim.Color != p.Color {
		b.remove(victim)
	}

	castleDelta := to.File - p.Square.File
	b.relocate(p, to)

	// Castling side effect: the rook jumps to the file the king crossed.
	if p.Type == King && (castleDelta == 2 || castleDelta == -2) {
		if castleDelta == 2 {
			if rook := b.PieceAt(Square{to.Rank, 7}); rook != nil && rook.Type == Rook {
				b.relocate(rook, Square{to.Rank, 5})
			}
		} else {
			if rook := b.PieceAt(Square{to.Rank, 0}); rook != nil && rook.Type == Rook {
				b.relocate(rook, Square{to.Rank, 3})
			}
		}
	}
	return m
}

// Clone returns an independent deep copy: same IDs, no shared piece values.
func (b *Board) Clone() *Board {
	c := &Board{
		pieces: make([]*Piece, len(b.pieces)),
		nextID: b.nextID,
	}
	for i, p := range b.pieces {
		q := *p
		c.pieces[i] = &q
		c.grid[q.Square.Rank][q.Square.File] = &q
	}
	return c
}
