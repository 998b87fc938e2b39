package chess

import (
	"errors"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN piece character to its type and color.
func pieceFromChar(ch byte) (PieceType, Color, bool) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return Pawn, c, true
	case 'N':
		return Knight, c, true
	case 'B':
		return Bishop, c, true
	case 'R':
		return Rook, c, true
	case 'Q':
		return Queen, c, true
	case 'K':
		return King, c, true
	default:
		return NoPieceType, c, false
	}
}

// charFromPiece converts a piece to its FEN character.
func charFromPiece(p *Piece) byte {
	var ch byte
	switch p.Type {
	case Pawn:
		ch = 'P'
	case Knight:
		ch = 'N'
	case Bishop:
		ch = 'B'
	case Rook:
		ch = 'R'
	case Queen:
		ch = 'Q'
	case King:
		ch = 'K'
	}
	if p.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a board from the placement and castling fields of a FEN
// string and returns it together with the side to move. The en passant
// field is accepted but ignored (the rule is not generated), as are the
// move counters. Castling rights are mapped onto Moved flags: a missing
// right marks the corresponding rook as having moved.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, White, errors.New("fen: need at least placement and side fields")
	}

	b := &Board{}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, White, errors.New("fen: placement must have 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c, ok := pieceFromChar(ch)
			if !ok || file > 7 {
				return nil, White, errors.New("fen: bad placement rank " + rankStr)
			}
			p := b.addPiece(pt, c, Square{rank, file})
			// Pieces away from their home squares count as moved; only
			// kings and rooks consult the flag, for castling.
			p.Moved = !onHomeSquare(p)
			file++
		}
		if file != 8 {
			return nil, White, errors.New("fen: bad placement rank " + rankStr)
		}
	}

	var toMove Color
	switch fields[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return nil, White, errors.New("fen: bad side to move " + fields[1])
	}

	rights := "-"
	if len(fields) >= 3 {
		rights = fields[2]
	}
	b.applyCastlingRights(rights)

	for _, c := range [2]Color{White, Black} {
		count := 0
		for _, p := range b.PiecesOf(c) {
			if p.Type == King {
				count++
			}
		}
		if count > 1 {
			return nil, White, errors.New("fen: more than one " + c.String() + " king")
		}
	}
	return b, toMove, nil
}

func onHomeSquare(p *Piece) bool {
	rank := homeRank(p.Color)
	switch p.Type {
	case Pawn:
		return p.Square.Rank == pawnStartRank(p.Color)
	case King:
		return p.Square == Square{rank, 4}
	case Rook:
		return p.Square.Rank == rank && (p.Square.File == 0 || p.Square.File == 7)
	default:
		return true
	}
}

// applyCastlingRights marks rooks whose right is absent as moved.
func (b *Board) applyCastlingRights(rights string) {
	mark := func(c Color, file int) {
		rook := b.PieceAt(Square{homeRank(c), file})
		if rook != nil && rook.Type == Rook && rook.Color == c {
			rook.Moved = true
		}
	}
	if !strings.Contains(rights, "K") {
		mark(White, 7)
	}
	if !strings.Contains(rights, "Q") {
		mark(White, 0)
	}
	if !strings.Contains(rights, "k") {
		mark(Black, 7)
	}
	if !strings.Contains(rights, "q") {
		mark(Black, 0)
	}
}

// FEN renders the board as a FEN string with toMove as the side to move.
// Castling rights are derived from Moved flags; the en passant field is
// always "-" and the counters are fixed, since the board tracks neither.
func (b *Board) FEN(toMove Color) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.grid[rank][file]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	rights := ""
	if b.castleRightIntact(White, 7) {
		rights += "K"
	}
	if b.castleRightIntact(White, 0) {
		rights += "Q"
	}
	if b.castleRightIntact(Black, 7) {
		rights += "k"
	}
	if b.castleRightIntact(Black, 0) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(" " + rights + " - 0 1")
	return sb.String()
}

// castleRightIntact reports whether the king and the rook on rookFile are
// both unmoved and on their home squares.
func (b *Board) castleRightIntact(c Color, rookFile int) bool {
	rank := homeRank(c)
	king := b.King(c)
	if king == nil || king.Moved || king.Square != (Square{rank, 4}) {
		return false
	}
	rook := b.PieceAt(Square{rank, rookFile})
	return rook != nil && rook.Type == Rook && rook.Color == c && !rook.Moved
}
