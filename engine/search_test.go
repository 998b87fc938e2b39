package engine

import (
	"math"
	"testing"

	"chess-core/chess"
)

func TestChooseMoveTakesHangingQueen(t *testing.T) {
	b := mustParse(t, "k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")
	piece, to, ok := ChooseMove(b, chess.White, 2)
	if !ok {
		t.Fatalf("expected a move")
	}
	if piece.Type != chess.Pawn || to != (chess.Square{Rank: 4, File: 3}) {
		t.Fatalf("expected exd5, got %s %s->%s", piece.Type, piece.Square, to)
	}
}

func TestChooseMoveReturnedPieceBelongsToInputBoard(t *testing.T) {
	b := chess.NewBoard()
	piece, to, ok := ChooseMove(b, chess.White, 2)
	if !ok {
		t.Fatalf("expected a move")
	}
	if b.PieceByID(piece.ID) != piece {
		t.Fatalf("returned piece is not the live board's piece")
	}
	// The host applies it through the normal mutation contract.
	b.ApplyMove(piece, to)
	if b.PieceAt(to) != piece {
		t.Fatalf("chosen move did not apply cleanly")
	}
}

func TestChooseMoveDeterministic(t *testing.T) {
	const fen = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	var firstID int
	var firstTo chess.Square
	for i := 0; i < 3; i++ {
		b := mustParse(t, fen)
		piece, to, ok := ChooseMove(b, chess.White, 3)
		if !ok {
			t.Fatalf("expected a move")
		}
		if i == 0 {
			firstID, firstTo = piece.ID, to
			continue
		}
		if piece.ID != firstID || to != firstTo {
			t.Fatalf("run %d chose %d->%s, first run chose %d->%s",
				i, piece.ID, to, firstID, firstTo)
		}
	}
}

func TestChooseMoveNoLegalMoves(t *testing.T) {
	mated := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if _, _, ok := ChooseMove(mated, chess.White, 3); ok {
		t.Fatalf("checkmated side must yield no move")
	}
	if !mated.InCheckmate(chess.White) {
		t.Fatalf("host should read the absence of a move as checkmate here")
	}

	stalemated := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if _, _, ok := ChooseMove(stalemated, chess.Black, 3); ok {
		t.Fatalf("stalemated side must yield no move")
	}
	if !stalemated.InStalemate(chess.Black) {
		t.Fatalf("host should read the absence of a move as stalemate here")
	}
}

// plainMinimax is an exhaustive reference search: no pruning, no
// transposition table, otherwise identical semantics to alphabeta.
func plainMinimax(b *chess.Board, toMove, side chess.Color, depth int, maximizing bool) int {
	if depth <= 0 {
		return Evaluate(b, side)
	}
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, p := range b.PiecesOf(toMove) {
		for _, to := range b.LegalMoves(p) {
			child := b.Clone()
			child.ApplyMove(child.PieceByID(p.ID), to)
			score := plainMinimax(child, toMove.Opposite(), side, depth-1, !maximizing)
			if maximizing && score > best {
				best = score
			}
			if !maximizing && score < best {
				best = score
			}
		}
	}
	return best
}

func TestAlphaBetaMatchesExhaustiveMinimax(t *testing.T) {
	const fen = "4k3/8/8/3p4/8/8/3P4/4K3 w - - 0 1"
	const depth = 3

	b := mustParse(t, fen)
	moves := scoredRootMoves(b, chess.White)
	if len(moves) == 0 {
		t.Fatalf("no root moves")
	}

	// Reference root: same enumeration order, first maximal wins.
	wantScore := math.MinInt
	var wantMove rootMove
	for _, rm := range moves {
		child := b.Clone()
		child.ApplyMove(child.PieceByID(rm.piece.ID), rm.to)
		score := plainMinimax(child, chess.Black, chess.White, depth-1, false)
		if score > wantScore {
			wantScore = score
			wantMove = rm
		}
	}

	piece, to, ok := ChooseMove(b, chess.White, depth)
	if !ok {
		t.Fatalf("expected a move")
	}
	if piece.ID != wantMove.piece.ID || to != wantMove.to {
		t.Fatalf("pruned search chose %d->%s, exhaustive minimax chose %d->%s",
			piece.ID, to, wantMove.piece.ID, wantMove.to)
	}

	// The pruned value of the chosen line equals the exhaustive value.
	child := b.Clone()
	child.ApplyMove(child.PieceByID(piece.ID), to)
	got := alphabeta(child, chess.Black, chess.White, depth-1, math.MinInt, math.MaxInt, false, NewTransTable())
	if got != wantScore {
		t.Fatalf("pruned score %d, exhaustive score %d", got, wantScore)
	}
}

func TestDifficultyDepths(t *testing.T) {
	cases := []struct {
		d     Difficulty
		depth int
	}{
		{Easy, 2},
		{Medium, 3},
		{Hard, 4},
		{Difficulty(99), 2},
	}
	for _, c := range cases {
		if got := c.d.Depth(); got != c.depth {
			t.Errorf("%s: got depth %d, want %d", c.d, got, c.depth)
		}
	}
}
