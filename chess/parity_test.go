package chess

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
)

// Positions with no en passant capture and no promotion available: those
// two rules are deliberately not generated here, so parity with full
// reference generators holds everywhere else.
var parityFENs = []string{
	FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
}

func TestMoveSetParityWithDragontooth(t *testing.T) {
	for _, fen := range parityFENs {
		b, toMove, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parse FEN %q: %v", fen, err)
		}
		got := make([]string, 0, 48)
		for _, p := range b.PiecesOf(toMove) {
			for _, to := range b.LegalMoves(p) {
				got = append(got, p.Square.String()+to.String())
			}
		}
		sort.Strings(got)

		ref := dragontoothmg.ParseFen(fen)
		refMoves := ref.GenerateLegalMoves()
		want := make([]string, 0, len(refMoves))
		for _, m := range refMoves {
			want = append(want, m.String())
		}
		sort.Strings(want)

		if len(got) != len(want) {
			t.Errorf("%q: %d moves, reference has %d\n got %v\nwant %v",
				fen, len(got), len(want), got, want)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("%q: move set diverges at %q vs %q", fen, got[i], want[i])
				break
			}
		}
	}
}

func TestMoveSetParityWithNotnil(t *testing.T) {
	for _, fen := range parityFENs {
		b, toMove, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parse FEN %q: %v", fen, err)
		}
		got := make(map[string]bool)
		for _, p := range b.PiecesOf(toMove) {
			for _, to := range b.LegalMoves(p) {
				got[p.Square.String()+to.String()] = true
			}
		}

		opt, err := notnil.FEN(fen)
		if err != nil {
			t.Fatalf("notnil FEN %q: %v", fen, err)
		}
		game := notnil.NewGame(opt)
		want := make(map[string]bool)
		for _, m := range game.ValidMoves() {
			want[m.S1().String()+m.S2().String()] = true
		}

		for m := range want {
			if !got[m] {
				t.Errorf("%q: missing move %s", fen, m)
			}
		}
		for m := range got {
			if !want[m] {
				t.Errorf("%q: extra move %s", fen, m)
			}
		}
	}
}

// dtPerft is a reference perft over dragontoothmg.
func dtPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftParityWithDragontooth(t *testing.T) {
	// Depths where no en passant capture or promotion can occur yet.
	for depth := 1; depth <= 3; depth++ {
		mine := Perft(NewBoard(), White, depth)
		ref := dragontoothmg.ParseFen(dragontoothmg.Startpos)
		want := dtPerft(&ref, depth)
		if mine != want {
			t.Fatalf("perft(%d): got %d, reference says %d", depth, mine, want)
		}
	}
}
