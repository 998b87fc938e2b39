package engine

import (
	"context"

	"chess-core/chess"
)

// Choice is the result of one asynchronous search. PieceID identifies the
// moving piece on the host's live board (IDs survive cloning); Found is
// false when the side had no legal move.
type Choice struct {
	PieceID int
	From    chess.Square
	To      chess.Square
	Found   bool
}

// ChooseMoveAsync snapshots b and runs ChooseMove off the caller's
// goroutine, delivering the result on the returned channel. The channel is
// closed without a value if ctx is cancelled first, so a stale move from a
// reset or abandoned game is never handed back to the host. The snapshot
// is taken synchronously: the caller may keep mutating the live board as
// soon as this returns, though the game contract allows only one turn's
// mutation in flight at a time.
func ChooseMoveAsync(ctx context.Context, b *chess.Board, side chess.Color, depth int) <-chan Choice {
	snapshot := b.Clone()
	out := make(chan Choice, 1)
	go func() {
		defer close(out)
		piece, to, ok := ChooseMove(snapshot, side, depth)
		if ctx.Err() != nil {
			return
		}
		if !ok {
			out <- Choice{Found: false}
			return
		}
		out <- Choice{PieceID: piece.ID, From: piece.Square, To: to, Found: true}
	}()
	return out
}
