package engine

import (
	"math"

	"chess-core/chess"
)

// ChooseMove picks a move for side by depth-bounded minimax with
// alpha-beta pruning over clones of b. The returned piece belongs to b
// itself, so the host can pass it straight to ApplyMove. ok is false when
// side has no legal move; the host resolves that as checkmate or stalemate
// through the status predicates, never here.
//
// The search is deterministic for a fixed board, side and depth: move
// enumeration order is stable and the hash constants are fixed per
// process. The transposition table is private to this one call.
func ChooseMove(b *chess.Board, side chess.Color, depth int) (piece *chess.Piece, to chess.Square, ok bool) {
	moves := scoredRootMoves(b, side)
	if len(moves) == 0 {
		return nil, chess.Square{}, false
	}

	tt := NewTransTable()
	alpha, beta := math.MinInt, math.MaxInt
	best := moves[0]
	bestScore := math.MinInt
	for _, rm := range moves {
		child := b.Clone()
		child.ApplyMove(child.PieceByID(rm.piece.ID), rm.to)
		score := alphabeta(child, side.Opposite(), side, depth-1, alpha, beta, false, tt)
		if score > bestScore {
			bestScore = score
			best = rm
		}
		if score > alpha {
			alpha = score
		}
	}
	return best.piece, best.to, true
}

// alphabeta evaluates the position with toMove to play, scoring from the
// perspective of side (the color the search was invoked for). maximizing
// alternates per ply; alpha and beta are threaded by value so sibling
// branches never share mutable bounds. Every node's score is memoized in
// tt before returning, and the cache is consulted before expanding a node.
func alphabeta(b *chess.Board, toMove, side chess.Color, depth, alpha, beta int, maximizing bool, tt *TransTable) int {
	if depth <= 0 {
		return Evaluate(b, side)
	}

	hash := b.Hash()
	if score, ok := tt.Get(hash); ok {
		return score
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
search:
	for _, p := range b.PiecesOf(toMove) {
		for _, to := range b.LegalMoves(p) {
			child := b.Clone()
			child.ApplyMove(child.PieceByID(p.ID), to)
			score := alphabeta(child, toMove.Opposite(), side, depth-1, alpha, beta, !maximizing, tt)
			if maximizing {
				if score > best {
					best = score
				}
				if best > alpha {
					alpha = best
				}
			} else {
				if score < best {
					best = score
				}
				if best < beta {
					beta = best
				}
			}
			if beta <= alpha {
				break search
			}
		}
	}
	tt.Set(hash, best)
	return best
}
