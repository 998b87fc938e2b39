// Command selfplay pits the search against itself on a single board. It is
// a driver for eyeballing engine behavior end to end: one turn's search at
// a time, result applied through the same ApplyMove contract a human move
// would use, status polled after every move.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"chess-core/chess"
	"chess-core/engine"
)

func main() {
	whiteDepth := flag.Int("white-depth", engine.Medium.Depth(), "search depth for white")
	blackDepth := flag.Int("black-depth", engine.Medium.Depth(), "search depth for black")
	maxMoves := flag.Int("max-moves", 120, "abort after this many half-moves")
	fen := flag.String("fen", chess.FENStartPos, "starting position")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	board, toMove, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad starting position")
	}

	depths := map[chess.Color]int{
		chess.White: *whiteDepth,
		chess.Black: *blackDepth,
	}

	ctx := context.Background()
	for ply := 1; ply <= *maxMoves; ply++ {
		choice := <-engine.ChooseMoveAsync(ctx, board, toMove, depths[toMove])
		if !choice.Found {
			if board.InCheckmate(toMove) {
				log.Info().Str("loser", toMove.String()).Msg("checkmate")
			} else if board.InStalemate(toMove) {
				log.Info().Msg("stalemate")
			}
			return
		}

		piece := board.PieceByID(choice.PieceID)
		move := board.ApplyMove(piece, choice.To)
		opp := toMove.Opposite()
		log.Info().
			Int("ply", ply).
			Str("side", toMove.String()).
			Str("piece", move.Piece.String()).
			Str("move", move.String()).
			Bool("check", board.InCheck(opp)).
			Msg("played")

		toMove = opp
	}
	log.Info().Int("half-moves", *maxMoves).Msg("move cap reached")
}
