package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"chess-core/chess"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, toMove, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := chess.PerftDivide(board, toMove, *depth)
		keys := make([]string, 0, len(div))
		var sum uint64
		for m, n := range div {
			keys = append(keys, m)
			sum += n
		}
		sort.Strings(keys)
		for _, m := range keys {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := chess.Perft(board, toMove, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s\n", *depth, nodes, elapsed)
}
