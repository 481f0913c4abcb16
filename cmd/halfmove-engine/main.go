// Command halfmove-engine is a thin runnable wrapper around the engine
// library: load configuration, set up a position, and either run perft or
// search it for a given time budget. It does not speak the UCI text
// protocol; a front end that does would import internal/uci directly and
// drive Engine itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/config"
	"github.com/halfmove-chess/halfmove/internal/search"
	"github.com/halfmove-chess/halfmove/internal/uci"
)

func main() {
	fen := flag.String("fen", board.StartingFEN, "FEN of the position to analyse")
	moveTime := flag.Duration("movetime", 5*time.Second, "time to spend searching before returning the best move found")
	perftDepth := flag.Int("perft", 0, "if set, run perft to this depth instead of searching and print the leaf count")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.LoadConfig()
	b, err := board.FromFEN(*fen)
	if err != nil {
		logger.Error("invalid FEN", "fen", *fen, "error", err)
		os.Exit(1)
	}

	engine := uci.NewEngine(cfg)
	engine.SetPosition(b, nil)

	if *perftDepth > 0 {
		start := time.Now()
		nodes := engine.Perft(*perftDepth)
		logger.Info("perft complete", "depth", *perftDepth, "nodes", nodes, "elapsed", time.Since(start))
		fmt.Println(nodes)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := func(r search.Result) {
		logger.Info("search progress",
			"depth", r.Depth,
			"score", r.Score,
			"nodes", r.Nodes,
			"elapsed", r.Elapsed,
			"pv", r.PV,
		)
	}

	move, err := engine.Go(ctx, uci.TimeControl{FixedMoveTime: *moveTime}, report)
	if err != nil {
		logger.Error("search failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(move.String())
}
