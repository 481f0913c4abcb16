package uci

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/config"
)

func TestEngineGoFindsMateInOne(t *testing.T) {
	e := NewEngine(config.DefaultConfig())
	b, err := board.FromFEN("4k3/8/4K3/8/8/8/8/6R1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	e.SetPosition(b, nil)

	move, err := e.Go(context.Background(), TimeControl{FixedMoveTime: time.Second}, nil)
	if err != nil {
		t.Fatalf("Go() error: %v", err)
	}
	if got, want := move.String(), "g1g8"; got != want {
		t.Errorf("Go() move = %q, want %q", got, want)
	}
}

func TestEngineGoReturnsErrNoLegalMovesOnCheckmate(t *testing.T) {
	e := NewEngine(config.DefaultConfig())
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	e.SetPosition(b, nil)

	if _, err := e.Go(context.Background(), TimeControl{FixedMoveTime: time.Second}, nil); err != ErrNoLegalMoves {
		t.Errorf("Go() error = %v, want ErrNoLegalMoves", err)
	}
}

func TestEnginePerftStartingPosition(t *testing.T) {
	e := NewEngine(config.DefaultConfig())
	// Standard perft(3) from the starting position.
	if got, want := e.Perft(3), uint64(8902); got != want {
		t.Errorf("Perft(3) = %d, want %d", got, want)
	}
}

func TestEngineApplyMove(t *testing.T) {
	e := NewEngine(config.DefaultConfig())

	if err := e.ApplyMove("e2e4"); err != nil {
		t.Fatalf("ApplyMove(e2e4) error: %v", err)
	}
	if got := e.Board().ToFEN(); got != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Errorf("position after e2e4 = %q", got)
	}
}

func TestEngineApplyMoveRejectsIllegalMove(t *testing.T) {
	e := NewEngine(config.DefaultConfig())
	before := e.Board().ToFEN()

	err := e.ApplyMove("e2e5")
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("ApplyMove(e2e5) error = %v, want ErrIllegalMove", err)
	}
	if got := e.Board().ToFEN(); got != before {
		t.Errorf("board mutated by a rejected move: %q -> %q", before, got)
	}
}

func TestEngineApplyMoveClearsHistoryOnPawnMove(t *testing.T) {
	e := NewEngine(config.DefaultConfig())

	// Two reversible knight shuffles, then an irreversible pawn push.
	for _, mv := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "e2e4"} {
		if err := e.ApplyMove(mv); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", mv, err)
		}
	}
	if got := len(e.history); got != 1 {
		t.Errorf("history length after pawn move = %d, want 1 (cleared by the irreversible move)", got)
	}
}

func TestEngineNewGameResetsPosition(t *testing.T) {
	e := NewEngine(config.DefaultConfig())
	if err := e.ApplyMove("e2e4"); err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}

	e.NewGame()
	if got := e.Board().ToFEN(); got != board.StartingFEN {
		t.Errorf("position after NewGame = %q, want the starting position", got)
	}
	if got := len(e.history); got != 1 {
		t.Errorf("history length after NewGame = %d, want 1 (just the start position)", got)
	}
}

func TestEngineStopCancelsGoPromptly(t *testing.T) {
	e := NewEngine(config.DefaultConfig())
	go func() {
		time.Sleep(10 * time.Millisecond)
		e.Stop()
	}()

	start := time.Now()
	if _, err := e.Go(context.Background(), TimeControl{MyTime: time.Hour}, nil); err != nil {
		t.Fatalf("Go() error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Go() took %v after Stop, want well under 1s", elapsed)
	}
}
