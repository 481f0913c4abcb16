package eval

import (
	"testing"

	"github.com/halfmove-chess/halfmove/internal/board"
)

func TestEvaluateStartingPositionIsZeroSum(t *testing.T) {
	b := board.NewBoard()
	if got := Evaluate(b); got != 0 {
		t.Errorf("Evaluate(starting) = %d, want 0 (symmetric position)", got)
	}
}

func TestEvaluateInsufficientMaterialIsZero(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if got := Evaluate(b); got != 0 {
		t.Errorf("Evaluate(K+N vs K) = %d, want 0", got)
	}
}

// TestEvaluateMirrorSymmetry checks property 6: evaluating a position and
// its color-swapped mirror image yields opposite signs and equal
// magnitudes, modulo piece-square-table symmetry (our PSTs are exactly
// rank-mirrored, so the match is exact here).
func TestEvaluateMirrorSymmetry(t *testing.T) {
	fen := "r1bqk2r/ppp2ppp/2n2n2/3pp3/1b2P3/2NP1N2/PPP2PPP/R1BQKB1R w KQkq - 0 1"
	mirrored := "r1bqkb1r/ppp2ppp/2np1n2/1B2p3/3PP3/2N2N2/PPP2PPP/R1BQK2R b KQkq - 0 1"

	b1, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	b2, err := board.FromFEN(mirrored)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}

	score1 := Evaluate(b1)
	score2 := Evaluate(b2)
	if score1 != score2 {
		t.Errorf("Evaluate(position) = %d, Evaluate(mirrored, from mover's perspective) = %d, want equal", score1, score2)
	}
}

func TestPhaseRangeEndpoints(t *testing.T) {
	start := board.NewBoard()
	if got := Phase(start); got != MaxPhase {
		t.Errorf("Phase(starting) = %d, want %d", got, MaxPhase)
	}

	bare, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if got := Phase(bare); got != 0 {
		t.Errorf("Phase(K vs K) = %d, want 0", got)
	}
}
