package tt

import (
	"testing"

	"github.com/halfmove-chess/halfmove/internal/types"
)

func TestSizeIsPowerOfTwo(t *testing.T) {
	table := New(1)
	size := table.Size()
	if size&(size-1) != 0 {
		t.Fatalf("Size() = %d, not a power of two", size)
	}
}

func TestStoreThenProbeExact(t *testing.T) {
	table := New(1)
	const key = 0xDEADBEEF
	m := types.NewMove(types.NewSquare(4, 1), types.NewSquare(4, 3), types.DoublePawnPush)
	table.Store(key, 37, Exact, 4, m, false)

	got, ok := table.Probe(key, -1000, 1000, 4)
	if !ok {
		t.Fatal("Probe returned not-ok for a freshly stored exact entry")
	}
	if got.Score != 37 || got.Bound != Exact || got.Move != m {
		t.Errorf("Probe returned %+v, want score 37, Exact, move %v", got, m)
	}
}

func TestProbeMissOnKeyMismatch(t *testing.T) {
	table := New(1)
	table.Store(1, 10, Exact, 5, types.NoMove, false)
	if _, ok := table.Probe(2, -1000, 1000, 0); ok {
		t.Error("Probe succeeded for a key never stored (collision treated as hit)")
	}
}

func TestProbeMissOnShallowerStoredDepth(t *testing.T) {
	table := New(1)
	table.Store(5, 10, Exact, 2, types.NoMove, false)
	if _, ok := table.Probe(5, -1000, 1000, 4); ok {
		t.Error("Probe succeeded for a stored depth shallower than requested")
	}
}

func TestLowerBoundOnlyUsableAboveBeta(t *testing.T) {
	table := New(1)
	table.Store(9, 50, LowerBound, 4, types.NoMove, false)

	if _, ok := table.Probe(9, -1000, 60, 4); ok {
		t.Error("LowerBound(50) should not be usable against beta=60")
	}
	if _, ok := table.Probe(9, -1000, 50, 4); !ok {
		t.Error("LowerBound(50) should be usable against beta=50 (score >= beta)")
	}
}

func TestUpperBoundOnlyUsableBelowAlpha(t *testing.T) {
	table := New(1)
	table.Store(9, -50, UpperBound, 4, types.NoMove, false)

	if _, ok := table.Probe(9, -60, 1000, 4); ok {
		t.Error("UpperBound(-50) should not be usable against alpha=-60")
	}
	if _, ok := table.Probe(9, -50, 1000, 4); !ok {
		t.Error("UpperBound(-50) should be usable against alpha=-50 (score <= alpha)")
	}
}

func TestStoreRefusesMateSentinel(t *testing.T) {
	table := New(1)
	table.Store(3, MateScore, Exact, 10, types.NoMove, false)
	if _, ok := table.Probe(3, -2_000_000, 2_000_000, 0); ok {
		t.Error("Store accepted a mate-sentinel score")
	}

	table.Store(3, -MateScore, Exact, 10, types.NoMove, false)
	if _, ok := table.Probe(3, -2_000_000, 2_000_000, 0); ok {
		t.Error("Store accepted a negative mate-sentinel score")
	}
}

func TestStoreRefusesRepeatedPosition(t *testing.T) {
	table := New(1)
	table.Store(11, 25, Exact, 3, types.NoMove, true)
	if _, ok := table.Probe(11, -1000, 1000, 0); ok {
		t.Error("Store accepted a score flagged as a repeated position")
	}
}

func TestStoreAlwaysReplaces(t *testing.T) {
	table := New(1)
	table.Store(4, 10, Exact, 2, types.NoMove, false)
	table.Store(4, 99, UpperBound, 1, types.NoMove, false)

	got, ok := table.Probe(4, 100, 1000, 0)
	if !ok || got.Score != 99 || got.Bound != UpperBound {
		t.Errorf("Probe = %+v, ok=%v; want the second store to have replaced the first", got, ok)
	}
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(1)
	table.Store(7, 1, Exact, 1, types.NoMove, false)
	table.Clear()
	if _, ok := table.Probe(7, -1000, 1000, 0); ok {
		t.Error("Probe succeeded after Clear")
	}
}
