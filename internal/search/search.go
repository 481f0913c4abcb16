// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a transposition table, null-move pruning and quiescence search.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/movegen"
	"github.com/halfmove-chess/halfmove/internal/tt"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// maxPly bounds recursion depth and the size of the per-ply killer and
// triangular PV tables. Iterative deepening never requests a depth this
// deep in practice; it exists only so those tables can be fixed arrays.
const maxPly = 128

// MateScore is the sentinel returned for a forced mate, large enough that
// no real evaluation can reach it. It is tt.MateScore under another name so
// search code can talk about "mate" without importing tt for that alone.
const MateScore = tt.MateScore

// Searcher holds the mutable state of one search: node count, the seen
// position history used for repetition detection, killer moves and the
// triangular PV table. It is not safe for concurrent use; callers run one
// search at a time, matching the engine's single-threaded design.
type Searcher struct {
	table    *tt.Table
	maxDepth int // iterative deepening ceiling; 0 means no cap below maxPly

	history  []uint64
	killers  [maxPly]types.Move
	pvTable  [maxPly][maxPly]types.Move
	pvLength [maxPly]int
	lastPV   []types.Move // completed PV from the previous depth, used as an ordering hint

	nodes uint64

	start         time.Time
	timeAvailable time.Duration
	stopped       int32 // set via Stop, checked cooperatively

	ctx context.Context
}

// NewSearcher builds a Searcher backed by table. A nil table runs without
// a transposition table (every probe misses, every store is a no-op),
// useful for tests that want a TT-free baseline.
func NewSearcher(table *tt.Table) *Searcher {
	return &Searcher{table: table}
}

// SetMaxDepth caps iterative deepening at depth plies regardless of
// remaining time. Zero or negative restores the default (no cap below the
// internal ply limit).
func (s *Searcher) SetMaxDepth(depth int) {
	s.maxDepth = depth
}

// Stop requests cooperative cancellation of any in-progress Search call.
// Safe to call from another goroutine, mirroring the atomic
// "force-cancelled" flag the engine loop's stop() command sets.
func (s *Searcher) Stop() {
	atomic.StoreInt32(&s.stopped, 1)
}

// Result is one iterative-deepening iteration's outcome.
type Result struct {
	Move    types.Move
	Score   int
	Depth   int
	Nodes   uint64
	PV      []types.Move
	Elapsed time.Duration
}

// Search runs iterative deepening from depth 1 until time runs out, a
// forced mate is proven, or ctx is cancelled. history is the zobrist key
// of every position reached so far this game, including the current one
// (position b); report, if non-nil, is called after every completed
// depth with that depth's result, matching the UCI "info" progress line.
func (s *Searcher) Search(ctx context.Context, b *board.Board, history []uint64, timeAvailable time.Duration, report func(Result)) Result {
	s.ctx = ctx
	s.history = append(s.history[:0], history...)
	s.nodes = 0
	atomic.StoreInt32(&s.stopped, 0)
	s.start = time.Now()
	s.timeAvailable = timeAvailable
	for i := range s.killers {
		s.killers[i] = types.NoMove
	}
	s.lastPV = nil

	var best Result
	legal := movegen.LegalMoves(b)
	if len(legal) == 0 {
		return best
	}
	best.Move = legal[0]

	// The game history already shows this position twice before now: the
	// position is a threefold draw regardless of what a search would find.
	if s.repetitionCount(b.Zobrist) >= 3 {
		best.Score = 0
		best.Elapsed = time.Since(s.start)
		return best
	}

	depthLimit := maxPly - 1
	if s.maxDepth > 0 && s.maxDepth < depthLimit {
		depthLimit = s.maxDepth
	}

	for depth := 1; depth <= depthLimit; depth++ {
		elapsed := time.Since(s.start)
		remaining := s.timeAvailable - elapsed
		if remaining <= 0 {
			break
		}
		// Soft cap: don't start an iteration expected to blow the budget.
		// Each iteration costs roughly several times the previous one, so
		// once we've burned through half the time, the next iteration is
		// unlikely to finish.
		if elapsed > remaining {
			break
		}

		score := s.negamax(b, -infScore, infScore, depth, 0)
		if s.outOfTime() {
			break
		}

		pv := append([]types.Move(nil), s.pvTable[0][:s.pvLength[0]]...)
		best = Result{
			Move:    pv[0],
			Score:   score,
			Depth:   depth,
			Nodes:   s.nodes,
			PV:      pv,
			Elapsed: time.Since(s.start),
		}
		s.lastPV = pv
		if report != nil {
			report(best)
		}

		if abs(score) >= MateScore-maxPly {
			break
		}
	}

	return best
}

// infScore stands in for alpha-beta's unbounded window endpoints. It's kept
// comfortably clear of MateScore so mate-distance arithmetic never
// overflows it.
const infScore = MateScore + maxPly

func (s *Searcher) outOfTime() bool {
	if atomic.LoadInt32(&s.stopped) != 0 {
		return true
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		return true
	}
	return time.Since(s.start) >= s.timeAvailable
}

func (s *Searcher) repetitionCount(key uint64) int {
	count := 0
	for _, h := range s.history {
		if h == key {
			count++
		}
	}
	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
