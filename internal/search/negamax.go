package search

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/eval"
	"github.com/halfmove-chess/halfmove/internal/movegen"
	"github.com/halfmove-chess/halfmove/internal/tt"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// nullMoveMinPly and nullMoveMinDepth gate null-move pruning to positions
// deep enough into the tree, and with enough depth left, that the
// reduced-depth verification search is still meaningful.
const (
	nullMoveMinPly   = 3
	nullMoveMinDepth = 3
	nullMoveR        = 3
)

// negamax searches the position to the given remaining depth: repetition
// and transposition-table short-circuits, null-move pruning, full move
// ordering, and triangular principal-variation tracking.
func (s *Searcher) negamax(b *board.Board, alpha, beta, depth, ply int) int {
	s.pvLength[ply] = ply

	// The current position's key was pushed onto the history by the caller,
	// so a count of 3 means it occurred twice before this node: threefold.
	key := b.Zobrist
	if ply > 0 && s.repetitionCount(key) >= 3 {
		return 0
	}
	if s.outOfTime() {
		return 0
	}
	s.nodes++

	if ply > 0 && s.table != nil {
		if e, ok := s.table.Probe(key, alpha, beta, depth); ok {
			return e.Score
		}
	}

	if depth == 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	inCheck := movegen.InCheck(b)
	phase := eval.Phase(b)
	allowNullMove := phase*10 >= eval.MaxPhase

	if ply >= nullMoveMinPly && depth >= nullMoveMinDepth && !inCheck && allowNullMove {
		undo := b.MakeNullMove()
		s.history = append(s.history, b.Zobrist)
		score := -s.negamax(b, -beta, -beta+1, depth-nullMoveR, ply+1)
		s.history = s.history[:len(s.history)-1]
		b.UnmakeNullMove(undo)

		if s.outOfTime() {
			return 0
		}
		if score >= beta {
			if s.table != nil {
				s.table.Store(key, beta, tt.LowerBound, depth-2, types.NoMove, s.repetitionCount(key) > 1)
			}
			return beta
		}
	}

	moves := movegen.PseudoLegal(b, false, make([]types.Move, 0, 256))

	pvMove := types.NoMove
	if ply < len(s.lastPV) {
		pvMove = s.lastPV[ply]
	}
	s.orderMoves(b, moves, pvMove, s.killers[ply])

	legalSeen := false
	nodeType := tt.UpperBound
	bestMove := types.NoMove

	for _, m := range moves {
		if !movegen.IsLegal(b, m) {
			continue
		}
		legalSeen = true

		undo := b.MakeMove(m)
		s.history = append(s.history, b.Zobrist)
		score := -s.negamax(b, -beta, -alpha, depth-1, ply+1)
		s.history = s.history[:len(s.history)-1]
		b.UnmakeMove(undo)

		if s.outOfTime() {
			return 0
		}

		if score >= beta {
			if s.table != nil {
				s.table.Store(key, beta, tt.LowerBound, depth, m, s.repetitionCount(key) > 1)
			}
			s.killers[ply] = m
			return beta
		}
		if score > alpha {
			alpha = score
			nodeType = tt.Exact
			bestMove = m

			s.pvTable[ply][ply] = m
			for next := ply + 1; next < s.pvLength[ply+1]; next++ {
				s.pvTable[ply][next] = s.pvTable[ply+1][next]
			}
			s.pvLength[ply] = s.pvLength[ply+1]
		}
	}

	if !legalSeen {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	if s.table != nil {
		s.table.Store(key, alpha, nodeType, depth, bestMove, s.repetitionCount(key) > 1)
	}
	return alpha
}
