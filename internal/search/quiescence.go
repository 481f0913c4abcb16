package search

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/eval"
	"github.com/halfmove-chess/halfmove/internal/movegen"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// quiescence extends the search along captures and promotions only, so the static
// evaluation at the horizon isn't blindsided by a hanging piece one ply
// past where negamax stopped.
func (s *Searcher) quiescence(b *board.Board, alpha, beta, ply int) int {
	if s.outOfTime() {
		return 0
	}
	s.nodes++

	standPat := eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.PseudoLegal(b, true, make([]types.Move, 0, 64))
	s.orderMoves(b, captures, types.NoMove, types.NoMove)

	anyLegalCapture := false
	for _, m := range captures {
		if !movegen.IsLegal(b, m) {
			continue
		}
		anyLegalCapture = true

		undo := b.MakeMove(m)
		score := -s.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(undo)

		if s.outOfTime() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	// A checkmate at the quiescence horizon still needs the right score:
	// with no legal capture and no legal quiet move while in check, this
	// is mate, distance-encoded so shorter mates dominate longer ones.
	if !anyLegalCapture && movegen.InCheck(b) && len(movegen.LegalMoves(b)) == 0 {
		return -MateScore + ply
	}

	return alpha
}
