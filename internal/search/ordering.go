package search

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/eval"
	"github.com/halfmove-chess/halfmove/internal/magic"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// Move ordering scores are laid out in disjoint bands so a single int sort
// key is enough: PV and killer moves always outrank every capture, which
// always outrank every quiet move.
const (
	pvBonus        = 1_000_000
	killerBonus    = 900_000
	captureBonus   = 100_000
	castleBonus    = 10
	quietSafeBonus = 5
)

// orderMoves sorts moves in place, highest-scoring first, following the
// priority list: PV move, killer move, MVV-LVA captures (en passant scored
// as pawn-takes-pawn, promotions adding the promoted piece's value),
// castling, a small positional-delta nudge, and quiet non-pawn moves to
// pawn-safe squares.
func (s *Searcher) orderMoves(b *board.Board, moves []types.Move, pvMove, killer types.Move) {
	scores := make([]int, len(moves))
	phase := eval.Phase(b)

	for i, m := range moves {
		scores[i] = s.scoreMove(b, m, phase, pvMove, killer)
	}

	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = mv
		scores[j+1] = sc
	}
}

func (s *Searcher) scoreMove(b *board.Board, m types.Move, phase int, pvMove, killer types.Move) int {
	if m == pvMove {
		return pvBonus
	}
	if m == killer {
		return killerBonus
	}

	flag := m.Flag()
	mover := b.PieceAt(m.From())

	switch {
	case flag == types.EnPassant:
		return captureBonus // pawn takes pawn: victim and attacker values cancel
	case flag.IsCapture():
		victim := b.PieceAt(m.To())
		score := captureBonus + (eval.PieceValue(victim.Kind())-eval.PieceValue(mover.Kind()))*4
		if flag.IsPromotion() {
			score += eval.PieceValue(flag.PromotionKind())
		}
		return score
	case flag.IsPromotion():
		return captureBonus/2 + eval.PieceValue(flag.PromotionKind())
	case flag == types.KingCastle || flag == types.QueenCastle:
		return castleBonus
	}

	delta := eval.PositionalDelta(mover, m.From(), m.To(), phase) * 2 / 10
	score := delta
	if mover.Kind() != types.Pawn && isPawnSafe(b, m.To(), mover.Side()) {
		score += quietSafeBonus
	}
	return score
}

// isPawnSafe reports that no enemy pawn attacks sq, used to favor quiet
// moves that don't land on a square a pawn could capture on next.
func isPawnSafe(b *board.Board, sq types.Square, mover types.Side) bool {
	enemy := mover.Other()
	enemyPawns := b.KindBB[types.Pawn].Intersect(b.SideBB[enemy])
	return magic.PawnAttacks(mover, sq).Intersect(enemyPawns).IsEmpty()
}
