package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// passedBonusByRank indexes by the pawn's rank from its own side's
// perspective (0 = the side's back rank, 7 = promotion rank).
var passedBonusByRank = [8]int{0, 10, 20, 30, 40, 50, 70, 90}

// pawnStructure folds doubled, isolated and passed pawn terms for both
// sides into a single White-positive centipawn delta.
func pawnStructure(b *board.Board) int {
	score := 0
	score += doubledPawns(b, types.White) - doubledPawns(b, types.Black)
	score += isolatedPawns(b, types.White) - isolatedPawns(b, types.Black)
	score += passedPawns(b, types.White) - passedPawns(b, types.Black)
	return score
}

func pawnsOnFile(pawns types.SquareSet, file int) int {
	return pawns.Intersect(types.FileMask(file)).Count()
}

func doubledPawns(b *board.Board, s types.Side) int {
	pawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s])
	penalty := 0
	for f := 0; f < 8; f++ {
		count := pawnsOnFile(pawns, f)
		if count > 1 {
			penalty += 25 * (count - 1)
		}
	}
	return -penalty
}

func isolatedPawns(b *board.Board, s types.Side) int {
	pawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s])
	penalty := 0
	for f := 0; f < 8; f++ {
		if pawnsOnFile(pawns, f) == 0 {
			continue
		}
		hasNeighbor := false
		if f > 0 && pawnsOnFile(pawns, f-1) > 0 {
			hasNeighbor = true
		}
		if f < 7 && pawnsOnFile(pawns, f+1) > 0 {
			hasNeighbor = true
		}
		if !hasNeighbor {
			centerDistance := abs(f - 3)
			penalty += 15 - 2*centerDistance
		}
	}
	return -penalty
}

func passedPawns(b *board.Board, s types.Side) int {
	us := b.KindBB[types.Pawn].Intersect(b.SideBB[s])
	enemy := b.KindBB[types.Pawn].Intersect(b.SideBB[s.Other()])
	bonus := 0

	for bb := us; !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		if isPassed(sq, s, enemy) {
			rank := sq.Rank()
			if s == types.Black {
				rank = 7 - rank
			}
			bonus += passedBonusByRank[rank]
		}
	}
	return bonus
}

// isPassed reports whether the pawn on sq has no enemy pawn on its own or
// adjacent files anywhere ahead of it (in the direction it advances).
func isPassed(sq types.Square, s types.Side, enemyPawns types.SquareSet) bool {
	file, rank := sq.File(), sq.Rank()
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		for bb := enemyPawns.Intersect(types.FileMask(f)); !bb.IsEmpty(); {
			var esq types.Square
			esq, bb = bb.PopLSB()
			if s == types.White && esq.Rank() > rank {
				return false
			}
			if s == types.Black && esq.Rank() < rank {
				return false
			}
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
