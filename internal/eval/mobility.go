package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/magic"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// mobilityWeight scales a raw attack-square count into centipawns, one
// constant per piece kind (knights benefit more per extra square than
// queens, which already attack many squares by default).
var mobilityWeight = [types.NumKinds]int{
	types.Knight: 4,
	types.Bishop: 3,
	types.Rook:   2,
	types.Queen:  1,
}

// mobilityCap bounds how many attacked squares count toward the term, so
// an unusually open position doesn't dominate the rest of the evaluation.
var mobilityCap = [types.NumKinds]int{
	types.Knight: 8,
	types.Bishop: 13,
	types.Rook:   14,
	types.Queen:  20,
}

// mobility folds per-piece-kind mobility for both sides into a single
// White-positive centipawn delta.
func mobility(b *board.Board) int {
	return mobilityFor(b, types.White) - mobilityFor(b, types.Black)
}

func mobilityFor(b *board.Board, s types.Side) int {
	own := b.SideBB[s]
	occ := b.Occupied()
	score := 0

	for bb := b.KindBB[types.Knight].Intersect(own); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		score += mobilityTerm(types.Knight, magic.KnightAttacks(sq).Without(own).Count())
	}
	for bb := b.KindBB[types.Bishop].Intersect(own); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		score += mobilityTerm(types.Bishop, magic.BishopAttacks(sq, occ).Without(own).Count())
	}
	for bb := b.KindBB[types.Rook].Intersect(own); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		score += mobilityTerm(types.Rook, magic.RookAttacks(sq, occ).Without(own).Count())
	}
	for bb := b.KindBB[types.Queen].Intersect(own); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		score += mobilityTerm(types.Queen, magic.QueenAttacks(sq, occ).Without(own).Count())
	}

	return score
}

func mobilityTerm(kind types.PieceKind, count int) int {
	limit := mobilityCap[kind]
	if count > limit {
		count = limit
	}
	return count * mobilityWeight[kind]
}
