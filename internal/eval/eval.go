// Package eval provides a tapered, classical evaluation function: a
// centipawn score from the active side's perspective, blending a
// middlegame and an endgame term by remaining material.
package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// phaseWeight is the contribution of one piece of each kind toward the
// 0-24 phase scale. Chosen so a fresh board's non-pawn material sums to
// exactly 24 (4 knights + 4 bishops at weight 1, 4 rooks at weight 2,
// 2 queens at weight 4): 4+4+8+8=24.
var phaseWeight = [types.NumKinds]int{
	types.Knight: 1, types.Bishop: 1, types.Rook: 2, types.Queen: 4,
}

const MaxPhase = 24

// Phase returns a 0..24 scalar interpolating endgame (0) to middlegame
// (24), computed from remaining non-pawn material on both sides.
func Phase(b *board.Board) int {
	phase := 0
	for kind, w := range phaseWeight {
		if w == 0 {
			continue
		}
		phase += w * b.KindBB[kind].Count()
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

// Evaluate returns a centipawn score from the perspective of the side to
// move (positive favors the mover). Returns exactly 0 when neither side
// has enough material to force checkmate.
func Evaluate(b *board.Board) int {
	if b.InsufficientMaterial() {
		return 0
	}

	mgWeight := Phase(b)
	egWeight := MaxPhase - mgWeight

	absolute := materialAndPST(b, types.White, mgWeight, egWeight) + materialAndPST(b, types.Black, mgWeight, egWeight)

	absolute += kingSafety(b, mgWeight)
	absolute += pawnStructure(b)
	absolute += pieceTerms(b)
	absolute += mobility(b)
	absolute += mopUp(b, egWeight)

	return absolute * b.ActiveSide.Sign()
}
