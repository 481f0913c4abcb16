package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// fileWeight penalizes an open king file more the closer it is to the
// board edge, where a king has fewer escape squares.
var fileWeight = [8]int{15, 10, 8, 5, 5, 8, 10, 15}

// kingSafety is a middlegame-only term: absent pawns on the king's own
// file and its two neighbors are penalized, weighted by how exposed that
// file is. mgWeight lets callers scale the term out entirely in the
// endgame without a separate code path.
func kingSafety(b *board.Board, mgWeight int) int {
	if mgWeight == 0 {
		return 0
	}
	score := kingSafetyFor(b, types.White) - kingSafetyFor(b, types.Black)
	score += kingShield(b, types.White) - kingShield(b, types.Black)
	return score * mgWeight / MaxPhase
}

func kingSafetyFor(b *board.Board, s types.Side) int {
	kingBB := b.KindBB[types.King].Intersect(b.SideBB[s])
	if kingBB.IsEmpty() {
		return 0
	}
	kingSq := kingBB.LSB()
	kingFile := kingSq.File()
	pawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s])

	penalty := 0
	for f := kingFile - 1; f <= kingFile+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		if pawnsOnFile(pawns, f) == 0 {
			penalty += fileWeight[kingFile]
		}
	}
	return -penalty
}

// kingShield rewards pawns sheltering the king: present on one of the
// king's three files, within two ranks ahead.
func kingShield(b *board.Board, s types.Side) int {
	kingBB := b.KindBB[types.King].Intersect(b.SideBB[s])
	if kingBB.IsEmpty() {
		return 0
	}
	kingSq := kingBB.LSB()
	file, rank := kingSq.File(), kingSq.Rank()
	pawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s])

	bonus := 0
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		for dr := 1; dr <= 2; dr++ {
			r := rank + dr*s.Forward()
			if r < 0 || r > 7 {
				continue
			}
			if pawns.Test(types.NewSquare(f, r)) {
				bonus += 10
			}
		}
	}
	return bonus
}
