package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/magic"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// pieceTerms folds outposts, rook-file, connected-rooks and bishop-pair
// terms into a single White-positive centipawn delta.
func pieceTerms(b *board.Board) int {
	score := 0
	score += outposts(b, types.White) - outposts(b, types.Black)
	score += rookFiles(b, types.White) - rookFiles(b, types.Black)
	score += connectedRooks(b, types.White) - connectedRooks(b, types.Black)
	score += bishopPair(b, types.White) - bishopPair(b, types.Black)
	return score
}

// outposts rewards a knight or bishop on rank 4 or beyond (side-relative)
// that no enemy pawn can ever attack.
func outposts(b *board.Board, s types.Side) int {
	enemyPawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s.Other()])
	minors := b.KindBB[types.Knight].Union(b.KindBB[types.Bishop]).Intersect(b.SideBB[s])

	bonus := 0
	for bb := minors; !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		rank := sq.Rank()
		if s == types.Black {
			rank = 7 - rank
		}
		if rank < 3 {
			continue
		}
		if canAttackSquare(sq, s.Other(), enemyPawns) {
			continue
		}
		bonus += 20
	}
	return bonus
}

// canAttackSquare reports whether any pawn in enemyPawns could ever
// capture onto sq as it advances (adjacent file, behind sq in its
// direction of travel).
func canAttackSquare(sq types.Square, enemySide types.Side, enemyPawns types.SquareSet) bool {
	file, rank := sq.File(), sq.Rank()
	for f := file - 1; f <= file+1; f += 2 {
		if f < 0 || f > 7 {
			continue
		}
		for bb := enemyPawns.Intersect(types.FileMask(f)); !bb.IsEmpty(); {
			var esq types.Square
			esq, bb = bb.PopLSB()
			if enemySide == types.White && esq.Rank() < rank {
				return true
			}
			if enemySide == types.Black && esq.Rank() > rank {
				return true
			}
		}
	}
	return false
}

func rookFiles(b *board.Board, s types.Side) int {
	rooks := b.KindBB[types.Rook].Intersect(b.SideBB[s])
	ownPawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s])
	enemyPawns := b.KindBB[types.Pawn].Intersect(b.SideBB[s.Other()])

	bonus := 0
	for bb := rooks; !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		f := sq.File()
		if pawnsOnFile(ownPawns, f) == 0 {
			if pawnsOnFile(enemyPawns, f) == 0 {
				bonus += 20 // open file
			} else {
				bonus += 10 // semi-open file
			}
		}
	}
	return bonus
}

func connectedRooks(b *board.Board, s types.Side) int {
	rooks := b.KindBB[types.Rook].Intersect(b.SideBB[s]).Squares()
	if len(rooks) < 2 {
		return 0
	}
	occ := b.Occupied()
	bonus := 0
	for i := 0; i < len(rooks); i++ {
		for j := i + 1; j < len(rooks); j++ {
			if magic.RookAttacks(rooks[i], occ).Test(rooks[j]) {
				bonus += 20
				if rooks[i].File() == rooks[j].File() {
					bonus += 20
				}
			}
		}
	}
	return bonus
}

func bishopPair(b *board.Board, s types.Side) int {
	if b.KindBB[types.Bishop].Intersect(b.SideBB[s]).Count() >= 2 {
		return 50
	}
	return 0
}
