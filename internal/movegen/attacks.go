// Package movegen generates pseudo-legal and legal moves for a position and
// answers attack queries needed by the legality filter and by search (check
// detection, castling safety).
package movegen

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/magic"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// AttackMap returns every square attacked by side s, given the board's full
// occupancy. Pawn attacks are capture squares only (no forward pushes).
func AttackMap(b *board.Board, s types.Side) types.SquareSet {
	occ := b.Occupied()
	var attacks types.SquareSet

	for bb := b.KindBB[types.Pawn].Intersect(b.SideBB[s]); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		attacks = attacks.Union(magic.PawnAttacks(s, sq))
	}
	for bb := b.KindBB[types.Knight].Intersect(b.SideBB[s]); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		attacks = attacks.Union(magic.KnightAttacks(sq))
	}
	for bb := b.KindBB[types.King].Intersect(b.SideBB[s]); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		attacks = attacks.Union(magic.KingAttacks(sq))
	}
	for bb := b.KindBB[types.Bishop].Intersect(b.SideBB[s]); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		attacks = attacks.Union(magic.BishopAttacks(sq, occ))
	}
	for bb := b.KindBB[types.Rook].Intersect(b.SideBB[s]); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		attacks = attacks.Union(magic.RookAttacks(sq, occ))
	}
	for bb := b.KindBB[types.Queen].Intersect(b.SideBB[s]); !bb.IsEmpty(); {
		var sq types.Square
		sq, bb = bb.PopLSB()
		attacks = attacks.Union(magic.QueenAttacks(sq, occ))
	}

	return attacks
}

// IsSquareAttacked reports whether sq is attacked by side s.
func IsSquareAttacked(b *board.Board, sq types.Square, s types.Side) bool {
	return AttackMap(b, s).Test(sq)
}

// InCheck reports whether the side to move's king is currently attacked.
func InCheck(b *board.Board) bool {
	kingBB := b.KindBB[types.King].Intersect(b.SideBB[b.ActiveSide])
	if kingBB.IsEmpty() {
		return false
	}
	return IsSquareAttacked(b, kingBB.LSB(), b.ActiveSide.Other())
}
