//go:build debug

package board

import (
	"fmt"

	"github.com/halfmove-chess/halfmove/internal/types"
)

// assertInvariants cross-checks the board's redundant state after a
// mutation: mailbox vs bitboards, bitboard disjointness, and the
// incremental hash against a from-scratch recomputation. Compiled in only
// under the debug build tag; release builds get the no-op in nodebug.go.
func (b *Board) assertInvariants() {
	var union types.SquareSet
	for kind, bb := range b.KindBB {
		if !union.Intersect(bb).IsEmpty() {
			panic(fmt.Sprintf("board: kind bitboard %d overlaps another kind", kind))
		}
		union = union.Union(bb)
	}
	if union != b.SideBB[types.White].Union(b.SideBB[types.Black]) {
		panic("board: kind bitboards do not cover the side bitboards")
	}
	if !b.SideBB[types.White].Intersect(b.SideBB[types.Black]).IsEmpty() {
		panic("board: side bitboards overlap")
	}

	for sq := types.Square(0); sq < 64; sq++ {
		p := b.Mailbox[sq]
		if p.IsNone() {
			if union.Test(sq) {
				panic(fmt.Sprintf("board: square %v occupied in bitboards but empty in mailbox", sq))
			}
			continue
		}
		if !b.KindBB[p.Kind()].Test(sq) || !b.SideBB[p.Side()].Test(sq) {
			panic(fmt.Sprintf("board: square %v holds %v in mailbox but not in bitboards", sq, p))
		}
	}

	if b.Zobrist != b.ComputeHash() {
		panic("board: incremental zobrist diverged from recomputation")
	}
}
