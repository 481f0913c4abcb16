package movegen

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// IsLegal reports whether pseudo-legal move m leaves the mover's own king
// safe, and for a castling move also that the king's start, transit and
// destination squares are not attacked. genCastling already applies the
// castling test during generation; repeating it here, and verifying king
// safety via make/unmake, keeps the function correct even when called with
// a move built by hand (e.g. in tests or a UCI "moves" command) rather than
// produced by PseudoLegal.
func IsLegal(b *board.Board, m types.Move) bool {
	mover := b.ActiveSide
	if flag := m.Flag(); flag == types.KingCastle || flag == types.QueenCastle {
		from, to := m.From(), m.To()
		transit := types.NewSquare((from.File()+to.File())/2, from.Rank())
		attacked := AttackMap(b, mover.Other())
		if attacked.Test(from) || attacked.Test(transit) || attacked.Test(to) {
			return false
		}
	}
	undo := b.MakeMove(m)
	kingBB := b.KindBB[types.King].Intersect(b.SideBB[mover])
	safe := kingBB.IsEmpty() || !IsSquareAttacked(b, kingBB.LSB(), b.ActiveSide)
	b.UnmakeMove(undo)
	return safe
}
