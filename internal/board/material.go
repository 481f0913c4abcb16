package board

import "github.com/halfmove-chess/halfmove/internal/types"

// InsufficientMaterial reports whether neither side has enough material to
// force checkmate: K vs K, K+minor vs K, or K+N+N vs K with no pawns, rooks,
// queens, or a bishop pair on either side.
func (b *Board) InsufficientMaterial() bool {
	if !b.KindBB[types.Pawn].IsEmpty() || !b.KindBB[types.Rook].IsEmpty() || !b.KindBB[types.Queen].IsEmpty() {
		return false
	}

	whiteMinors := b.KindBB[types.Knight].Union(b.KindBB[types.Bishop]).Intersect(b.SideBB[types.White]).Count()
	blackMinors := b.KindBB[types.Knight].Union(b.KindBB[types.Bishop]).Intersect(b.SideBB[types.Black]).Count()

	if whiteMinors == 0 && blackMinors == 0 {
		return true // K vs K
	}
	if whiteMinors <= 1 && blackMinors == 0 {
		return true // K+minor vs K
	}
	if blackMinors <= 1 && whiteMinors == 0 {
		return true // K vs K+minor
	}

	whiteKnights := b.KindBB[types.Knight].Intersect(b.SideBB[types.White]).Count()
	blackKnights := b.KindBB[types.Knight].Intersect(b.SideBB[types.Black]).Count()
	whiteBishops := b.KindBB[types.Bishop].Intersect(b.SideBB[types.White]).Count()
	blackBishops := b.KindBB[types.Bishop].Intersect(b.SideBB[types.Black]).Count()

	if whiteBishops == 0 && blackBishops == 0 {
		if whiteKnights == 2 && blackKnights == 0 {
			return true // K+N+N vs K
		}
		if blackKnights == 2 && whiteKnights == 0 {
			return true // K vs K+N+N
		}
	}

	return false
}
