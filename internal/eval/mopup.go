package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// mopUp rewards driving a losing king toward the board edge once one side
// has a clear material lead in the endgame, letting a won position convert
// instead of shuffling. egWeight scales the term out in the middlegame.
func mopUp(b *board.Board, egWeight int) int {
	if egWeight == 0 {
		return 0
	}

	material := 0
	for kind := types.PieceKind(0); kind < types.PieceKind(types.NumKinds); kind++ {
		material += mgValue[kind] * b.KindBB[kind].Intersect(b.SideBB[types.White]).Count()
		material -= mgValue[kind] * b.KindBB[kind].Intersect(b.SideBB[types.Black]).Count()
	}
	if abs(material) < 100 {
		return 0
	}

	leader, loser := types.White, types.Black
	if material < 0 {
		leader, loser = types.Black, types.White
	}

	leaderKingBB := b.KindBB[types.King].Intersect(b.SideBB[leader])
	loserKingBB := b.KindBB[types.King].Intersect(b.SideBB[loser])
	if leaderKingBB.IsEmpty() || loserKingBB.IsEmpty() {
		return 0
	}
	leaderKing, loserKing := leaderKingBB.LSB(), loserKingBB.LSB()

	cmd := centerManhattanDistance(loserKing)
	md := manhattanDistance(leaderKing, loserKing)
	bonus := 47*cmd + 16*(14-md)
	bonus = bonus * egWeight / MaxPhase

	if leader == types.Black {
		bonus = -bonus
	}
	return bonus
}

func manhattanDistance(a, b types.Square) int {
	return abs(a.File()-b.File()) + abs(a.Rank()-b.Rank())
}

// centerManhattanDistance measures how far sq is from the board's center
// (0 in the center four squares, 6 at a corner), so cornering the losing
// king raises the bonus.
func centerManhattanDistance(sq types.Square) int {
	return edgeDistance(sq.File()) + edgeDistance(sq.Rank())
}

// edgeDistance returns a coordinate's distance from the nearest of the two
// center lines (3 or 4), symmetric around the board's middle: 0 at the
// center, 3 at either edge.
func edgeDistance(c int) int {
	if c <= 3 {
		return 3 - c
	}
	return c - 4
}
