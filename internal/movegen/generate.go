package movegen

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/magic"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// maxMoves is a generous upper bound on pseudo-legal moves in any reachable
// position (the practical maximum is around 218); 256 leaves headroom.
const maxMoves = 256

// PseudoLegal appends every pseudo-legal move for the side to move to
// moves, returning the extended slice. When capturesOnly is true, only
// moves that capture or promote are generated; both modes share one code
// path rather than maintaining two generators.
func PseudoLegal(b *board.Board, capturesOnly bool, moves []types.Move) []types.Move {
	us := b.ActiveSide
	own := b.SideBB[us]
	occ := b.Occupied()

	moves = genPawnMoves(b, capturesOnly, moves)
	moves = genLeaperMoves(b.KindBB[types.Knight].Intersect(own), own, magic.KnightAttacks, capturesOnly, b, moves)
	moves = genLeaperMoves(b.KindBB[types.King].Intersect(own), own, magic.KingAttacks, capturesOnly, b, moves)
	moves = genSliderMoves(b.KindBB[types.Bishop].Intersect(own), own, occ, magic.BishopAttacks, capturesOnly, b, moves)
	moves = genSliderMoves(b.KindBB[types.Rook].Intersect(own), own, occ, magic.RookAttacks, capturesOnly, b, moves)
	moves = genSliderMoves(b.KindBB[types.Queen].Intersect(own), own, occ, magic.QueenAttacks, capturesOnly, b, moves)
	if !capturesOnly {
		moves = genCastling(b, moves)
	}

	return moves
}

// LegalMoves returns every legal move for the side to move.
func LegalMoves(b *board.Board) []types.Move {
	pseudo := PseudoLegal(b, false, make([]types.Move, 0, maxMoves))
	legal := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegal(b, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

func genLeaperMoves(pieces types.SquareSet, own types.SquareSet, attacksOf func(types.Square) types.SquareSet, capturesOnly bool, b *board.Board, moves []types.Move) []types.Move {
	for bb := pieces; !bb.IsEmpty(); {
		var from types.Square
		from, bb = bb.PopLSB()
		targets := attacksOf(from).Without(own)
		moves = appendTargets(b, from, targets, capturesOnly, moves)
	}
	return moves
}

func genSliderMoves(pieces types.SquareSet, own, occ types.SquareSet, attacksOf func(types.Square, types.SquareSet) types.SquareSet, capturesOnly bool, b *board.Board, moves []types.Move) []types.Move {
	for bb := pieces; !bb.IsEmpty(); {
		var from types.Square
		from, bb = bb.PopLSB()
		targets := attacksOf(from, occ).Without(own)
		moves = appendTargets(b, from, targets, capturesOnly, moves)
	}
	return moves
}

func appendTargets(b *board.Board, from types.Square, targets types.SquareSet, capturesOnly bool, moves []types.Move) []types.Move {
	enemy := b.SideBB[b.ActiveSide.Other()]
	for bb := targets; !bb.IsEmpty(); {
		var to types.Square
		to, bb = bb.PopLSB()
		if enemy.Test(to) {
			moves = append(moves, types.NewMove(from, to, types.Capture))
		} else if !capturesOnly {
			moves = append(moves, types.NewMove(from, to, types.Quiet))
		}
	}
	return moves
}

func genPawnMoves(b *board.Board, capturesOnly bool, moves []types.Move) []types.Move {
	us := b.ActiveSide
	occ := b.Occupied()
	enemy := b.SideBB[us.Other()]
	fwd := us.Forward()
	startRank := 1
	lastRank := 7
	if us == types.Black {
		startRank = 6
		lastRank = 0
	}

	for bb := b.KindBB[types.Pawn].Intersect(b.SideBB[us]); !bb.IsEmpty(); {
		var from types.Square
		from, bb = bb.PopLSB()
		file, rank := from.File(), from.Rank()

		oneSq := types.NewSquare(file, rank+fwd)
		if oneSq.IsValid() && !occ.Test(oneSq) {
			if !capturesOnly || oneSq.Rank() == lastRank {
				moves = appendPawnMove(moves, from, oneSq, lastRank, false)
			}
			if !capturesOnly && rank == startRank {
				twoSq := types.NewSquare(file, rank+2*fwd)
				if !occ.Test(twoSq) {
					moves = append(moves, types.NewMove(from, twoSq, types.DoublePawnPush))
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			cf := file + df
			if cf < 0 || cf > 7 {
				continue
			}
			to := types.NewSquare(cf, rank+fwd)
			if enemy.Test(to) {
				moves = appendPawnMove(moves, from, to, lastRank, true)
			} else if to == b.EnPassant {
				moves = append(moves, types.NewMove(from, to, types.EnPassant))
			}
		}
	}

	return moves
}

func appendPawnMove(moves []types.Move, from, to types.Square, lastRank int, capture bool) []types.Move {
	if to.Rank() == lastRank {
		if capture {
			moves = append(moves,
				types.NewMove(from, to, types.PromoFlag(types.Queen, true)),
				types.NewMove(from, to, types.PromoFlag(types.Knight, true)),
				types.NewMove(from, to, types.PromoFlag(types.Rook, true)),
				types.NewMove(from, to, types.PromoFlag(types.Bishop, true)),
			)
		} else {
			moves = append(moves,
				types.NewMove(from, to, types.PromoFlag(types.Queen, false)),
				types.NewMove(from, to, types.PromoFlag(types.Knight, false)),
				types.NewMove(from, to, types.PromoFlag(types.Rook, false)),
				types.NewMove(from, to, types.PromoFlag(types.Bishop, false)),
			)
		}
		return moves
	}
	flag := types.Quiet
	if capture {
		flag = types.Capture
	}
	return append(moves, types.NewMove(from, to, flag))
}

func genCastling(b *board.Board, moves []types.Move) []types.Move {
	us := b.ActiveSide
	them := us.Other()
	rank := 0
	if us == types.Black {
		rank = 7
	}
	occ := b.Occupied()
	kingSq := types.NewSquare(4, rank)

	if b.Castling.Has(types.KingsideFor(us)) {
		f := types.NewSquare(5, rank)
		g := types.NewSquare(6, rank)
		if !occ.Test(f) && !occ.Test(g) &&
			!IsSquareAttacked(b, kingSq, them) && !IsSquareAttacked(b, f, them) && !IsSquareAttacked(b, g, them) {
			moves = append(moves, types.NewMove(kingSq, g, types.KingCastle))
		}
	}
	if b.Castling.Has(types.QueensideFor(us)) {
		d := types.NewSquare(3, rank)
		c := types.NewSquare(2, rank)
		bSq := types.NewSquare(1, rank)
		if !occ.Test(d) && !occ.Test(c) && !occ.Test(bSq) &&
			!IsSquareAttacked(b, kingSq, them) && !IsSquareAttacked(b, d, them) && !IsSquareAttacked(b, c, them) {
			moves = append(moves, types.NewMove(kingSq, c, types.QueenCastle))
		}
	}

	return moves
}
