package eval

import (
	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// mgValue and egValue are the classical middlegame/endgame centipawn piece
// values used by tapered evaluation (the widely used PeSTO set). King is
// valued 0: its presence is unconditional, not a material term.
var mgValue = [types.NumKinds]int{
	types.Pawn: 82, types.Knight: 337, types.Bishop: 365,
	types.Rook: 477, types.Queen: 1025, types.King: 0,
}

var egValue = [types.NumKinds]int{
	types.Pawn: 94, types.Knight: 281, types.Bishop: 297,
	types.Rook: 512, types.Queen: 936, types.King: 0,
}

// Piece-square tables, White's perspective, a1=index 0. Black pieces look
// up Square.Mirror() of their actual square, a standard flip-for-Black
// convention, with a separate mg/eg pair per piece for the tapered blend.

var mgPawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var egPawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 15, 20, 20, 15, 10, 10,
	20, 20, 25, 30, 30, 25, 20, 20,
	35, 35, 40, 45, 45, 40, 35, 35,
	60, 60, 65, 70, 70, 65, 60, 60,
	90, 90, 90, 90, 90, 90, 90, 90,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var mgKingPST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var egKingPST = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// PieceValue returns the classical middlegame centipawn value of a piece
// kind, for callers outside this package that need a single context-free
// number (move ordering's MVV-LVA term, mostly).
func PieceValue(kind types.PieceKind) int {
	return mgValue[kind]
}

func pstSquare(p types.Piece, sq types.Square) types.Square {
	if p.Side() == types.White {
		return sq
	}
	return sq.Mirror()
}

func mgPST(p types.Piece) *[64]int {
	switch p.Kind() {
	case types.Pawn:
		return &mgPawnPST
	case types.Knight:
		return &knightPST
	case types.Bishop:
		return &bishopPST
	case types.Rook:
		return &rookPST
	case types.Queen:
		return &queenPST
	default:
		return &mgKingPST
	}
}

func egPST(p types.Piece) *[64]int {
	switch p.Kind() {
	case types.Pawn:
		return &egPawnPST
	case types.Knight:
		return &knightPST
	case types.Bishop:
		return &bishopPST
	case types.Rook:
		return &rookPST
	case types.Queen:
		return &queenPST
	default:
		return &egKingPST
	}
}

// PositionalDelta returns the tapered piece-square value of moving piece p
// from one square to another, from p's own side's perspective (positive
// means the move improves p's placement), for use by move ordering's
// positional-delta term. phase is the 0..MaxPhase middlegame weight.
func PositionalDelta(p types.Piece, from, to types.Square, phase int) int {
	mgWeight := phase
	egWeight := MaxPhase - phase
	fromSq, toSq := pstSquare(p, from), pstSquare(p, to)
	mgDelta := mgPST(p)[toSq] - mgPST(p)[fromSq]
	egDelta := egPST(p)[toSq] - egPST(p)[fromSq]
	return (mgDelta*mgWeight + egDelta*egWeight) / MaxPhase
}

// materialAndPST returns the tapered material-plus-positional term for side
// s, White-positive (the caller applies the side sign).
func materialAndPST(b *board.Board, s types.Side, mgWeight, egWeight int) int {
	score := 0
	for kind := types.PieceKind(0); kind < types.PieceKind(types.NumKinds); kind++ {
		pieces := b.KindBB[kind].Intersect(b.SideBB[s])
		p := types.NewPiece(s, kind)
		for bb := pieces; !bb.IsEmpty(); {
			var sq types.Square
			sq, bb = bb.PopLSB()
			pstSq := pstSquare(p, sq)
			mg := mgValue[kind] + mgPST(p)[pstSq]
			eg := egValue[kind] + egPST(p)[pstSq]
			taper := (mg*mgWeight + eg*egWeight) / MaxPhase
			if s == types.White {
				score += taper
			} else {
				score -= taper
			}
		}
	}
	return score
}
