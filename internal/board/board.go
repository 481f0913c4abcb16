// Package board implements the authoritative position state: bitboards,
// mailbox, and the make/unmake machinery that keeps an incremental Zobrist
// hash in sync with both.
package board

import (
	"github.com/halfmove-chess/halfmove/internal/types"
	"github.com/halfmove-chess/halfmove/internal/zobrist"
)

// Board is the authoritative position state. Bitboards are authoritative
// for move generation; Mailbox is authoritative for square-to-piece
// queries. Both are kept in lockstep by every mutation in this package.
type Board struct {
	KindBB  [types.NumKinds]types.SquareSet
	SideBB  [2]types.SquareSet
	Mailbox [64]types.Piece

	ActiveSide      types.Side
	Castling        types.CastlingRights
	EnPassant       types.Square
	HalfmoveClock   int
	FullmoveCounter int
	Zobrist         uint64
}

// NewBoard returns the standard chess starting position.
func NewBoard() *Board {
	b, err := FromFEN(StartingFEN)
	if err != nil {
		// The starting FEN is a compile-time constant; a parse failure here
		// would be a bug in FromFEN, not bad input.
		panic(err)
	}
	return b
}

// StartingFEN is the FEN for the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PieceAt returns the piece occupying sq, or types.NoPiece if sq is empty.
func (b *Board) PieceAt(sq types.Square) types.Piece {
	return b.Mailbox[sq]
}

// Occupied returns the set of every occupied square.
func (b *Board) Occupied() types.SquareSet {
	return b.SideBB[types.White].Union(b.SideBB[types.Black])
}

// put places piece p on sq, updating bitboards, mailbox and hash. sq must
// currently be empty.
func (b *Board) put(p types.Piece, sq types.Square) {
	bb := types.SquareBB(sq)
	b.KindBB[p.Kind()] = b.KindBB[p.Kind()].Union(bb)
	b.SideBB[p.Side()] = b.SideBB[p.Side()].Union(bb)
	b.Mailbox[sq] = p
	zobrist.TogglePiece(&b.Zobrist, p, sq)
}

// remove clears sq, which must currently hold p, updating bitboards,
// mailbox and hash.
func (b *Board) remove(p types.Piece, sq types.Square) {
	bb := types.SquareBB(sq)
	b.KindBB[p.Kind()] = b.KindBB[p.Kind()].Without(bb)
	b.SideBB[p.Side()] = b.SideBB[p.Side()].Without(bb)
	b.Mailbox[sq] = types.NoPiece
	zobrist.TogglePiece(&b.Zobrist, p, sq)
}

// relocate moves p from one square to another without touching the hash
// twice for the same piece-square pair in between; equivalent to
// remove(p, from) followed by put(p, to).
func (b *Board) relocate(p types.Piece, from, to types.Square) {
	b.remove(p, from)
	b.put(p, to)
}

// ComputeHash recomputes the Zobrist hash from scratch by folding every
// occupied square's piece-square key together with the side-to-move,
// castling and en-passant keys. Used to cross-check the incrementally
// maintained Board.Zobrist field; the two must always agree.
func (b *Board) ComputeHash() uint64 {
	var h uint64
	for sq := types.Square(0); sq < 64; sq++ {
		p := b.Mailbox[sq]
		if p.IsNone() {
			continue
		}
		h ^= zobrist.PieceSquareKey(p, sq)
	}
	if b.ActiveSide == types.Black {
		h ^= zobrist.SideToMoveKey()
	}
	if b.EnPassant != types.NoSquare {
		h ^= zobrist.EnPassantFileKey(b.EnPassant.File())
	}
	h ^= zobrist.CastlingKey(b.Castling)
	return h
}

// cornerCastlingLoss reports which castling right, if any, is voided by a
// piece arriving at or departing from sq (a rook capture or a rook move off
// its home corner both cost the corresponding right).
func cornerCastlingLoss(sq types.Square) types.CastlingRights {
	switch sq {
	case types.NewSquare(0, 0): // a1
		return types.WhiteQueenside
	case types.NewSquare(7, 0): // h1
		return types.WhiteKingside
	case types.NewSquare(0, 7): // a8
		return types.BlackQueenside
	case types.NewSquare(7, 7): // h8
		return types.BlackKingside
	default:
		return 0
	}
}
