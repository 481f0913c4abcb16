package board

import (
	"github.com/halfmove-chess/halfmove/internal/types"
	"github.com/halfmove-chess/halfmove/internal/zobrist"
)

// Undo captures everything MakeMove/MakeNullMove change, so UnmakeMove and
// UnmakeNullMove can restore the board exactly. Board holds no pointers or
// slices, so a plain value copy is a complete, cheap snapshot — the
// simplification explicitly allowed for implementations that prefer it over
// tracking a minimal diff.
type Undo Board

// MakeMove applies m to the board and returns an Undo that restores the
// prior position. m is assumed pseudo-legal; legality (king safety) is the
// caller's responsibility.
func (b *Board) MakeMove(m types.Move) Undo {
	undo := Undo(*b)

	from, to, flag := m.From(), m.To(), m.Flag()
	mover := b.Mailbox[from]
	us, them := b.ActiveSide, b.ActiveSide.Other()

	// Step 2: clear any existing en-passant target from the hash.
	if b.EnPassant != types.NoSquare {
		zobrist.ToggleEnPassantFile(&b.Zobrist, b.EnPassant.File())
		b.EnPassant = types.NoSquare
	}

	// Step 3: toggle current castling rights out of the hash.
	zobrist.ToggleCastling(&b.Zobrist, b.Castling)

	// Step 4: king move forfeits both of the mover's castling rights.
	if mover.Kind() == types.King {
		b.Castling &^= types.KingsideFor(us) | types.QueensideFor(us)
	}
	// Step 5: a piece arriving at or leaving a corner forfeits that corner's
	// right — covers rook moves and rook captures in one pass.
	b.Castling &^= cornerCastlingLoss(from) | cornerCastlingLoss(to)

	// Step 6: toggle the new castling rights into the hash.
	zobrist.ToggleCastling(&b.Zobrist, b.Castling)

	// Step 7: move the piece, removing any normal capture first.
	if flag == types.Capture || (flag.IsPromotion() && flag.IsCapture()) {
		b.remove(b.Mailbox[to], to)
	}
	b.relocate(mover, from, to)

	// Step 8: flag-specific follow-up.
	switch flag {
	case types.DoublePawnPush:
		epSq := types.NewSquare(from.File(), from.Rank()+us.Forward())
		b.EnPassant = epSq
		zobrist.ToggleEnPassantFile(&b.Zobrist, epSq.File())
	case types.KingCastle:
		rank := from.Rank()
		b.relocate(types.NewPiece(us, types.Rook), types.NewSquare(7, rank), types.NewSquare(5, rank))
	case types.QueenCastle:
		rank := from.Rank()
		b.relocate(types.NewPiece(us, types.Rook), types.NewSquare(0, rank), types.NewSquare(3, rank))
	case types.EnPassant:
		capturedSq := types.NewSquare(to.File(), from.Rank())
		b.remove(types.NewPiece(them, types.Pawn), capturedSq)
	}
	if flag.IsPromotion() {
		b.remove(mover, to)
		b.put(types.NewPiece(us, flag.PromotionKind()), to)
	}

	// Step 9: halfmove clock.
	if mover.Kind() == types.Pawn || flag.IsCapture() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	// Step 10: fullmove counter increments after Black moves.
	if us == types.Black {
		b.FullmoveCounter++
	}

	// Step 11: flip side to move.
	zobrist.ToggleSideToMove(&b.Zobrist)
	b.ActiveSide = them

	b.assertInvariants()
	return undo
}

// UnmakeMove restores the board to the state captured by undo.
func (b *Board) UnmakeMove(undo Undo) {
	*b = Board(undo)
	b.assertInvariants()
}

// MakeNullMove passes the turn without moving a piece: flips the side to
// move and clears any en-passant target, for use by null-move pruning in
// search. Returns an Undo that restores the prior state.
func (b *Board) MakeNullMove() Undo {
	undo := Undo(*b)

	if b.EnPassant != types.NoSquare {
		zobrist.ToggleEnPassantFile(&b.Zobrist, b.EnPassant.File())
		b.EnPassant = types.NoSquare
	}
	zobrist.ToggleSideToMove(&b.Zobrist)
	b.ActiveSide = b.ActiveSide.Other()

	return undo
}

// UnmakeNullMove restores the board to the state captured by undo.
func (b *Board) UnmakeNullMove(undo Undo) {
	*b = Board(undo)
}
