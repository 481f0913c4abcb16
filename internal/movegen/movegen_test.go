package movegen

import (
	"testing"

	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/types"
)

func TestLegalMoveCountStartingPosition(t *testing.T) {
	b := board.NewBoard()
	if got := len(LegalMoves(b)); got != 20 {
		t.Errorf("len(LegalMoves(starting)) = %d, want 20", got)
	}
}

func TestLegalMoveSoundness(t *testing.T) {
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	for _, m := range LegalMoves(b) {
		undo := b.MakeMove(m)
		mover := b.ActiveSide.Other()
		kingBB := b.KindBB[types.King].Intersect(b.SideBB[mover])
		if !kingBB.IsEmpty() && IsSquareAttacked(b, kingBB.LSB(), b.ActiveSide) {
			t.Errorf("move %v reported legal but leaves mover's king in check", m)
		}
		b.UnmakeMove(undo)
	}
}

func TestCaptureOnlyIsSubsetOfFull(t *testing.T) {
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	full := PseudoLegal(b, false, nil)
	captures := PseudoLegal(b, true, nil)

	fullSet := make(map[types.Move]bool, len(full))
	for _, m := range full {
		fullSet[m] = true
	}
	for _, m := range captures {
		if !m.IsCapture() && !m.IsPromotion() {
			t.Errorf("capturesOnly generated non-capture, non-promotion move %v", m)
		}
		if !fullSet[m] {
			t.Errorf("capturesOnly generated move %v not present in full generation", m)
		}
	}
}

func TestCheckmateStatus(t *testing.T) {
	b, err := board.FromFEN("7k/6pp/8/8/8/8/6PP/5RK1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m := types.NewMove(types.NewSquare(5, 0), types.NewSquare(5, 7), types.Quiet)
	undo := b.MakeMove(m)
	defer b.UnmakeMove(undo)

	if got := Status(b, 1); got != Checkmate {
		t.Errorf("Status() = %v, want Checkmate", got)
	}
}

func TestStalemateStatus(t *testing.T) {
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if got := Status(b, 1); got != Stalemate {
		t.Errorf("Status() = %v, want Stalemate", got)
	}
}

func TestEnPassantGenerated(t *testing.T) {
	b, err := board.FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	found := false
	for _, m := range LegalMoves(b) {
		if m.Flag() == types.EnPassant {
			found = true
			if m.From() != types.NewSquare(4, 4) || m.To() != types.NewSquare(5, 5) {
				t.Errorf("en-passant move = %v, want e5f6", m)
			}
		}
	}
	if !found {
		t.Error("en-passant capture not generated")
	}
}

// checkBoardConsistency cross-checks the board's three redundant piece
// encodings: every mailbox entry must match kind and side bitboard
// membership, the bitboards must be pairwise disjoint, and the incremental
// zobrist must equal a from-scratch recomputation.
func checkBoardConsistency(t *testing.T, b *board.Board) {
	t.Helper()
	for sq := types.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		for kind := types.PieceKind(0); kind < types.PieceKind(types.NumKinds); kind++ {
			inKind := b.KindBB[kind].Test(sq)
			if want := !p.IsNone() && p.Kind() == kind; inKind != want {
				t.Fatalf("square %v: KindBB[%v] membership = %v, mailbox says %v", sq, kind, inKind, p)
			}
		}
		for _, side := range [2]types.Side{types.White, types.Black} {
			inSide := b.SideBB[side].Test(sq)
			if want := !p.IsNone() && p.Side() == side; inSide != want {
				t.Fatalf("square %v: SideBB[%v] membership = %v, mailbox says %v", sq, side, inSide, p)
			}
		}
	}
	if !b.SideBB[types.White].Intersect(b.SideBB[types.Black]).IsEmpty() {
		t.Fatal("side bitboards overlap")
	}
	if got, want := b.Zobrist, b.ComputeHash(); got != want {
		t.Fatalf("incremental zobrist %#x != recomputed %#x", got, want)
	}
}

func TestBoardConsistencyThroughMakeUnmake(t *testing.T) {
	fens := []string{
		board.StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	for _, fen := range fens {
		b, err := board.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) error: %v", fen, err)
		}
		checkBoardConsistency(t, b)
		for _, m := range LegalMoves(b) {
			undo := b.MakeMove(m)
			checkBoardConsistency(t, b)
			b.UnmakeMove(undo)
			checkBoardConsistency(t, b)
		}
	}
}

func TestCastlingNotGeneratedWhileInCheck(t *testing.T) {
	b, err := board.FromFEN("r3k2r/8/8/4R3/8/8/8/4K3 b kq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	for _, m := range LegalMoves(b) {
		if m.Flag() == types.KingCastle || m.Flag() == types.QueenCastle {
			t.Errorf("castling move %v generated while king in check", m)
		}
	}
}
