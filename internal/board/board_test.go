package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/halfmove-chess/halfmove/internal/types"
)

func TestNewBoardIsStartingPosition(t *testing.T) {
	b := NewBoard()
	if b.ActiveSide != types.White {
		t.Errorf("ActiveSide = %v, want White", b.ActiveSide)
	}
	if b.Castling != types.AllCastlingRights {
		t.Errorf("Castling = %v, want AllCastlingRights", b.Castling)
	}
	if b.EnPassant != types.NoSquare {
		t.Errorf("EnPassant = %v, want NoSquare", b.EnPassant)
	}
	if got := b.Occupied().Count(); got != 32 {
		t.Errorf("Occupied().Count() = %d, want 32", got)
	}
}

func TestFENRoundtrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) error: %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Errorf("ToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestZobristConsistency(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if got, want := b.Zobrist, b.ComputeHash(); got != want {
		t.Errorf("Zobrist = %#x, ComputeHash() = %#x, want equal", got, want)
	}
}

func TestMakeUnmakeRoundtrip(t *testing.T) {
	b, err := FromFEN(StartingFEN)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	before := *b
	m := types.NewMove(types.NewSquare(4, 1), types.NewSquare(4, 3), types.DoublePawnPush)

	undo := b.MakeMove(m)
	b.UnmakeMove(undo)

	if diff := cmp.Diff(before, *b); diff != "" {
		t.Errorf("board after make/unmake roundtrip differs (-want +got):\n%s", diff)
	}
	if got, want := b.Zobrist, b.ComputeHash(); got != want {
		t.Errorf("Zobrist after roundtrip = %#x, recomputed = %#x", got, want)
	}
}

func TestCastlingRoundtrip(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	before := *b

	m := types.NewMove(types.NewSquare(4, 0), types.NewSquare(6, 0), types.KingCastle)
	undo := b.MakeMove(m)

	if b.PieceAt(types.NewSquare(6, 0)).Kind() != types.King {
		t.Error("king did not land on g1")
	}
	if b.PieceAt(types.NewSquare(5, 0)).Kind() != types.Rook {
		t.Error("rook did not land on f1")
	}
	if b.Castling.Has(types.WhiteKingside) || b.Castling.Has(types.WhiteQueenside) {
		t.Error("white castling rights not cleared after castling")
	}

	b.UnmakeMove(undo)
	if diff := cmp.Diff(before, *b); diff != "" {
		t.Errorf("board after castle make/unmake differs (-want +got):\n%s", diff)
	}
	if !b.Castling.Has(types.AllCastlingRights) {
		t.Errorf("Castling after unmake = %v, want AllCastlingRights restored", b.Castling)
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	before := *b

	e5 := types.NewSquare(4, 4)
	f6 := types.NewSquare(5, 5)
	f5 := types.NewSquare(5, 4)
	m := types.NewMove(e5, f6, types.EnPassant)

	undo := b.MakeMove(m)
	if !b.PieceAt(f5).IsNone() {
		t.Error("captured pawn on f5 not removed by en-passant capture")
	}
	if b.PieceAt(f6).Kind() != types.Pawn {
		t.Error("capturing pawn did not land on f6")
	}

	b.UnmakeMove(undo)
	if *b != before {
		t.Errorf("board after en-passant make/unmake = %+v, want %+v", *b, before)
	}
	if b.PieceAt(f5).Kind() != types.Pawn || b.PieceAt(f5).Side() != types.Black {
		t.Error("black pawn on f5 not restored by unmake")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/3NK3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/3BK3 w - - 0 1", true},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/2NNK3 w - - 0 1", true},
		{"K+R vs K is sufficient", "4k3/8/8/8/8/8/8/3RK3 w - - 0 1", false},
		{"K+B+B vs K is sufficient (bishop pair)", "4k3/8/8/8/8/8/8/2BBK3 w - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromFEN(tt.fen)
			if err != nil {
				t.Fatalf("FromFEN error: %v", err)
			}
			if got := b.InsufficientMaterial(); got != tt.want {
				t.Errorf("InsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}
