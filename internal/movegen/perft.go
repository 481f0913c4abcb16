package movegen

import "github.com/halfmove-chess/halfmove/internal/board"

// Perft counts the leaf nodes reachable in exactly depth plies from b,
// visiting only legal moves. It is a debug-only validation tool for move
// generation, make/unmake and the legality filter, not something the
// search uses.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range LegalMoves(b) {
		undo := b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove(undo)
	}
	return nodes
}
