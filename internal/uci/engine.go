// Package uci implements the synchronous engine API a UCI front end would
// drive: set the position, search it under a time control, stop early, and
// run perft. It deliberately stops short of the UCI text protocol itself —
// reading "position"/"go"/"stop" lines from stdin and writing "bestmove"/
// "info" lines back out is left to the command that wires this package up.
package uci

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/halfmove-chess/halfmove/internal/board"
	"github.com/halfmove-chess/halfmove/internal/config"
	"github.com/halfmove-chess/halfmove/internal/movegen"
	"github.com/halfmove-chess/halfmove/internal/search"
	"github.com/halfmove-chess/halfmove/internal/tt"
	"github.com/halfmove-chess/halfmove/internal/types"
)

// ErrNoLegalMoves is returned by Go when the current position has no legal
// moves (checkmate or stalemate), since there is nothing to search for.
var ErrNoLegalMoves = errors.New("uci: no legal moves in current position")

// ErrIllegalMove is returned by ApplyMove when the submitted move is not in
// the current position's legal move list. The board is left untouched.
var ErrIllegalMove = errors.New("uci: illegal move")

// Engine holds one game's worth of search state: the current position, its
// history of reached zobrist keys (for repetition detection), and the
// Searcher carrying the transposition table across moves.
type Engine struct {
	cfg      config.Config
	board    *board.Board
	history  []uint64
	table    *tt.Table
	searcher *search.Searcher
}

// NewEngine builds an Engine sized according to cfg, starting from the
// standard opening position. The core engine never touches the filesystem
// itself; callers load cfg via config.LoadConfig and pass it in.
func NewEngine(cfg config.Config) *Engine {
	table := tt.New(cfg.HashSizeMB)
	e := &Engine{
		cfg:      cfg,
		table:    table,
		searcher: search.NewSearcher(table),
	}
	e.searcher.SetMaxDepth(cfg.MaxDepth)
	e.SetPosition(board.NewBoard(), nil)
	return e
}

// NewGame resets per-game state ahead of a fresh game: the transposition
// table is emptied (scores memoized for the old game's positions must not
// leak into the new one) and the position returns to the standard start.
func (e *Engine) NewGame() {
	e.table.Clear()
	e.SetPosition(board.NewBoard(), nil)
}

// SetPosition installs b as the current position. history is the sequence
// of zobrist keys reached earlier in the game, oldest first, NOT including
// b itself; SetPosition appends b's own key so repetition detection sees
// the full game so far.
func (e *Engine) SetPosition(b *board.Board, history []uint64) {
	e.board = b
	e.history = append(append([]uint64(nil), history...), b.Zobrist)
}

// ApplyMove plays a move given in UCI wire format ("e2e4", "e7e8q") on the
// current position, keeping the repetition history in sync: the history is
// cleared when the move is irreversible (a pawn move or a capture), since
// no earlier position can recur past one. The move must match one of the
// position's legal moves; otherwise ErrIllegalMove is returned and the
// board is not mutated.
func (e *Engine) ApplyMove(text string) error {
	from, to, promo, err := types.ParseMoveUCI(text)
	if err != nil {
		return err
	}

	for _, m := range movegen.LegalMoves(e.board) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() != (promo != types.NoPromotion) {
			continue
		}
		if m.IsPromotion() && m.Flag().PromotionKind() != promo {
			continue
		}

		irreversible := e.board.PieceAt(from).Kind() == types.Pawn || m.IsCapture()
		e.board.MakeMove(m)
		if irreversible {
			e.history = e.history[:0]
		}
		e.history = append(e.history, e.board.Zobrist)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrIllegalMove, text)
}

// Board returns the engine's current position.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Go searches the current position under tc and returns the best move
// found. report, if non-nil, is called after every completed iterative
// deepening depth, matching the UCI "info depth ... pv ..." line. Go blocks
// until the search's time budget elapses, ctx is cancelled, or Stop is
// called.
func (e *Engine) Go(ctx context.Context, tc TimeControl, report func(search.Result)) (types.Move, error) {
	if len(movegen.LegalMoves(e.board)) == 0 {
		return types.NoMove, ErrNoLegalMoves
	}

	overhead := time.Duration(e.cfg.MoveOverheadMillis) * time.Millisecond
	budget := tc.Budget(e.board.FullmoveCounter, overhead)

	result := e.searcher.Search(ctx, e.board, e.history, budget, report)
	return result.Move, nil
}

// Stop requests cooperative cancellation of an in-progress Go call, safe to
// call from another goroutine.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// Perft counts the leaf nodes of the full legal move tree below the current
// position to the given depth, for move generator validation.
func (e *Engine) Perft(depth int) uint64 {
	return movegen.Perft(e.board, depth)
}
