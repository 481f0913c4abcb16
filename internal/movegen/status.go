package movegen

import "github.com/halfmove-chess/halfmove/internal/board"

// GameStatus classifies the outcome of a position.
type GameStatus int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing GameStatus = iota
	// Checkmate indicates the side to move is checkmated.
	Checkmate
	// Stalemate indicates the side to move has no legal moves but is not in check.
	Stalemate
	// DrawInsufficientMaterial indicates neither side has mating material.
	DrawInsufficientMaterial
	// DrawFiftyMoveRule indicates a draw is claimable under the fifty-move rule.
	DrawFiftyMoveRule
	// DrawSeventyFiveMoveRule indicates an automatic draw under the seventy-five-move rule.
	DrawSeventyFiveMoveRule
	// DrawThreefoldRepetition indicates a draw is claimable due to threefold repetition.
	DrawThreefoldRepetition
	// DrawFivefoldRepetition indicates an automatic draw due to fivefold repetition.
	DrawFivefoldRepetition
)

func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	case DrawFiftyMoveRule:
		return "draw (fifty-move rule)"
	case DrawSeventyFiveMoveRule:
		return "draw (seventy-five-move rule)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	case DrawFivefoldRepetition:
		return "draw (fivefold repetition)"
	default:
		return "unknown"
	}
}

// Status classifies the position. repetitionCount is the number of times
// the current position's zobrist has occurred in the game so far (including
// the current occurrence); callers without repetition tracking (e.g. a bare
// perft driver) may pass 1. Repetition counting is owned by whichever layer
// keeps the position history (Search or the UCI session), not by movegen
// itself, so it is threaded in rather than recomputed here.
func Status(b *board.Board, repetitionCount int) GameStatus {
	if len(LegalMoves(b)) == 0 {
		if InCheck(b) {
			return Checkmate
		}
		return Stalemate
	}

	if b.InsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if repetitionCount >= 5 {
		return DrawFivefoldRepetition
	}
	if b.HalfmoveClock >= 150 {
		return DrawSeventyFiveMoveRule
	}
	if repetitionCount >= 3 {
		return DrawThreefoldRepetition
	}
	if b.HalfmoveClock >= 100 {
		return DrawFiftyMoveRule
	}

	return Ongoing
}
