package uci

import "time"

// TimeControl describes how much time the engine has to find a move, in
// whichever shape the collaborator's "go" command arrived in. Exactly one
// of Infinite, FixedMoveTime or the clock fields is expected to apply;
// Budget interprets them in that priority order.
type TimeControl struct {
	// MyTime is the side to move's remaining clock time.
	MyTime time.Duration
	// MyIncrement is added to MyTime after every move on this side's clock.
	MyIncrement time.Duration
	// FixedMoveTime, if non-zero, overrides clock-based budgeting with an
	// exact per-move allowance.
	FixedMoveTime time.Duration
	// Infinite requests search until explicitly stopped; Budget returns
	// infiniteBudget (one year).
	Infinite bool
}

// infiniteBudget stands in for "search until stopped": a duration far
// longer than any real game will run, so the caller's deadline logic
// doesn't need a separate infinite case.
const infiniteBudget = 365 * 24 * time.Hour

// Budget computes how long the engine should spend on its next move: for
// a clock-style control, allocate
// min(my_time, my_time/expected_moves_remaining + my_incr), where
// expected_moves_remaining = max(30, fullmove_counter+10) - fullmove_counter.
// overhead is subtracted from the result (never below zero) to leave
// headroom for engine-loop round-trip latency.
func (tc TimeControl) Budget(fullmoveCounter int, overhead time.Duration) time.Duration {
	var budget time.Duration
	switch {
	case tc.Infinite:
		return infiniteBudget
	case tc.FixedMoveTime > 0:
		budget = tc.FixedMoveTime
	default:
		expectedMovesRemaining := fullmoveCounter + 10
		if expectedMovesRemaining < 30 {
			expectedMovesRemaining = 30
		}
		expectedMovesRemaining -= fullmoveCounter
		if expectedMovesRemaining < 1 {
			expectedMovesRemaining = 1
		}

		perMove := tc.MyTime/time.Duration(expectedMovesRemaining) + tc.MyIncrement
		budget = tc.MyTime
		if perMove < budget {
			budget = perMove
		}
	}

	budget -= overhead
	if budget < 0 {
		budget = 0
	}
	return budget
}
