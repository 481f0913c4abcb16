// Package tt implements a zobrist-keyed transposition table: a fixed-size,
// open-addressed, always-replace cache of previously searched positions.
package tt

import (
	"unsafe"

	"github.com/halfmove-chess/halfmove/internal/types"
)

// MateScore is the search's mate sentinel. Any stored score with this
// absolute value is ambiguous (it doesn't encode distance-to-mate from the
// root), so entries carrying it are never stored. Defined here, not in the
// search package, so the table can enforce the rule itself rather than
// trusting every caller to.
const MateScore = 1_000_000

// Bound records which side of the search window a stored score is known
// to be accurate on.
type Bound uint8

const (
	// Exact means the stored score is the position's true negamax value.
	Exact Bound = iota
	// LowerBound means the true value is at least the stored score (the
	// search failed high against beta).
	LowerBound
	// UpperBound means the true value is at most the stored score (the
	// search failed low against alpha).
	UpperBound
)

// Entry is one transposition table slot.
type Entry struct {
	key   uint64
	Move  types.Move
	Score int
	Depth int
	Bound Bound
}

const entrySize = uint64(unsafe.Sizeof(Entry{}))

// Table is a fixed-size transposition table. len(entries) is always a
// power of two so indexing is a mask rather than a modulo.
type Table struct {
	entries []Entry
	mask    uint64
}

// New builds a table sized to fit within sizeMB megabytes, rounding down
// to the nearest power-of-two entry count.
func New(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	count := uint64(sizeMB) << 20 / entrySize
	for count&(count-1) != 0 {
		count &= count - 1
	}
	if count == 0 {
		count = 1
	}
	return &Table{
		entries: make([]Entry, count),
		mask:    count - 1,
	}
}

// Size returns the number of entries the table holds.
func (t *Table) Size() int {
	return len(t.entries)
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// Probe looks up key and applies the standard alpha-beta usability test:
// the entry is only returned if its depth is at least as deep as requested
// and its bound still guarantees the score relative to (alpha, beta).
func (t *Table) Probe(key uint64, alpha, beta, depth int) (Entry, bool) {
	e := &t.entries[t.index(key)]
	if e.key != key || e.Depth < depth {
		return Entry{}, false
	}
	switch e.Bound {
	case Exact:
		return *e, true
	case LowerBound:
		if e.Score >= beta {
			return *e, true
		}
	case UpperBound:
		if e.Score <= alpha {
			return *e, true
		}
	}
	return Entry{}, false
}

// Store records a search result for key, always replacing whatever
// previously occupied that slot. It silently declines to store when score
// is the mate sentinel (ambiguous without root-relative ply information)
// or when repeated reports the position has already recurred in the
// current search's seen-history (a draw score that doesn't belong in a
// table meant to be reused at other plies).
func (t *Table) Store(key uint64, score int, bound Bound, depth int, move types.Move, repeated bool) {
	if score == MateScore || score == -MateScore {
		return
	}
	if repeated {
		return
	}
	t.entries[t.index(key)] = Entry{
		key:   key,
		Move:  move,
		Score: score,
		Depth: depth,
		Bound: bound,
	}
}
