// Package magic provides the precomputed attack tables the rest of the
// engine treats as constants: knight/king/pawn jump tables, and magic
// bitboard lookups for sliding pieces (rook, bishop, queen). All state is
// process-wide and initialized exactly once via sync.Once, so first touch
// is safe under arbitrary concurrency — callers never need to know whether
// theirs is the first.
package magic

import (
	"sync"

	"github.com/halfmove-chess/halfmove/internal/types"
)

var (
	knightAttacks [64]types.SquareSet
	kingAttacks   [64]types.SquareSet
	pawnAttacks   [2][64]types.SquareSet

	rookTable   [64]magicEntry
	bishopTable [64]magicEntry

	once sync.Once
)

type magicEntry struct {
	mask    types.SquareSet
	magic   uint64
	shift   uint
	attacks []types.SquareSet
}

func ensureInit() {
	once.Do(func() {
		initLeaperTables()
		initMagicTable(&rookTable, rookMagics[:], rookDirs)
		initMagicTable(&bishopTable, bishopMagics[:], bishopDirs)
	})
}

// KnightAttacks returns the knight jump targets from sq.
func KnightAttacks(sq types.Square) types.SquareSet {
	ensureInit()
	return knightAttacks[sq]
}

// KingAttacks returns the king step targets from sq (castling excluded —
// that's a movegen concern, not an attack-table one).
func KingAttacks(sq types.Square) types.SquareSet {
	ensureInit()
	return kingAttacks[sq]
}

// PawnAttacks returns the diagonal capture squares for a pawn of side s on
// sq. Forward pushes are not attacks and are not included.
func PawnAttacks(s types.Side, sq types.Square) types.SquareSet {
	ensureInit()
	return pawnAttacks[s][sq]
}

// RookAttacks returns the squares a rook on sq attacks given the full board
// occupancy occ (friend and foe alike — callers mask out their own pieces).
func RookAttacks(sq types.Square, occ types.SquareSet) types.SquareSet {
	ensureInit()
	return rookTable[sq].lookup(occ)
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq types.Square, occ types.SquareSet) types.SquareSet {
	ensureInit()
	return bishopTable[sq].lookup(occ)
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq types.Square, occ types.SquareSet) types.SquareSet {
	return RookAttacks(sq, occ).Union(BishopAttacks(sq, occ))
}

func (e *magicEntry) lookup(occ types.SquareSet) types.SquareSet {
	idx := (uint64(occ&e.mask) * e.magic) >> e.shift
	return e.attacks[idx]
}

func initLeaperTables() {
	knightDeltas := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingDeltas := [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	for sq := types.Square(0); sq < 64; sq++ {
		knightAttacks[sq] = leap(sq, knightDeltas[:])
		kingAttacks[sq] = leap(sq, kingDeltas[:])
		pawnAttacks[types.White][sq] = leap(sq, [][2]int{{-1, 1}, {1, 1}})
		pawnAttacks[types.Black][sq] = leap(sq, [][2]int{{-1, -1}, {1, -1}})
	}
}

func leap(sq types.Square, deltas [][2]int) types.SquareSet {
	f0, r0 := sq.File(), sq.Rank()
	var out types.SquareSet
	for _, d := range deltas {
		f, r := f0+d[0], r0+d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		out = out.Insert(types.NewSquare(f, r))
	}
	return out
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// relevantMask returns the rook/bishop relevant-occupancy mask for sq: every
// square a ray in dirs passes through, excluding the final (edge) square of
// each ray, since a piece sitting on the edge can never be "jumped over".
func relevantMask(sq types.Square, dirs [4][2]int) types.SquareSet {
	f0, r0 := sq.File(), sq.Rank()
	var mask types.SquareSet
	for _, d := range dirs {
		f, r := f0, r0
		var ray []types.Square
		for {
			f += d[0]
			r += d[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			ray = append(ray, types.NewSquare(f, r))
		}
		if len(ray) > 0 {
			ray = ray[:len(ray)-1]
		}
		for _, s := range ray {
			mask = mask.Insert(s)
		}
	}
	return mask
}

// slidingAttacks computes the real attack set for a slider on sq given full
// occupancy occ, stopping at (and including) the first blocker in each
// direction. This is the "classical" slow computation used only to build
// the magic tables at init time.
func slidingAttacks(sq types.Square, occ types.SquareSet, dirs [4][2]int) types.SquareSet {
	f0, r0 := sq.File(), sq.Rank()
	var attacks types.SquareSet
	for _, d := range dirs {
		f, r := f0, r0
		for {
			f += d[0]
			r += d[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			s := types.NewSquare(f, r)
			attacks = attacks.Insert(s)
			if occ.Test(s) {
				break
			}
		}
	}
	return attacks
}

// initMagicTable fills table using the precomputed magics in magics, one per
// square, deriving the relevant-occupancy mask and shift from dirs and
// enumerating every occupancy subset of the mask with the standard
// carry-rippler submask trick.
func initMagicTable(table *[64]magicEntry, magics []uint64, dirs [4][2]int) {
	for sq := types.Square(0); sq < 64; sq++ {
		mask := relevantMask(sq, dirs)
		shift := uint(64 - mask.Count())
		size := 1 << mask.Count()
		entry := magicEntry{
			mask:    mask,
			magic:   magics[sq],
			shift:   shift,
			attacks: make([]types.SquareSet, size),
		}

		// Enumerate every submask of mask (the Chess Programming Wiki
		// "traversing subsets of a set" trick): start at the full mask,
		// step to (submask-1)&mask, stop after processing submask == 0.
		submask := mask
		for {
			idx := (uint64(submask) * entry.magic) >> entry.shift
			entry.attacks[idx] = slidingAttacks(sq, submask, dirs)
			if submask == 0 {
				break
			}
			submask = types.SquareSet(uint64(submask)-1) & mask
		}

		table[sq] = entry
	}
}
