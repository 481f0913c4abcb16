// Package zobrist provides the process-wide Zobrist key tables used to
// incrementally maintain a Board's position hash, and the XOR toggle
// primitives that apply them. The tables are generated once, deterministically
// (same seed every run), and never mutated afterward.
package zobrist

import (
	"math/rand"

	"github.com/halfmove-chess/halfmove/internal/types"
)

// pieceKeys[side*6+kind][square] holds one random key per (piece, square).
var pieceKeys [2 * types.NumKinds][64]uint64

// sideToMoveKey is XORed into the hash whenever it is Black's turn.
var sideToMoveKey uint64

// castlingKeys holds one key per castling-rights subset (16 entries: every
// combination of the four independent bits).
var castlingKeys [16]uint64

// enPassantFileKeys holds one key per file, XORed in only when an en-passant
// target is set.
var enPassantFileKeys [8]uint64

// Fixed seed: the hash must be reproducible across runs for tests and for
// the transposition table to mean anything between process restarts of the
// same version.
const seed = 0x5D4E3C2B1A

func init() {
	rng := rand.New(rand.NewSource(seed))
	for i := range pieceKeys {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[i][sq] = rng.Uint64()
		}
	}
	sideToMoveKey = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantFileKeys {
		enPassantFileKeys[i] = rng.Uint64()
	}
}

func pieceIndex(p types.Piece) int {
	return int(p.Side())*types.NumKinds + int(p.Kind())
}

// TogglePiece XORs the key for piece p on square sq into hash. Calling it
// twice with the same arguments is a no-op (XOR is self-inverse), which is
// the whole basis of make/unmake: the same toggle call adds the piece when
// placing it and removes it when undone.
func TogglePiece(hash *uint64, p types.Piece, sq types.Square) {
	*hash ^= pieceKeys[pieceIndex(p)][sq]
}

// ToggleSideToMove XORs the side-to-move key into hash.
func ToggleSideToMove(hash *uint64) {
	*hash ^= sideToMoveKey
}

// ToggleCastling XORs the key for the given castling-rights subset into hash.
func ToggleCastling(hash *uint64, rights types.CastlingRights) {
	*hash ^= castlingKeys[rights]
}

// ToggleEnPassantFile XORs the key for the given file into hash.
func ToggleEnPassantFile(hash *uint64, file int) {
	*hash ^= enPassantFileKeys[file]
}

// PieceSquareKey exposes the raw key for (p, sq), for verification code
// that wants to recompute a hash from scratch rather than toggle it.
func PieceSquareKey(p types.Piece, sq types.Square) uint64 {
	return pieceKeys[pieceIndex(p)][sq]
}

// SideToMoveKey exposes the raw side-to-move key.
func SideToMoveKey() uint64 {
	return sideToMoveKey
}

// CastlingKey exposes the raw key for a castling-rights subset.
func CastlingKey(rights types.CastlingRights) uint64 {
	return castlingKeys[rights]
}

// EnPassantFileKey exposes the raw key for a file.
func EnPassantFileKey(file int) uint64 {
	return enPassantFileKeys[file]
}
