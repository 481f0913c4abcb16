package types

import "fmt"

// MoveFlag enumerates the 16 move kinds. The encoding is the classic
// chess-programming-wiki layout (also used by dragontoothmg and chego in
// the retrieval pack): bit 3 marks a promotion, bit 2 marks a capture, so
// IsCapture/IsPromotion are pure bit tests rather than switch statements.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	_ // 0b0110, 0b0111 unused: quiet moves never combine with the capture bit
	_
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
	PromoCaptureKnight
	PromoCaptureBishop
	PromoCaptureRook
	PromoCaptureQueen
)

// IsCapture reports whether the flag's capture bit (bit 2) is set: true for
// Capture, EnPassant and every promotion-capture.
func (f MoveFlag) IsCapture() bool {
	return f&0b0100 != 0
}

// IsPromotion reports whether the flag's promotion bit (bit 3) is set.
func (f MoveFlag) IsPromotion() bool {
	return f&0b1000 != 0
}

// PromotionKind returns the piece kind a promotion flag produces. Only
// meaningful when IsPromotion is true.
func (f MoveFlag) PromotionKind() PieceKind {
	switch f & 0b0011 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// PromoFlag returns the quiet or capturing promotion flag for kind, used by
// move generation when building promotion moves.
func PromoFlag(kind PieceKind, capture bool) MoveFlag {
	var base MoveFlag
	switch kind {
	case Knight:
		base = PromoKnight
	case Bishop:
		base = PromoBishop
	case Rook:
		base = PromoRook
	default:
		base = PromoQueen
	}
	if capture {
		base |= 0b0100
	}
	return base
}

// Move packs a move into 16 bits: from[0:6], to[6:12], flags[12:16].
type Move uint16

// NoMove is the zero value, used as a sentinel for "no move found".
const NoMove Move = 0

// NewMove builds a Move from its parts.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from)&0x3f | (uint16(to)&0x3f)<<6 | uint16(flag)<<12)
}

func (m Move) From() Square {
	return Square(m & 0x3f)
}

func (m Move) To() Square {
	return Square((m >> 6) & 0x3f)
}

func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> 12) & 0xf)
}

func (m Move) IsCapture() bool {
	return m.Flag().IsCapture()
}

func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// String renders the move in UCI coordinate notation, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoLetters[m.Flag().PromotionKind()]
	}
	return s
}

var promoLetters = map[PieceKind]string{
	Knight: "n",
	Bishop: "b",
	Rook:   "r",
	Queen:  "q",
}

var promoKinds = map[byte]PieceKind{
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
}

// ParseMoveUCI parses a move in UCI wire format (<from><to>[promo]), e.g.
// "e2e4" or "a7a8q". It does not validate legality and returns no move
// flag; callers must match the parsed (from, to, promotion-kind) against a
// legal-move list to recover the real flag (capture, en passant, castle).
func ParseMoveUCI(s string) (from, to Square, promo PieceKind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, 0, fmt.Errorf("invalid move %q: expected 4 or 5 characters", s)
	}
	from, err = ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, 0, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err = ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, 0, fmt.Errorf("invalid move %q: %w", s, err)
	}
	promo = NoPromotion
	if len(s) == 5 {
		k, ok := promoKinds[s[4]]
		if !ok {
			return NoSquare, NoSquare, 0, fmt.Errorf("invalid move %q: bad promotion letter %q", s, s[4])
		}
		promo = k
	}
	return from, to, promo, nil
}

// NoPromotion marks the absence of a promotion in ParseMoveUCI's result.
// Pawn (zero value) can never be a promotion target, so it is safe to reuse
// as the "none" sentinel here.
const NoPromotion = Pawn
