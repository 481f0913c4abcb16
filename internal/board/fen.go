package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halfmove-chess/halfmove/internal/types"
	"github.com/halfmove-chess/halfmove/internal/zobrist"
)

var fenPieceKinds = map[byte]types.PieceKind{
	'p': types.Pawn,
	'n': types.Knight,
	'b': types.Bishop,
	'r': types.Rook,
	'q': types.Queen,
	'k': types.King,
}

var fenPieceLetters = map[types.PieceKind]string{
	types.Pawn:   "p",
	types.Knight: "n",
	types.Bishop: "b",
	types.Rook:   "r",
	types.Queen:  "q",
	types.King:   "k",
}

// FromFEN parses Forsyth-Edwards Notation into a Board. The six
// space-separated fields are: piece placement, active color, castling
// rights, en-passant target, halfmove clock, fullmove number.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("invalid FEN %q: expected 6 fields, got %d", fen, len(fields))
	}

	b := &Board{EnPassant: types.NoSquare}
	for sq := range b.Mailbox {
		b.Mailbox[sq] = types.NoPiece
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return nil, fmt.Errorf("invalid FEN %q: rank %d overflows", fen, rank+1)
			}
			side := types.White
			lower := byte(ch)
			if ch >= 'a' && ch <= 'z' {
				side = types.Black
			} else {
				lower = byte(ch) - 'A' + 'a'
			}
			kind, ok := fenPieceKinds[lower]
			if !ok {
				return nil, fmt.Errorf("invalid FEN %q: bad piece character %q", fen, ch)
			}
			sq := types.NewSquare(file, rank)
			b.put(types.NewPiece(side, kind), sq)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("invalid FEN %q: rank %d has %d squares, want 8", fen, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		b.ActiveSide = types.White
	case "b":
		b.ActiveSide = types.Black
		zobrist.ToggleSideToMove(&b.Zobrist)
	default:
		return nil, fmt.Errorf("invalid FEN %q: active color %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.Castling |= types.WhiteKingside
			case 'Q':
				b.Castling |= types.WhiteQueenside
			case 'k':
				b.Castling |= types.BlackKingside
			case 'q':
				b.Castling |= types.BlackQueenside
			default:
				return nil, fmt.Errorf("invalid FEN %q: castling character %q", fen, ch)
			}
		}
	}
	zobrist.ToggleCastling(&b.Zobrist, b.Castling)

	if fields[3] != "-" {
		sq, err := types.ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: en-passant field: %w", fen, err)
		}
		b.EnPassant = sq
		zobrist.ToggleEnPassantFile(&b.Zobrist, sq.File())
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("invalid FEN %q: halfmove clock %q", fen, fields[4])
	}
	b.HalfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return nil, fmt.Errorf("invalid FEN %q: fullmove number %q", fen, fields[5])
	}
	b.FullmoveCounter = full

	return b, nil
}

// ToFEN serializes the Board back into Forsyth-Edwards Notation.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Mailbox[types.NewSquare(file, rank)]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := fenPieceLetters[p.Kind()]
			if p.Side() == types.White {
				letter = strings.ToUpper(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.ActiveSide == types.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.Castling.Has(types.WhiteKingside) {
			sb.WriteByte('K')
		}
		if b.Castling.Has(types.WhiteQueenside) {
			sb.WriteByte('Q')
		}
		if b.Castling.Has(types.BlackKingside) {
			sb.WriteByte('k')
		}
		if b.Castling.Has(types.BlackQueenside) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.EnPassant == types.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassant.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveCounter))

	return sb.String()
}
