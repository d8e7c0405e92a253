package core

import "fmt"

// Move is an encoded (from, to, flags) triple describing one ply. Moves are
// plain values: they never reference a Position.
type Move struct {
	From         Square
	To           Square
	Piece        ColoredPiece
	Promoted     ColoredPiece
	Captured     PieceKind
	IsCapture    bool
	IsDoublePush bool
	IsEnPassant  bool
	IsCastling   bool
}

// NullMove is the invalid move, with both squares set to NoSquare, never
// returned by search as a real best move.
var NullMove = Move{From: NoSquare, To: NoSquare, Promoted: NoPiece, Captured: Pawn}

func (m Move) IsNull() bool {
	return m.From == NoSquare || m.To == NoSquare
}

func (m Move) IsPromotion() bool {
	return m.Promoted != NoPiece
}

// String renders a move in UCI coordinate notation: from-square, to-square,
// and a lowercase promotion letter when present (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(promotionLetter(m.Promoted.Kind()))
	}
	return s
}

func promotionLetter(kind PieceKind) byte {
	switch kind {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return '?'
	}
}

func promotionKindFromLetter(r byte) (PieceKind, error) {
	switch r {
	case 'n':
		return Knight, nil
	case 'b':
		return Bishop, nil
	case 'r':
		return Rook, nil
	case 'q':
		return Queen, nil
	default:
		return NoPieceKind, fmt.Errorf("core: invalid promotion letter %q", r)
	}
}

// ParseUCIMove parses coordinate notation ("e2e4", "e7e8q") against the
// position's own pseudo-legal move list (GenerateMoves), returning the
// matching Move. It does not construct a Move out of thin air: a malformed
// string, or one that matches no generated move, is reported as an error
// rather than guessed at. A returned move may still leave the mover's own
// king in check; MakeMove rejects such a move.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("core: malformed UCI move %q", s)
	}
	from, err := SquareFromCoord(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("core: malformed UCI move %q: %w", s, err)
	}
	to, err := SquareFromCoord(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("core: malformed UCI move %q: %w", s, err)
	}
	var promo PieceKind = NoPieceKind
	if len(s) == 5 {
		promo, err = promotionKindFromLetter(s[4])
		if err != nil {
			return NullMove, fmt.Errorf("core: malformed UCI move %q: %w", s, err)
		}
	}

	var moves []Move
	GenerateMoves(pos, &moves)
	for _, mv := range moves {
		if mv.From != from || mv.To != to {
			continue
		}
		if mv.IsPromotion() && mv.Promoted.Kind() != promo {
			continue
		}
		if !mv.IsPromotion() && promo != NoPieceKind {
			continue
		}
		return mv, nil
	}
	return NullMove, fmt.Errorf("core: %q is not a legal move in this position", s)
}
