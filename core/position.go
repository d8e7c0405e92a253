package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Square identifies one of the 64 board squares. Square 0 is a8 and square
// 63 is h1: the board is indexed a8..h8, a7..h7, ..., a1..h1, top-left to
// bottom-right as White sees it on the printed diagram.
type Square int8

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// File returns the zero-based file of sq (0 = a file .. 7 = h file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the zero-based row counting from the top of the board as
// indexed (0 = rank 8 .. 7 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) String() string {
	if sq < A8 || sq > H1 {
		return "-"
	}
	file := byte('a' + sq.File())
	rank := byte('8' - sq.Rank())
	return string([]byte{file, rank})
}

// SquareFromCoord parses algebraic coordinates like "e4" into a Square.
func SquareFromCoord(coord string) (Square, error) {
	if len(coord) != 2 {
		return NoSquare, fmt.Errorf("core: malformed square coordinate %q", coord)
	}
	file := coord[0]
	rank := coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("core: malformed square coordinate %q", coord)
	}
	row := '8' - rank
	return Square(int(row)*8 + int(file-'a')), nil
}

// Side identifies a player color.
type Side uint8

const (
	White Side = iota
	Black
	BothSides
)

func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

// PieceKind identifies a piece's type irrespective of color.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind
)

var pieceKindLetters = [...]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// ColoredPiece packs a PieceKind and a Side into one small value, used to
// index the twelve piece bitboards and the mailbox array.
type ColoredPiece uint8

const (
	WhitePawn ColoredPiece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece ColoredPiece = 12
)

// MakeColoredPiece combines a side and a kind into a ColoredPiece.
func MakeColoredPiece(side Side, kind PieceKind) ColoredPiece {
	return ColoredPiece(int(side)*6 + int(kind))
}

func (cp ColoredPiece) Kind() PieceKind {
	return PieceKind(int(cp) % 6)
}

func (cp ColoredPiece) Side() Side {
	if cp < 6 {
		return White
	}
	return Black
}

func (cp ColoredPiece) Letter() byte {
	letter := pieceKindLetters[cp.Kind()]
	if cp.Side() == White {
		return letter - ('a' - 'A')
	}
	return letter
}

// Castling rights bitmask, one bit per castle.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Position is the complete, immutable-by-convention board state: twelve
// piece bitboards, a mailbox mapping each square to its piece, and game
// state (side to move, castling rights, en passant square, clocks).
// Occupancy bitboards are not stored; Occupancy computes them from the
// piece bitboards. Move application never mutates a Position in place; see
// MakeMove in makemove.go.
type Position struct {
	Pieces      [12]Bitboard
	Mailbox     [64]ColoredPiece
	SideToMove  Side
	Castling    CastleRights
	EnPassant   Square
	HalfmoveClock int
	FullmoveNumber int
}

// Occupancy returns the bitboard of all pieces of the given side. Pass
// BothSides for the union of both colors.
func (p *Position) Occupancy(side Side) Bitboard {
	var bb Bitboard
	lo, hi := 0, 6
	switch side {
	case White:
		lo, hi = 0, 6
	case Black:
		lo, hi = 6, 12
	case BothSides:
		lo, hi = 0, 12
	}
	for i := lo; i < hi; i++ {
		bb |= p.Pieces[i]
	}
	return bb
}

// PieceAt returns the colored piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq Square) ColoredPiece {
	return p.Mailbox[sq]
}

// King returns the square of side's king.
func (p *Position) King(side Side) Square {
	bb := p.Pieces[MakeColoredPiece(side, King)]
	if bb.Empty() {
		return NoSquare
	}
	return bb.LSB()
}

const startPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPosition returns the standard chess starting position.
func StartPosition() Position {
	pos, err := ParseFEN(startPositionFEN)
	if err != nil {
		panic("core: start position FEN failed to parse: " + err.Error())
	}
	return pos
}

// ParseFEN parses a Forsyth-Edwards Notation string into a Position. It
// returns a descriptive error rather than panicking on malformed input.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("core: FEN %q has too few fields", fen)
	}

	var pos Position
	for i := range pos.Mailbox {
		pos.Mailbox[i] = NoPiece
	}
	pos.EnPassant = NoSquare

	placement := fields[0]
	sq := A8
	for _, r := range placement {
		switch {
		case r == '/':
			continue
		case r >= '1' && r <= '8':
			sq += Square(r - '0')
		default:
			kind, side, err := pieceKindFromFENRune(r)
			if err != nil {
				return Position{}, fmt.Errorf("core: FEN %q: %w", fen, err)
			}
			if sq < A8 || sq > H1 {
				return Position{}, fmt.Errorf("core: FEN %q: piece placement overruns the board", fen)
			}
			cp := MakeColoredPiece(side, kind)
			pos.Pieces[cp] = pos.Pieces[cp].Set(sq)
			pos.Mailbox[sq] = cp
			sq++
		}
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("core: FEN %q: invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				pos.Castling |= WhiteKingside
			case 'Q':
				pos.Castling |= WhiteQueenside
			case 'k':
				pos.Castling |= BlackKingside
			case 'q':
				pos.Castling |= BlackQueenside
			default:
				return Position{}, fmt.Errorf("core: FEN %q: invalid castling rights %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		epSq, err := SquareFromCoord(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("core: FEN %q: invalid en passant target: %w", fen, err)
		}
		pos.EnPassant = epSq
	}

	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return Position{}, fmt.Errorf("core: FEN %q: invalid halfmove clock: %w", fen, err)
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Position{}, fmt.Errorf("core: FEN %q: invalid fullmove number: %w", fen, err)
		}
		pos.FullmoveNumber = n
	}

	return pos, nil
}

func pieceKindFromFENRune(r rune) (PieceKind, Side, error) {
	side := White
	lower := r
	if r >= 'a' && r <= 'z' {
		side = Black
	} else if r >= 'A' && r <= 'Z' {
		lower = r + ('a' - 'A')
	} else {
		return NoPieceKind, White, errors.New("invalid piece placement rune")
	}
	for kind, letter := range pieceKindLetters {
		if byte(lower) == letter {
			return PieceKind(kind), side, nil
		}
	}
	return NoPieceKind, White, fmt.Errorf("unrecognized piece letter %q", r)
}

// String renders the Position as a FEN string.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			cp := p.Mailbox[sq]
			if cp == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(cp.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.Castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.Castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.Castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.Castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EnPassant.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}

// IsSquareAttacked reports whether sq is attacked by any piece of side.
// Pawn attacks are found by looking up the opposite color's pawn-attack
// table from sq: a square is attacked by a white pawn exactly when a black
// pawn standing on that square would attack back to one of White's pawns,
// so we probe BlackPawnAttacks[sq] against the white pawn bitboard (and
// symmetrically for black attackers).
func (p *Position) IsSquareAttacked(sq Square, side Side) bool {
	occupancy := p.Occupancy(BothSides)

	if side == White {
		if BlackPawnAttacks[sq]&p.Pieces[WhitePawn] != 0 {
			return true
		}
	} else {
		if WhitePawnAttacks[sq]&p.Pieces[BlackPawn] != 0 {
			return true
		}
	}

	knights := p.Pieces[MakeColoredPiece(side, Knight)]
	if KnightAttacks[sq]&knights != 0 {
		return true
	}

	king := p.Pieces[MakeColoredPiece(side, King)]
	if KingAttacks[sq]&king != 0 {
		return true
	}

	bishopsQueens := p.Pieces[MakeColoredPiece(side, Bishop)] | p.Pieces[MakeColoredPiece(side, Queen)]
	if BishopAttacks(sq, occupancy)&bishopsQueens != 0 {
		return true
	}

	rooksQueens := p.Pieces[MakeColoredPiece(side, Rook)] | p.Pieces[MakeColoredPiece(side, Queen)]
	if RookAttacks(sq, occupancy)&rooksQueens != 0 {
		return true
	}

	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.King(p.SideToMove), p.SideToMove.Other())
}
