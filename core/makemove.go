package core

// MakeMove applies mv to a copy of pos and returns the resulting Position
// together with whether the move was legal. A move is illegal only if it
// leaves the moving side's own king attacked; pos itself is never mutated.
func MakeMove(pos Position, mv Move) (Position, bool) {
	next := pos
	side := mv.Piece.Side()

	next.Pieces[mv.Piece] = next.Pieces[mv.Piece].Clear(mv.From)
	next.Mailbox[mv.From] = NoPiece

	if mv.IsCapture && !mv.IsEnPassant {
		captured := next.Mailbox[mv.To]
		if captured != NoPiece {
			next.Pieces[captured] = next.Pieces[captured].Clear(mv.To)
		}
	}

	placed := mv.Piece
	if mv.IsPromotion() {
		placed = mv.Promoted
	}
	next.Pieces[placed] = next.Pieces[placed].Set(mv.To)
	next.Mailbox[mv.To] = placed

	if mv.IsEnPassant {
		var capturedSq Square
		if side == White {
			capturedSq = mv.To + 8
		} else {
			capturedSq = mv.To - 8
		}
		capturedPawn := MakeColoredPiece(side.Other(), Pawn)
		next.Pieces[capturedPawn] = next.Pieces[capturedPawn].Clear(capturedSq)
		next.Mailbox[capturedSq] = NoPiece
	}

	if mv.IsCastling {
		switch mv.To {
		case G1:
			next.Pieces[WhiteRook] = next.Pieces[WhiteRook].Clear(H1).Set(F1)
			next.Mailbox[H1], next.Mailbox[F1] = NoPiece, WhiteRook
		case C1:
			next.Pieces[WhiteRook] = next.Pieces[WhiteRook].Clear(A1).Set(D1)
			next.Mailbox[A1], next.Mailbox[D1] = NoPiece, WhiteRook
		case G8:
			next.Pieces[BlackRook] = next.Pieces[BlackRook].Clear(H8).Set(F8)
			next.Mailbox[H8], next.Mailbox[F8] = NoPiece, BlackRook
		case C8:
			next.Pieces[BlackRook] = next.Pieces[BlackRook].Clear(A8).Set(D8)
			next.Mailbox[A8], next.Mailbox[D8] = NoPiece, BlackRook
		}
	}

	next.EnPassant = NoSquare
	if mv.IsDoublePush {
		if side == White {
			next.EnPassant = mv.To + 8
		} else {
			next.EnPassant = mv.To - 8
		}
	}

	next.Castling &^= castleRightsLost(mv.From) | castleRightsLost(mv.To)

	if mv.Piece.Kind() == Pawn || mv.IsCapture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if side == Black {
		next.FullmoveNumber++
	}

	next.SideToMove = side.Other()

	if next.IsSquareAttacked(next.King(side), side.Other()) {
		return pos, false
	}
	return next, true
}

// castleRightsLost returns the castling rights that are revoked when sq is
// either vacated or occupied by a move: the king squares revoke both rights
// for their side, and the corner rook squares revoke one right each.
func castleRightsLost(sq Square) CastleRights {
	switch sq {
	case E1:
		return WhiteKingside | WhiteQueenside
	case H1:
		return WhiteKingside
	case A1:
		return WhiteQueenside
	case E8:
		return BlackKingside | BlackQueenside
	case H8:
		return BlackKingside
	case A8:
		return BlackQueenside
	default:
		return 0
	}
}

// MakeNullMove flips the side to move and clears the en passant square
// without moving any piece, used by null-move pruning in search.
func MakeNullMove(pos Position) Position {
	next := pos
	next.SideToMove = pos.SideToMove.Other()
	next.EnPassant = NoSquare
	return next
}
