package core

// GenerateMoves appends every pseudo-legal move for pos.SideToMove to moves.
// "Pseudo-legal" means the move obeys piece movement rules and board
// occupancy but may still leave the moving side's own king in check;
// MakeMove is responsible for rejecting those.
func GenerateMoves(pos *Position, moves *[]Move) {
	genPawnMoves(pos, moves)
	genPieceMoves(pos, moves, Knight)
	genPieceMoves(pos, moves, Bishop)
	genPieceMoves(pos, moves, Rook)
	genPieceMoves(pos, moves, Queen)
	genPieceMoves(pos, moves, King)
	genCastlingMoves(pos, moves)
}

// GenerateLegalMoves returns only the pseudo-legal moves that do not leave
// the moving side's own king in check, by actually attempting MakeMove on
// each candidate.
func GenerateLegalMoves(pos *Position, moves *[]Move) {
	var pseudo []Move
	GenerateMoves(pos, &pseudo)
	for _, mv := range pseudo {
		if _, ok := MakeMove(*pos, mv); ok {
			*moves = append(*moves, mv)
		}
	}
}

var promotionKinds = [4]PieceKind{Knight, Bishop, Rook, Queen}

func genPawnMoves(pos *Position, moves *[]Move) {
	side := pos.SideToMove
	piece := MakeColoredPiece(side, Pawn)
	pawns := pos.Pieces[piece]
	occupied := pos.Occupancy(BothSides)
	opponent := pos.Occupancy(side.Other())

	var forward Square = -8
	startRank := 6 // row index of rank 2, white's double-push origin
	promoRank := 0 // row index of rank 8, white's promotion rank
	pawnAttacks := &WhitePawnAttacks
	if side == Black {
		forward = 8
		startRank = 1 // row index of rank 7
		promoRank = 7 // row index of rank 1
		pawnAttacks = &BlackPawnAttacks
	}

	bb := pawns
	for !bb.Empty() {
		from := bb.PopLSB()
		to := from + forward
		if to >= A8 && to <= H1 && !occupied.Has(to) {
			emitPawnMove(moves, piece, from, to, promoRank, NoPieceKind, false, false)

			if from.Rank() == startRank {
				to2 := to + forward
				if to2 >= A8 && to2 <= H1 && !occupied.Has(to2) {
					*moves = append(*moves, Move{From: from, To: to2, Piece: piece, Promoted: NoPiece, Captured: Pawn, IsDoublePush: true})
				}
			}
		}

		attacks := pawnAttacks[from]
		captures := attacks & opponent
		for !captures.Empty() {
			capTo := captures.PopLSB()
			captured := pos.PieceAt(capTo).Kind()
			emitPawnMove(moves, piece, from, capTo, promoRank, captured, true, false)
		}

		if pos.EnPassant != NoSquare && attacks.Has(pos.EnPassant) {
			*moves = append(*moves, Move{
				From: from, To: pos.EnPassant, Piece: piece, Promoted: NoPiece,
				Captured: Pawn, IsCapture: true, IsEnPassant: true,
			})
		}
	}
}

func emitPawnMove(moves *[]Move, piece ColoredPiece, from, to Square, promoRank int, captured PieceKind, isCapture, isEnPassant bool) {
	side := piece.Side()
	if to.Rank() == promoRank {
		for _, kind := range promotionKinds {
			*moves = append(*moves, Move{
				From: from, To: to, Piece: piece,
				Promoted: MakeColoredPiece(side, kind),
				Captured: captured, IsCapture: isCapture,
			})
		}
		return
	}
	if !isCapture {
		captured = Pawn
	}
	*moves = append(*moves, Move{
		From: from, To: to, Piece: piece, Promoted: NoPiece,
		Captured: captured, IsCapture: isCapture, IsEnPassant: isEnPassant,
	})
}

func genPieceMoves(pos *Position, moves *[]Move, kind PieceKind) {
	side := pos.SideToMove
	piece := MakeColoredPiece(side, kind)
	own := pos.Occupancy(side)
	occupied := pos.Occupancy(BothSides)

	bb := pos.Pieces[piece]
	for !bb.Empty() {
		from := bb.PopLSB()
		attacks := attacksForKind(kind, from, occupied) &^ own
		for !attacks.Empty() {
			to := attacks.PopLSB()
			target := pos.PieceAt(to)
			if target == NoPiece {
				*moves = append(*moves, Move{From: from, To: to, Piece: piece, Promoted: NoPiece, Captured: Pawn})
			} else {
				*moves = append(*moves, Move{From: from, To: to, Piece: piece, Promoted: NoPiece, Captured: target.Kind(), IsCapture: true})
			}
		}
	}
}

func attacksForKind(kind PieceKind, from Square, occupied Bitboard) Bitboard {
	switch kind {
	case Knight:
		return KnightAttacks[from]
	case Bishop:
		return BishopAttacks(from, occupied)
	case Rook:
		return RookAttacks(from, occupied)
	case Queen:
		return QueenAttacks(from, occupied)
	case King:
		return KingAttacks[from]
	default:
		return EmptyBoard
	}
}

func genCastlingMoves(pos *Position, moves *[]Move) {
	side := pos.SideToMove
	occupied := pos.Occupancy(BothSides)
	opponent := side.Other()

	if side == White {
		if pos.Castling&WhiteKingside != 0 &&
			!occupied.Has(F1) && !occupied.Has(G1) &&
			!pos.IsSquareAttacked(E1, opponent) && !pos.IsSquareAttacked(F1, opponent) && !pos.IsSquareAttacked(G1, opponent) {
			*moves = append(*moves, Move{From: E1, To: G1, Piece: WhiteKing, Promoted: NoPiece, Captured: Pawn, IsCastling: true})
		}
		if pos.Castling&WhiteQueenside != 0 &&
			!occupied.Has(D1) && !occupied.Has(C1) && !occupied.Has(B1) &&
			!pos.IsSquareAttacked(E1, opponent) && !pos.IsSquareAttacked(D1, opponent) && !pos.IsSquareAttacked(C1, opponent) {
			*moves = append(*moves, Move{From: E1, To: C1, Piece: WhiteKing, Promoted: NoPiece, Captured: Pawn, IsCastling: true})
		}
	} else {
		if pos.Castling&BlackKingside != 0 &&
			!occupied.Has(F8) && !occupied.Has(G8) &&
			!pos.IsSquareAttacked(E8, opponent) && !pos.IsSquareAttacked(F8, opponent) && !pos.IsSquareAttacked(G8, opponent) {
			*moves = append(*moves, Move{From: E8, To: G8, Piece: BlackKing, Promoted: NoPiece, Captured: Pawn, IsCastling: true})
		}
		if pos.Castling&BlackQueenside != 0 &&
			!occupied.Has(D8) && !occupied.Has(C8) && !occupied.Has(B8) &&
			!pos.IsSquareAttacked(E8, opponent) && !pos.IsSquareAttacked(D8, opponent) && !pos.IsSquareAttacked(C8, opponent) {
			*moves = append(*moves, Move{From: E8, To: C8, Piece: BlackKing, Promoted: NoPiece, Captured: Pawn, IsCastling: true})
		}
	}
}
