package core

import "testing"

func TestGenerateMovesStartPositionCount(t *testing.T) {
	pos := StartPosition()
	var moves []Move
	GenerateMoves(&pos, &moves)
	if len(moves) != 20 {
		t.Fatalf("start position pseudo-legal moves: got %d want 20", len(moves))
	}
}

func TestGenerateMovesPromotions(t *testing.T) {
	pos, err := ParseFEN("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	var moves []Move
	GenerateMoves(&pos, &moves)

	promos := 0
	for _, mv := range moves {
		if mv.From == A7 && mv.To == A8 {
			if !mv.IsPromotion() {
				t.Fatalf("a7a8 should be a promotion")
			}
			promos++
		}
	}
	if promos != 4 {
		t.Fatalf("expected 4 promotion moves from a7a8, got %d", promos)
	}
}

func TestGenerateMovesEnPassant(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	var moves []Move
	GenerateMoves(&pos, &moves)

	found := false
	for _, mv := range moves {
		if mv.From == E5 && mv.To == D6 {
			if !mv.IsEnPassant || !mv.IsCapture {
				t.Fatalf("e5d6 should be an en passant capture")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an en passant capture e5d6")
	}
}

func TestGenerateMovesDoublePush(t *testing.T) {
	pos := StartPosition()
	var moves []Move
	GenerateMoves(&pos, &moves)

	found := false
	for _, mv := range moves {
		if mv.From == E2 && mv.To == E4 {
			if !mv.IsDoublePush {
				t.Fatalf("e2e4 should be marked as a double push")
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a double push e2e4 from the start position")
	}
}

func TestGenerateMovesCastlingBothSides(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	var moves []Move
	GenerateMoves(&pos, &moves)

	if len(moves) != 26 {
		t.Fatalf("expected 26 pseudo-legal moves, got %d", len(moves))
	}
	castles := 0
	for _, mv := range moves {
		if mv.IsCastling {
			castles++
		}
	}
	if castles != 2 {
		t.Fatalf("expected 2 castling moves, got %d", castles)
	}
}

func TestGenerateMovesCastlingBlockedByAttack(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	var moves []Move
	GenerateMoves(&pos, &moves)
	for _, mv := range moves {
		if mv.IsCastling {
			t.Fatalf("castling through check on e1 should not be generated")
		}
	}
}

func TestGenerateLegalMovesExcludesSelfCheck(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	var legal []Move
	GenerateLegalMoves(&pos, &legal)
	for _, mv := range legal {
		if mv.From == E1 && (mv.To == D2 || mv.To == F2) {
			t.Fatalf("king move onto the rook's rank should still be in check: %s", mv)
		}
	}
}
