package core

import "testing"

func TestSearchStartPositionEvaluatesAllRootMoves(t *testing.T) {
	pos := StartPosition()
	s := NewSearcher()
	best := s.Search(pos, 1)

	if best.IsNull() {
		t.Fatalf("search should find a best move from the start position")
	}

	var legal []Move
	GenerateLegalMoves(&pos, &legal)
	if len(legal) != 20 {
		t.Fatalf("start position should have 20 legal moves, got %d", len(legal))
	}

	found := false
	for _, mv := range legal {
		if mv == best {
			found = true
		}
	}
	if !found {
		t.Fatalf("best move %s should be one of the 20 legal start-position moves", best)
	}
}

func TestSearchStartPositionScoreNearZero(t *testing.T) {
	pos := StartPosition()
	s := NewSearcher()

	var pv []Move
	score := s.negamax(pos, NegInf, PosInf, 1, 0, &pv)
	if score < -1 || score > 1 {
		t.Fatalf("depth-1 score from the start position should be within 1 centipawn of 0, got %d", score)
	}
}

func TestSearchFindsRookMate(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/R7/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	s := NewSearcher()
	best := s.Search(pos, 5)
	if best.IsNull() {
		t.Fatalf("search should find a move in the rook endgame")
	}

	fresh := NewSearcher()
	var pv []Move
	score := fresh.negamax(pos, NegInf, PosInf, 5, 0, &pv)
	if score < 19000 {
		t.Fatalf("search depth 5 from the rook-mate position should score >= 19000, got %d", score)
	}
}

func TestSearchResetClearsState(t *testing.T) {
	pos := StartPosition()
	s := NewSearcher()
	s.Search(pos, 2)
	if s.nodes == 0 {
		t.Fatalf("expected nonzero node count after a search")
	}
	s.Reset()
	if s.nodes != 0 {
		t.Fatalf("Reset should clear the node counter")
	}
	if s.killers != ([MaxPly][2]Move{}) {
		t.Fatalf("Reset should clear killer moves")
	}
}

func TestQuiescenceDoesNotBlowUpOnQuietPosition(t *testing.T) {
	pos := StartPosition()
	s := NewSearcher()
	score := s.quiescence(pos, NegInf, PosInf, 0)
	if score < -50 || score > 50 {
		t.Fatalf("quiescence from a quiet balanced position should stay near 0, got %d", score)
	}
}
