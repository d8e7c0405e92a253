package core

import "testing"

func TestPerftStartPosition(t *testing.T) {
	pos := StartPosition()
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		if got := Perft(pos, c.depth); got != c.want {
			t.Fatalf("perft(startpos, %d): got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got, want := Perft(pos, 1), uint64(48); got != want {
		t.Fatalf("perft(kiwipete, 1): got %d want %d", got, want)
	}
	if got, want := Perft(pos, 2), uint64(2039); got != want {
		t.Fatalf("perft(kiwipete, 2): got %d want %d", got, want)
	}
	if got, want := Perft(pos, 3), uint64(97862); got != want {
		t.Fatalf("perft(kiwipete, 3): got %d want %d", got, want)
	}
}

func TestPerftEndgameRookPosition(t *testing.T) {
	pos, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got, want := Perft(pos, 1), uint64(14); got != want {
		t.Fatalf("perft(endgame, 1): got %d want %d", got, want)
	}
	if got, want := Perft(pos, 4), uint64(43238); got != want {
		t.Fatalf("perft(endgame, 4): got %d want %d", got, want)
	}
}

func TestPerftPromotionHeavyPosition(t *testing.T) {
	pos, err := ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got, want := Perft(pos, 1), uint64(44); got != want {
		t.Fatalf("perft(promotion-heavy, 1): got %d want %d", got, want)
	}
}

func TestPerftMiddlegamePosition(t *testing.T) {
	pos, err := ParseFEN("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got, want := Perft(pos, 1), uint64(46); got != want {
		t.Fatalf("perft(middlegame, 1): got %d want %d", got, want)
	}
	if got, want := Perft(pos, 2), uint64(2079); got != want {
		t.Fatalf("perft(middlegame, 2): got %d want %d", got, want)
	}
}
