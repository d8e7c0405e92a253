package core

import "sync"

// Zobrist holds the random keys used to incrementally hash a Position.
// Nothing in this package consumes ComputeZobristHash today -- it exists
// as a pure, ready-to-use building block for a future transposition table,
// exactly the role the source repository gives it.
type Zobrist struct {
	Piece    [12][64]uint64
	Castling [16]uint64
	EnPassant [8]uint64
	SideToMove uint64
}

var (
	zobristKeys Zobrist
	zobristOnce sync.Once
)

// splitmix64 is a small, fast, deterministic PRNG used only to fill the
// Zobrist tables at startup; it needs no external dependency and produces
// the same keys on every run, which keeps hashes reproducible across
// processes.
type splitmix64 struct{ state uint64 }

func (r *splitmix64) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func buildZobrist() {
	rng := &splitmix64{state: 0x2545F4914F6CDD1D}
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			zobristKeys.Piece[piece][sq] = rng.next()
		}
	}
	for i := range zobristKeys.Castling {
		zobristKeys.Castling[i] = rng.next()
	}
	for i := range zobristKeys.EnPassant {
		zobristKeys.EnPassant[i] = rng.next()
	}
	zobristKeys.SideToMove = rng.next()
}

// ComputeZobristHash computes pos's Zobrist hash from scratch. The key
// tables are built once, lazily, on the first call.
func ComputeZobristHash(pos *Position) uint64 {
	zobristOnce.Do(buildZobrist)

	var hash uint64
	for piece := ColoredPiece(0); piece < 12; piece++ {
		bb := pos.Pieces[piece]
		for !bb.Empty() {
			sq := bb.PopLSB()
			hash ^= zobristKeys.Piece[piece][sq]
		}
	}
	hash ^= zobristKeys.Castling[pos.Castling]
	if pos.EnPassant != NoSquare {
		hash ^= zobristKeys.EnPassant[pos.EnPassant.File()]
	}
	if pos.SideToMove == Black {
		hash ^= zobristKeys.SideToMove
	}
	return hash
}
