package core

import (
	"fmt"
	"io"
	"os"
)

const (
	// MaxPly bounds recursion depth; killer storage is sized to it.
	MaxPly = 256

	nullMoveReduction = 2
	nullMoveMinDepth  = 3
	lmrMinDepth       = 2
	lmrMoveThreshold  = 3

	pvMoveBonus       = 2000
	captureBonus      = 1000
	firstKillerBonus  = 500
	secondKillerBonus = 400
	promotionBonus    = 300
	castlingBonus     = 200
)

// Searcher holds the mutable state threaded through one top-level Search
// call: killer moves and history are shared across the whole recursive
// tree, which is safe only because search is single-threaded.
type Searcher struct {
	killers [MaxPly][2]Move
	history [12][64]int
	nodes   uint64
}

// NewSearcher returns a Searcher ready for its first Search call.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Reset clears node counter, killers and history, as required between
// top-level searches.
func (s *Searcher) Reset() {
	s.nodes = 0
	s.killers = [MaxPly][2]Move{}
	s.history = [12][64]int{}
}

// Search runs iterative deepening from 1 to depth plies against os.Stdout,
// for callers that just want engine behavior without wiring their own
// writer. Search is where the teacher's RunUCIProtocol
// hardcodes stdout; SearchTo below generalizes it for tests.
func (s *Searcher) Search(pos Position, depth int) Move {
	return s.SearchTo(os.Stdout, pos, depth)
}

// SearchTo runs iterative deepening from 1 to depth plies, writing an
// "info depth d score cp s nodes n pv ..." line to w after each completed
// iteration, and returns the best move found by the deepest completed
// iteration's principal variation.
func (s *Searcher) SearchTo(w io.Writer, pos Position, depth int) Move {
	s.Reset()
	best := NullMove

	for d := 1; d <= depth; d++ {
		var pv []Move
		score := s.negamax(pos, NegInf, PosInf, d, 0, &pv)
		if len(pv) > 0 {
			best = pv[0]
		}
		fmt.Fprintf(w, "info depth %d score cp %d nodes %d pv%s\n", d, score, s.nodes, pvString(pv))
	}
	return best
}

func pvString(pv []Move) string {
	s := ""
	for _, mv := range pv {
		s += " " + mv.String()
	}
	return s
}

// negamax searches pos to depth plies (or into quiescence at depth 0),
// writing the principal variation from this node into pvOut.
func (s *Searcher) negamax(pos Position, alpha, beta, depth, ply int, pvOut *[]Move) int {
	s.nodes++
	if ply >= MaxPly {
		return Evaluate(&pos)
	}
	if depth == 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	isCheck := pos.InCheck()

	if !isCheck && depth >= nullMoveMinDepth && ply != 0 && len(*pvOut) == 0 {
		var childPV []Move
		nullPos := MakeNullMove(pos)
		score := -s.negamax(nullPos, -beta, -beta+1, depth-1-nullMoveReduction, ply+1, &childPV)
		if score >= beta {
			return beta
		}
	}

	extension := 0
	if isCheck {
		extension = 1
	}

	var pseudo []Move
	GenerateMoves(&pos, &pseudo)
	s.orderMoves(pseudo, ply, pvFirstMove(pvOut))

	legalMoves := 0

	for moveIndex, mv := range pseudo {
		next, ok := MakeMove(pos, mv)
		if !ok {
			continue
		}
		legalMoves++

		var childPV []Move
		childDepth := depth - 1 + extension
		var score int

		quiet := !mv.IsCapture && !mv.IsPromotion() && !mv.IsCastling

		if legalMoves == 1 {
			score = -s.negamax(next, -beta, -alpha, childDepth, ply+1, &childPV)
		} else {
			if moveIndex > lmrMoveThreshold && quiet && !isCheck && depth > lmrMinDepth && extension == 0 {
				reducedDepth := depth - 2 + extension
				score = -s.negamax(next, -alpha-1, -alpha, reducedDepth, ply+1, &childPV)
				if score > alpha {
					childPV = nil
					score = -s.negamax(next, -alpha-1, -alpha, childDepth, ply+1, &childPV)
					if score > alpha && score < beta {
						childPV = nil
						score = -s.negamax(next, -beta, -alpha, childDepth, ply+1, &childPV)
					}
				}
			} else {
				score = -s.negamax(next, -alpha-1, -alpha, childDepth, ply+1, &childPV)
				if score > alpha && score < beta {
					childPV = nil
					score = -s.negamax(next, -beta, -alpha, childDepth, ply+1, &childPV)
				}
			}
		}

		if score >= beta {
			if quiet {
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = mv
			}
			return beta
		}
		if score > alpha {
			alpha = score
			if quiet {
				s.history[mv.Piece][mv.To] += depth * depth
			}
			*pvOut = append((*pvOut)[:0], mv)
			*pvOut = append(*pvOut, childPV...)
		}
	}

	if legalMoves == 0 {
		if isCheck {
			return NegInf + ply
		}
		return 0
	}

	return alpha
}

// quiescence extends the search along captures only, past the nominal
// depth, to avoid the horizon effect.
func (s *Searcher) quiescence(pos Position, alpha, beta, ply int) int {
	s.nodes++
	standPat := Evaluate(&pos)
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}
	if ply >= MaxPly {
		return standPat
	}

	var pseudo []Move
	GenerateMoves(&pos, &pseudo)
	s.orderMoves(pseudo, ply, NullMove)

	for _, mv := range pseudo {
		if !mv.IsCapture {
			continue
		}
		next, ok := MakeMove(pos, mv)
		if !ok {
			continue
		}
		score := -s.quiescence(next, -beta, -alpha, ply+1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func pvFirstMove(pv *[]Move) Move {
	if pv == nil || len(*pv) == 0 {
		return NullMove
	}
	return (*pv)[0]
}

// orderMoves sorts moves in place by descending ordering score, so that
// the principal-variation move, promising captures, killers, and
// historically good quiet moves are searched first.
func (s *Searcher) orderMoves(moves []Move, ply int, pvMove Move) {
	scores := make([]int, len(moves))
	for i, mv := range moves {
		scores[i] = s.moveScore(mv, ply, pvMove)
	}
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && scores[j-1] < scores[j]; j-- {
			moves[j], moves[j-1] = moves[j-1], moves[j]
			scores[j], scores[j-1] = scores[j-1], scores[j]
		}
	}
}

func (s *Searcher) moveScore(mv Move, ply int, pvMove Move) int {
	score := 0
	if !mv.IsNull() && !pvMove.IsNull() && mv == pvMove {
		score += pvMoveBonus
	}

	switch {
	case mv.IsCapture:
		score += captureBonus + 10*int(mv.Captured) - int(mv.Piece.Kind())%6
	case mv == s.killers[ply][0]:
		score += firstKillerBonus
	case mv == s.killers[ply][1]:
		score += secondKillerBonus
	default:
		score += s.history[mv.Piece][mv.To]
	}

	if mv.IsPromotion() {
		score += promotionBonus + int(mv.Promoted.Kind())
	}
	if mv.IsCastling {
		score += castlingBonus
	}
	return score
}
