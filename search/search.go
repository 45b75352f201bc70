package search

import (
	"math"

	"github.com/navanchauhan/gochess/board"
	"github.com/navanchauhan/gochess/game"
)

// Minimax is standard alpha-beta over the position tree: it generates legal
// moves via the generator, applies them via unchecked execution, and prunes
// when beta <= alpha, per spec.md §4.7. At depth 0 or a terminal position it
// returns Evaluate(pos). maximising selects whose perspective is being
// maximised at this node (white maximises, black minimises).
func Minimax(pos board.Position, depth int, alpha, beta float64, maximising bool) float64 {
	moves := game.LegalMoves(&pos)
	if depth <= 0 || len(moves) == 0 {
		return Evaluate(&pos)
	}

	if maximising {
		best := math.Inf(-1)
		for _, mv := range moves {
			next := game.ApplyMove(pos, mv, board.Queen)
			score := Minimax(next, depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, mv := range moves {
		next := game.ApplyMove(pos, mv, board.Queen)
		score := Minimax(next, depth-1, alpha, beta, true)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// BestMove iterates the current side's legal moves, scoring each with
// Minimax(depth-1, ...), and returns the maximiser for white or the
// minimiser for black. Ties are resolved by generation order: a later move
// must strictly improve on the current best to replace it. Returns false if
// pos has no legal moves.
func BestMove(pos board.Position, depth int) (board.Move, bool) {
	moves := game.LegalMoves(&pos)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	maximising := pos.SideToMove == board.White
	best := moves[0]
	var bestScore float64
	if maximising {
		bestScore = math.Inf(-1)
	} else {
		bestScore = math.Inf(1)
	}

	for _, mv := range moves {
		next := game.ApplyMove(pos, mv, board.Queen)
		score := Minimax(next, depth-1, math.Inf(-1), math.Inf(1), !maximising)
		if maximising && score > bestScore {
			bestScore = score
			best = mv
		} else if !maximising && score < bestScore {
			bestScore = score
			best = mv
		}
	}

	return best, true
}
