// Package search implements the static evaluator and alpha-beta minimax
// driven by the game package's move generator and make/unmake primitives,
// grounded on engine/evaluation.go and engine/search.go's shape, simplified
// to the flat material evaluator and plain alpha-beta per spec.md §4.7.
package search

import "github.com/navanchauhan/gochess/board"

var pieceKinds = [6]board.PieceKind{
	board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King,
}

// Evaluate returns the sum of signed material values on the board, white
// positive, per spec.md §4.7. Kings are valued finitely (900) by
// board.PieceKind.Value so the result stays a total order.
func Evaluate(pos *board.Position) float64 {
	var total float64
	for _, kind := range pieceKinds {
		value := kind.Value()
		total += value * float64(pos.Board.Count(kind, board.White))
		total -= value * float64(pos.Board.Count(kind, board.Black))
	}
	return total
}
