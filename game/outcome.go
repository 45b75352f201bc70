package game

import "github.com/navanchauhan/gochess/board"

// Outcome is the terminal status of a position, per spec.md §4.4.
type Outcome int

const (
	// InProgress means the side to move has at least one legal move, the
	// material is sufficient, and no draw has been claimed.
	InProgress Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	DrawnByClaim
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case DrawnByClaim:
		return "drawn by claim"
	default:
		return "in progress"
	}
}

// evaluateOutcome classifies pos per spec.md §4.4: checkmate/stalemate take
// priority over the material check, since a king-and-bishop-vs-king
// position with no legal moves for the side to move still cannot occur
// (bare kings always have moves), but the ordering is kept explicit to
// match the spec's described precedence.
func evaluateOutcome(pos *board.Position, legal []board.Move) Outcome {
	if len(legal) == 0 {
		if pos.Board.KingInCheck(pos.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if isInsufficientMaterial(&pos.Board) {
		return InsufficientMaterial
	}
	return InProgress
}

// isInsufficientMaterial reports whether neither side has enough material
// to force checkmate, per spec.md §4.4: king vs king, king+minor vs king,
// or king+bishop vs king+bishop with same-colored bishops.
func isInsufficientMaterial(b *board.Board) bool {
	if b.ByKind(board.Pawn) != 0 || b.ByKind(board.Rook) != 0 || b.ByKind(board.Queen) != 0 {
		return false
	}

	whiteKnights, whiteBishops := b.Count(board.Knight, board.White), b.Count(board.Bishop, board.White)
	blackKnights, blackBishops := b.Count(board.Knight, board.Black), b.Count(board.Bishop, board.Black)
	whiteMinors := whiteKnights + whiteBishops
	blackMinors := blackKnights + blackBishops

	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 1 && whiteKnights == 0 && blackKnights == 0 {
		whiteSq := b.Squares(board.Bishop, board.White)[0]
		blackSq := b.Squares(board.Bishop, board.Black)[0]
		return whiteSq.IsLight() == blackSq.IsLight()
	}
	return false
}
