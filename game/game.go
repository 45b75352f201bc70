package game

import (
	"github.com/navanchauhan/gochess/board"
	"github.com/navanchauhan/gochess/chesserr"
)

// Game is the full move-by-move state machine described by spec.md §4:
// current position, the history needed to undo/redo, and a redo buffer
// that is discarded the moment a new move is executed from a non-tip
// state, mirroring the usual undo/redo stack discipline.
type Game struct {
	current     board.Position
	history     []HistoryRecord
	redo        []HistoryRecord
	drawClaimed bool
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	return &Game{current: board.NewInitialPosition()}
}

// NewGameFromFEN starts a game from an arbitrary FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := board.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{current: pos}, nil
}

// Position returns the current position.
func (g *Game) Position() board.Position { return g.current }

// AvailableMoves returns every legal move for the side to move.
func (g *Game) AvailableMoves() []board.Move {
	return legalMoves(&g.current)
}

// MovesForPiece returns every legal move originating at from.
func (g *Game) MovesForPiece(from board.Square) []board.Move {
	var out []board.Move
	for _, mv := range g.AvailableMoves() {
		if mv.From == from {
			out = append(out, mv)
		}
	}
	return out
}

// isPromotion reports whether mv is a pawn move reaching the mover's end
// rank, i.e. a move that requires a promotion choice before it can be
// executed, per spec.md §4.3.
func (g *Game) isPromotion(mv board.Move) bool {
	p := g.current.Board.Get(mv.From)
	return p.Kind == board.Pawn && mv.To.Rank() == g.current.SideToMove.EndRank()
}

func (g *Game) findLegal(mv board.Move) bool {
	for _, cand := range legalMoves(&g.current) {
		if cand == mv {
			return true
		}
	}
	return false
}

// Execute plays mv, naming no promotion choice. Per spec.md §4.3/§4.4, a
// promotion move executed this way fails with PromotionRequired; use
// ExecuteWithChoice or ExecuteWithChooser to supply one.
func (g *Game) Execute(mv board.Move) error {
	return g.ExecuteWithChoice(mv, board.NoPieceKind)
}

// ExecuteWithChoice plays mv, using promotion as the new piece kind when mv
// is a promotion move. promotion is ignored for non-promotion moves. Fails
// with PromotionRequired if mv is a promotion move and promotion is
// board.NoPieceKind, or with InvalidPromotion if promotion names a kind
// that cannot promote to (pawn or king), per spec.md §4.3/§6.
func (g *Game) ExecuteWithChoice(mv board.Move, promotion board.PieceKind) error {
	if !g.findLegal(mv) {
		return &chesserr.MoveError{Err: chesserr.ErrIllegalMove, Move: mv.String()}
	}
	if g.isPromotion(mv) {
		switch promotion {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
		case board.NoPieceKind:
			return &chesserr.MoveError{Err: chesserr.ErrPromotionRequired, Move: mv.String()}
		default:
			return &chesserr.MoveError{Err: chesserr.ErrInvalidPromotion, Move: mv.String()}
		}
	}
	next, rec := apply(g.current, mv, promotion)
	g.current = next
	g.history = append(g.history, rec)
	g.redo = g.redo[:0]
	g.drawClaimed = false
	return nil
}

// Chooser decides the promotion piece for a promotion move, letting a
// caller defer the choice (e.g. to a UI prompt) rather than naming it
// up front, per spec.md §4.3.
type Chooser func(mv board.Move) board.PieceKind

// ExecuteWithChooser plays mv, invoking choose only if mv is a promotion
// move; a nil choose on a promotion move fails with PromotionRequired, the
// same as Execute.
func (g *Game) ExecuteWithChooser(mv board.Move, choose Chooser) error {
	promotion := board.NoPieceKind
	if g.isPromotion(mv) && choose != nil {
		promotion = choose(mv)
	}
	return g.ExecuteWithChoice(mv, promotion)
}

// Undo reverses the most recently executed move, returning it to the redo
// buffer for a subsequent Redo.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return chesserr.ErrNoMoveToUndo
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.current = undo(g.current, rec)
	g.redo = append(g.redo, rec)
	return nil
}

// Redo replays the most recently undone move.
func (g *Game) Redo() error {
	if len(g.redo) == 0 {
		return chesserr.ErrNoMoveToRedo
	}
	rec := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]
	next, _ := apply(g.current, rec.Move, rec.PromotionChoice)
	g.current = next
	g.history = append(g.history, rec)
	return nil
}

// History returns the executed move records, oldest first.
func (g *Game) History() []HistoryRecord { return g.history }

// IsFinished reports whether the side to move has no legal moves, the
// position is materially drawn dead, or a draw has been claimed, per
// spec.md §4.4. Fifty-move and threefold repetition are claimable, not
// automatic — see IsFiftyMoveRule, IsThreefoldRepetition and ClaimDraw.
func (g *Game) IsFinished() bool {
	return g.Outcome() != InProgress
}

// Outcome classifies the current position per spec.md §4.4. A prior
// ClaimDraw overrides the material/mate classification until the next
// executed move.
func (g *Game) Outcome() Outcome {
	if g.drawClaimed {
		return DrawnByClaim
	}
	return evaluateOutcome(&g.current, legalMoves(&g.current))
}

// IsFiftyMoveRule reports whether the fifty-move rule is available to be
// claimed as a draw (100 halfmove-clock ticks with no pawn move or
// capture), per spec.md §4.4. The game does not terminate on this
// automatically; the caller decides whether to claim it.
func (g *Game) IsFiftyMoveRule() bool {
	return g.current.HalfmoveClock >= 100
}

// IsThreefoldRepetition reports whether the current position (by board,
// side-to-move, castling rights, and en-passant target) has occurred at
// least three times across the game so far, per spec.md §4.4.
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitionCount() >= 3
}

// CanClaimDraw reports whether either the fifty-move rule or threefold
// repetition is currently available to be claimed.
func (g *Game) CanClaimDraw() bool {
	return g.IsFiftyMoveRule() || g.IsThreefoldRepetition()
}

// ClaimDraw marks the game as drawn by the caller's explicit choice. It
// returns an error if neither the fifty-move rule nor threefold repetition
// is currently available to claim.
func (g *Game) ClaimDraw() error {
	if !g.CanClaimDraw() {
		return chesserr.ErrIllegalMove
	}
	g.drawClaimed = true
	return nil
}

func (g *Game) repetitionCount() int {
	positions := g.positionsSeen()
	count := 0
	for _, p := range positions {
		if p.Equal(&g.current) {
			count++
		}
	}
	return count
}

// positionsSeen reconstructs every position that has occurred so far,
// including the current one, by replaying Undo over the history in
// memory rather than keeping a duplicate running log.
func (g *Game) positionsSeen() []board.Position {
	positions := make([]board.Position, len(g.history)+1)
	pos := g.current
	positions[len(g.history)] = pos
	for i := len(g.history) - 1; i >= 0; i-- {
		pos = undo(pos, g.history[i])
		positions[i] = pos
	}
	return positions
}
