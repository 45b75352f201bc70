// Package game implements legal move generation, the Game state machine
// (execute/undo/redo, outcome resolution), and perft counting, grounded on
// common/movegen.go's generation loops adapted to board.Move's two-square
// shape with promotion resolved at execution time rather than generation
// time.
package game

import "github.com/navanchauhan/gochess/board"

// HistoryRecord captures everything needed to reverse one executed
// half-move, per spec.md §3.
type HistoryRecord struct {
	Move                board.Move
	MovedPieceKind       board.PieceKind
	CapturedPiece        board.Piece  // zero value if the move was not a capture
	CapturedSquare       board.Square // SquareNone if not a capture
	PromotionChoice      board.PieceKind
	PriorCastlingRights  board.CastlingRights
	PriorEnPassant       board.Square
	PriorHalfmoveClock   uint16
	PriorFullmoveNumber  uint16
}

// rookCastleSquares returns the rook's (from, to) squares for the castling
// move mv, assuming mv.IsCastle() is already true.
func rookCastleSquares(mv board.Move) (from, to board.Square) {
	rank := mv.From.Rank()
	if mv.To.File() == board.FileG {
		return board.MakeSquare(board.FileH, rank), board.MakeSquare(board.FileF, rank)
	}
	return board.MakeSquare(board.FileA, rank), board.MakeSquare(board.FileD, rank)
}

// isPromotionMove reports whether mv, played by the side to move in pos,
// is a pawn move landing on the mover's end rank.
func isPromotionMove(pos *board.Position, mv board.Move) bool {
	p := pos.Board.Get(mv.From)
	return p.Kind == board.Pawn && mv.To.Rank() == pos.SideToMove.EndRank()
}

// ApplyMove returns the position after mv is played, using promotion when
// mv is a promotion move. It is exported for callers (such as pgn) that
// need to walk forward through a sequence of already-resolved moves
// without the undo/redo bookkeeping a full Game carries.
func ApplyMove(pos board.Position, mv board.Move, promotion board.PieceKind) board.Position {
	next, _ := apply(pos, mv, promotion)
	return next
}

// apply performs the mutation described by spec.md §4.3/§4.4 for mv played
// in pos, using promotion when the move is a promotion (ignored otherwise).
// The caller is responsible for having already validated mv structurally;
// apply does not itself check legality.
func apply(pos board.Position, mv board.Move, promotion board.PieceKind) (board.Position, HistoryRecord) {
	mover := pos.SideToMove
	moving := pos.Board.Get(mv.From)

	rec := HistoryRecord{
		Move:                mv,
		MovedPieceKind:       moving.Kind,
		CapturedSquare:       board.SquareNone,
		PriorCastlingRights:  pos.CastlingRights,
		PriorEnPassant:       pos.EnPassant,
		PriorHalfmoveClock:   pos.HalfmoveClock,
		PriorFullmoveNumber:  pos.FullmoveNumber,
	}

	capturedSquare := mv.To
	isEnPassant := moving.Kind == board.Pawn && mv.To == pos.EnPassant && pos.EnPassant != board.SquareNone
	if isEnPassant {
		capturedSquare = board.MakeSquare(mv.To.File(), mv.From.Rank())
	}
	captured := pos.Board.Get(capturedSquare)
	if !captured.IsEmpty() {
		rec.CapturedPiece = captured
		rec.CapturedSquare = capturedSquare
	}

	next := pos
	next.Board.Remove(mv.From)
	if !captured.IsEmpty() {
		next.Board.Remove(capturedSquare)
	}

	placed := moving
	if promotion != board.NoPieceKind && isPromotionMove(&pos, mv) {
		placed = board.Piece{Kind: promotion, Color: mover}
		rec.PromotionChoice = promotion
	}
	next.Board.Set(mv.To, placed)

	if moving.Kind == board.King && mv.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(mv)
		rook := next.Board.Remove(rookFrom)
		next.Board.Set(rookTo, rook)
	}

	next.EnPassant = board.SquareNone
	if moving.Kind == board.Pawn && mv.RankChange() == 2 {
		midRank := (mv.From.Rank() + mv.To.Rank()) / 2
		next.EnPassant = board.MakeSquare(mv.From.File(), midRank)
	}

	next.CastlingRights = pos.CastlingRights & board.CastlingClearMask(mv.From) & board.CastlingClearMask(mv.To)

	if moving.Kind == board.Pawn || !captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}

	if pos.SideToMove == board.Black {
		next.FullmoveNumber = pos.FullmoveNumber + 1
	}

	next.SideToMove = pos.SideToMove.Opposite()

	return next, rec
}

// undo reverses rec against cur (the position immediately after rec's move
// was applied) and returns the position immediately before it.
func undo(cur board.Position, rec HistoryRecord) board.Position {
	prior := cur
	prior.SideToMove = cur.SideToMove.Opposite()
	prior.CastlingRights = rec.PriorCastlingRights
	prior.EnPassant = rec.PriorEnPassant
	prior.HalfmoveClock = rec.PriorHalfmoveClock
	prior.FullmoveNumber = rec.PriorFullmoveNumber

	mover := prior.SideToMove

	prior.Board.Remove(rec.Move.To)
	if rec.MovedPieceKind == board.King && rec.Move.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(rec.Move)
		rook := prior.Board.Remove(rookTo)
		prior.Board.Set(rookFrom, rook)
	}
	prior.Board.Set(rec.Move.From, board.Piece{Kind: rec.MovedPieceKind, Color: mover})
	if !rec.CapturedPiece.IsEmpty() {
		prior.Board.Set(rec.CapturedSquare, rec.CapturedPiece)
	}

	return prior
}
