package game

import "github.com/navanchauhan/gochess/board"

// pseudoLegalMoves generates every move that is legal ignoring the mover's
// own king safety, grounded on common/movegen.go's per-piece generation
// loops but emitting board.Move's bare {From, To} shape (promotion choice
// is resolved later, at execution time, per spec.md §3).
func pseudoLegalMoves(pos *board.Position) []board.Move {
	var moves []board.Move
	us := pos.SideToMove
	b := &pos.Board
	occ := b.Occupied()
	ownPieces := b.ByColor(us)

	for _, from := range b.ByPiece(board.Pawn, us).Squares() {
		moves = append(moves, pawnMoves(pos, from)...)
	}

	for _, from := range b.ByPiece(board.Knight, us).Squares() {
		targets := board.KnightAttacks(from) &^ ownPieces
		for _, to := range targets.Squares() {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}

	for _, from := range b.ByPiece(board.Bishop, us).Squares() {
		targets := board.BishopAttacks(from, occ) &^ ownPieces
		for _, to := range targets.Squares() {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}

	for _, from := range b.ByPiece(board.Rook, us).Squares() {
		targets := board.RookAttacks(from, occ) &^ ownPieces
		for _, to := range targets.Squares() {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}

	for _, from := range b.ByPiece(board.Queen, us).Squares() {
		targets := board.QueenAttacks(from, occ) &^ ownPieces
		for _, to := range targets.Squares() {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}

	if king := b.SquareForKing(us); king != board.SquareNone {
		targets := board.KingAttacks(king) &^ ownPieces
		for _, to := range targets.Squares() {
			moves = append(moves, board.Move{From: king, To: to})
		}
		moves = append(moves, castlingMoves(pos, king)...)
	}

	return moves
}

// pawnMoves generates single/double pushes, diagonal captures, en-passant
// captures, and (for end-rank arrivals) a single representative move per
// destination — promotion piece choice is a property of execution, not of
// the move shape, per spec.md §3.
func pawnMoves(pos *board.Position, from board.Square) []board.Move {
	var moves []board.Move
	us := pos.SideToMove
	b := &pos.Board
	occ := b.Occupied()
	empty := b.Empty()

	var push board.Bitboard
	if us == board.White {
		push = from.Mask().North()
	} else {
		push = from.Mask().South()
	}
	push &= empty
	for _, to := range push.Squares() {
		moves = append(moves, board.Move{From: from, To: to})
	}

	if push != 0 && from.Rank() == us.StartRank() {
		var dbl board.Bitboard
		if us == board.White {
			dbl = push.North()
		} else {
			dbl = push.South()
		}
		dbl &= empty
		for _, to := range dbl.Squares() {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}

	attacks := board.PawnAttacks(from, us)
	captures := attacks & occ & b.ByColor(us.Opposite())
	for _, to := range captures.Squares() {
		moves = append(moves, board.Move{From: from, To: to})
	}

	if pos.EnPassant != board.SquareNone && attacks.Get(pos.EnPassant) {
		moves = append(moves, board.Move{From: from, To: pos.EnPassant})
	}

	return moves
}

// castlingMoves generates the (up to two) castling moves available to the
// side to move from its home king square, per spec.md §4.3: the right for
// that side intact, the own rook on its corner, squares between king and
// rook empty, and no square the king
// crosses (including its start and end squares) attacked by the opponent.
func castlingMoves(pos *board.Position, king board.Square) []board.Move {
	var moves []board.Move
	us := pos.SideToMove
	them := us.Opposite()
	b := &pos.Board
	occ := b.Occupied()
	rank := king.Rank()

	if pos.CastlingRights.Has(board.KingsideRight(us)) {
		f, g, h := board.MakeSquare(board.FileF, rank), board.MakeSquare(board.FileG, rank), board.MakeSquare(board.FileH, rank)
		rook := b.Get(h)
		if rook.Kind == board.Rook && rook.Color == us &&
			occ&f.Mask() == 0 && occ&g.Mask() == 0 &&
			!b.IsAttacked(king, them) && !b.IsAttacked(f, them) && !b.IsAttacked(g, them) {
			moves = append(moves, board.Move{From: king, To: g})
		}
	}

	if pos.CastlingRights.Has(board.QueensideRight(us)) {
		d, c, bsq, a := board.MakeSquare(board.FileD, rank), board.MakeSquare(board.FileC, rank),
			board.MakeSquare(board.FileB, rank), board.MakeSquare(board.FileA, rank)
		rook := b.Get(a)
		if rook.Kind == board.Rook && rook.Color == us &&
			occ&d.Mask() == 0 && occ&c.Mask() == 0 && occ&bsq.Mask() == 0 &&
			!b.IsAttacked(king, them) && !b.IsAttacked(d, them) && !b.IsAttacked(c, them) {
			moves = append(moves, board.Move{From: king, To: c})
		}
	}

	return moves
}

// LegalMoves returns every legal move available to the side to move in
// pos, for callers (such as pgnmove) that need move resolution without a
// full Game.
func LegalMoves(pos *board.Position) []board.Move {
	return legalMoves(pos)
}

// legalMoves filters pseudoLegalMoves down to moves that do not leave the
// mover's own king in check, per spec.md §4.3.
func legalMoves(pos *board.Position) []board.Move {
	candidates := pseudoLegalMoves(pos)
	us := pos.SideToMove
	out := make([]board.Move, 0, len(candidates))
	for _, mv := range candidates {
		next, _ := apply(*pos, mv, board.Queen)
		if !next.Board.KingInCheck(us) {
			out = append(out, mv)
		}
	}
	return out
}
