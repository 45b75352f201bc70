// Package pgnmove resolves a single SAN or LAN move token against a
// position, and formats a legal move back into SAN, grounded on
// common/move.go's moveToSAN/ParseMoveSAN ambiguity-scan approach.
package pgnmove

import (
	"strings"

	"github.com/navanchauhan/gochess/board"
	"github.com/navanchauhan/gochess/chesserr"
	"github.com/navanchauhan/gochess/game"
)

func pieceLetterFor(k board.PieceKind) byte {
	switch k {
	case board.Knight:
		return 'N'
	case board.Bishop:
		return 'B'
	case board.Rook:
		return 'R'
	case board.Queen:
		return 'Q'
	case board.King:
		return 'K'
	default:
		return 0
	}
}

func promotionLetter(k board.PieceKind) byte {
	switch k {
	case board.Knight:
		return 'N'
	case board.Bishop:
		return 'B'
	case board.Rook:
		return 'R'
	case board.Queen:
		return 'Q'
	default:
		return 0
	}
}

func parsePromotionLetter(ch byte) board.PieceKind {
	switch ch {
	case 'N', 'n':
		return board.Knight
	case 'B', 'b':
		return board.Bishop
	case 'R', 'r':
		return board.Rook
	case 'Q', 'q':
		return board.Queen
	default:
		return board.NoPieceKind
	}
}

// FormatLAN renders mv as a bare from-to-promotion token ("e2e4", "a7a8q").
func FormatLAN(pos *board.Position, mv board.Move, promotion board.PieceKind) string {
	s := mv.String()
	if letter := promotionLetter(promotion); letter != 0 && isPromotionMove(pos, mv) {
		s += strings.ToLower(string(letter))
	}
	return s
}

func isPromotionMove(pos *board.Position, mv board.Move) bool {
	p := pos.Board.Get(mv.From)
	return p.Kind == board.Pawn && mv.To.Rank() == pos.SideToMove.EndRank()
}

// FormatSAN renders mv as Standard Algebraic Notation relative to pos,
// grounded on common/move.go's moveToSAN: piece letter, disambiguation
// scanned against the other currently-legal moves sharing the destination,
// capture marker, promotion suffix. It does not append a check/mate suffix
// since that requires knowing the resulting position's outcome, which the
// caller (pgn) computes after applying the move.
func FormatSAN(pos *board.Position, mv board.Move, promotion board.PieceKind) string {
	if mv.IsCastle() {
		if mv.To.File() == board.FileG {
			return "O-O"
		}
		return "O-O-O"
	}

	moving := pos.Board.Get(mv.From)
	target := pos.Board.Get(mv.To)
	isCapture := !target.IsEmpty() || (moving.Kind == board.Pawn && mv.To == pos.EnPassant && pos.EnPassant != board.SquareNone)

	var sb strings.Builder
	if moving.Kind != board.Pawn {
		sb.WriteByte(pieceLetterFor(moving.Kind))
	}

	legal := game.LegalMoves(pos)
	var ambiguous, uniqFile, uniqRank bool
	uniqFile, uniqRank = true, true
	for _, other := range legal {
		if other == mv || other.To != mv.To {
			continue
		}
		otherPiece := pos.Board.Get(other.From)
		if otherPiece.Kind != moving.Kind {
			continue
		}
		ambiguous = true
		if other.From.File() == mv.From.File() {
			uniqFile = false
		}
		if other.From.Rank() == mv.From.Rank() {
			uniqRank = false
		}
	}
	if moving.Kind == board.Pawn && isCapture {
		sb.WriteString(mv.From.File().String())
	} else if ambiguous {
		switch {
		case uniqFile:
			sb.WriteString(mv.From.File().String())
		case uniqRank:
			sb.WriteString(mv.From.Rank().String())
		default:
			sb.WriteString(mv.From.String())
		}
	}

	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(mv.To.String())

	if letter := promotionLetter(promotion); letter != 0 && isPromotionMove(pos, mv) {
		sb.WriteByte('=')
		sb.WriteByte(letter)
	}

	return sb.String()
}

// ParseSAN resolves a SAN token (with any trailing +/#/!/? annotation
// already stripped, or present and ignored) against pos, returning the
// matching legal move and its promotion piece kind (NoPieceKind if the
// move is not a promotion). It returns chesserr.ErrInvalidMove wrapped in
// a PGNError when no legal move renders to the given token.
func ParseSAN(pos *board.Position, san string) (board.Move, board.PieceKind, error) {
	token := strings.TrimRight(san, "+#!?")
	if strings.Contains(token, "@") {
		// Drop notation ("[P]@<square>") is recognised so variant PGNs
		// load without a lexical error, per spec.md §4.5/§9, but standard
		// chess has no legal drop to resolve it against.
		return board.NoMove, board.NoPieceKind, &chesserr.PGNError{Err: chesserr.ErrInvalidMove, Token: san}
	}
	for _, mv := range game.LegalMoves(pos) {
		if isPromotionMove(pos, mv) {
			for _, promo := range []board.PieceKind{board.Queen, board.Rook, board.Bishop, board.Knight} {
				if FormatSAN(pos, mv, promo) == token {
					return mv, promo, nil
				}
			}
			continue
		}
		if FormatSAN(pos, mv, board.NoPieceKind) == token {
			return mv, board.NoPieceKind, nil
		}
	}
	if mv, promo, ok := parseLongAlgebraic(pos, token); ok {
		return mv, promo, nil
	}
	return board.NoMove, board.NoPieceKind, &chesserr.PGNError{Err: chesserr.ErrInvalidMove, Token: san}
}

// parseLongAlgebraic recognises spec.md §4.5 form 3, "long algebraic
// notation": an optional piece letter, an origin square, an optional 'x'
// or '-' separator, a destination square, and an optional promotion
// suffix — e.g. "Ng1-f3", "e2xd3", "e7-e8=Q". FormatSAN never produces
// this shape (it always emits short algebraic), so ParseSAN falls back to
// this explicit scan once the format-and-compare pass above finds no
// match.
func parseLongAlgebraic(pos *board.Position, token string) (board.Move, board.PieceKind, bool) {
	rest := token
	if len(rest) > 0 {
		switch rest[0] {
		case 'K', 'Q', 'R', 'B', 'N':
			rest = rest[1:]
		}
	}

	from := board.ParseSquare(firstTwo(rest))
	if from == board.SquareNone || len(rest) < 2 {
		return board.NoMove, board.NoPieceKind, false
	}
	rest = rest[2:]

	if len(rest) > 0 && (rest[0] == 'x' || rest[0] == '-') {
		rest = rest[1:]
	}

	to := board.ParseSquare(firstTwo(rest))
	if to == board.SquareNone || len(rest) < 2 {
		return board.NoMove, board.NoPieceKind, false
	}
	rest = rest[2:]

	promotion := board.NoPieceKind
	if len(rest) > 0 && rest[0] == '=' {
		rest = rest[1:]
	}
	if len(rest) == 1 {
		promotion = parsePromotionLetter(rest[0])
		if promotion == board.NoPieceKind {
			return board.NoMove, board.NoPieceKind, false
		}
	} else if len(rest) > 1 {
		return board.NoMove, board.NoPieceKind, false
	}

	mv := board.Move{From: from, To: to}
	for _, cand := range game.LegalMoves(pos) {
		if cand != mv {
			continue
		}
		if isPromotionMove(pos, mv) && promotion == board.NoPieceKind {
			return board.NoMove, board.NoPieceKind, false
		}
		return mv, promotion, true
	}
	return board.NoMove, board.NoPieceKind, false
}

// firstTwo returns the first two bytes of s, or all of s if shorter.
func firstTwo(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[:2]
}

// ParseLAN resolves a bare from-to[-promotion] token ("e2e4", "a7a8q")
// against pos.
func ParseLAN(pos *board.Position, lan string) (board.Move, board.PieceKind, error) {
	if len(lan) != 4 && len(lan) != 5 {
		return board.NoMove, board.NoPieceKind, &chesserr.PGNError{Err: chesserr.ErrInvalidMove, Token: lan}
	}
	from := board.ParseSquare(lan[0:2])
	to := board.ParseSquare(lan[2:4])
	if from == board.SquareNone || to == board.SquareNone {
		return board.NoMove, board.NoPieceKind, &chesserr.PGNError{Err: chesserr.ErrInvalidMove, Token: lan}
	}
	promotion := board.NoPieceKind
	if len(lan) == 5 {
		promotion = parsePromotionLetter(lan[4])
		if promotion == board.NoPieceKind {
			return board.NoMove, board.NoPieceKind, &chesserr.PGNError{Err: chesserr.ErrInvalidMove, Token: lan}
		}
	}
	mv := board.Move{From: from, To: to}
	for _, cand := range game.LegalMoves(pos) {
		if cand == mv {
			return mv, promotion, nil
		}
	}
	return board.NoMove, board.NoPieceKind, &chesserr.PGNError{Err: chesserr.ErrIllegalMove, Token: lan}
}
