package board

import (
	"strconv"
	"strings"

	"github.com/navanchauhan/gochess/chesserr"
)

// Position is Board plus the metadata needed to fully describe a game
// state: side to move, castling rights, en-passant target, and the two
// move clocks, per spec.md §3.
type Position struct {
	Board          Board
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square
	HalfmoveClock  uint16
	FullmoveNumber uint16
}

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition returns the standard chess starting position.
func NewInitialPosition() Position {
	p, err := PositionFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionFromFEN parses the six-field FEN string of spec.md §6.
func PositionFromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, &chesserr.FENError{Err: chesserr.ErrInvalidFen, FEN: fen}
	}

	b, err := BoardFromFEN(fields[0])
	if err != nil {
		return Position{}, &chesserr.FENError{Err: chesserr.ErrInvalidFen, FEN: fen}
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return Position{}, &chesserr.FENError{Err: chesserr.ErrInvalidFen, FEN: fen}
	}

	rights := ParseCastlingRights(fields[2])

	ep := SquareNone
	if fields[3] != "-" {
		ep = ParseSquare(fields[3])
		if ep == SquareNone {
			return Position{}, &chesserr.FENError{Err: chesserr.ErrInvalidFen, FEN: fen}
		}
	}

	var halfmove, fullmove uint64
	if len(fields) > 4 {
		halfmove, _ = strconv.ParseUint(fields[4], 10, 16)
	}
	fullmove = 1
	if len(fields) > 5 {
		fullmove, _ = strconv.ParseUint(fields[5], 10, 16)
	}

	return Position{
		Board:          *b,
		SideToMove:     side,
		CastlingRights: rights,
		EnPassant:      ep,
		HalfmoveClock:  uint16(halfmove),
		FullmoveNumber: uint16(fullmove),
	}, nil
}

// FEN serializes the position to the six-field FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	sb.WriteString(p.Board.FEN())
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.HalfmoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.FullmoveNumber)))
	return sb.String()
}

// Equal reports whether two positions have the same board, side to move,
// castling rights, and en-passant target, the "same position" notion used
// for repetition. The halfmove clock and fullmove number are not compared.
func (p *Position) Equal(other *Position) bool {
	return p.Board.Equal(&other.Board) &&
		p.SideToMove == other.SideToMove &&
		p.CastlingRights == other.CastlingRights &&
		p.EnPassant == other.EnPassant
}
