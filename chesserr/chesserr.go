// Package chesserr defines the error taxonomy shared by every package in
// the module: sentinel errors callers can match with errors.Is, and three
// context-carrying wrapper types: FENError and PGNError for the two text
// formats the module parses, and MoveError for failed move execution.
package chesserr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap one of these in a FENError or PGNError to attach
// positional context, or return it bare when no context is available.
var (
	ErrInvalidFen        = errors.New("invalid FEN")
	ErrInvalidPgn        = errors.New("invalid PGN")
	ErrInvalidMove       = errors.New("move cannot be resolved")
	ErrIllegalMove       = errors.New("illegal move")
	ErrPromotionRequired = errors.New("promotion required")
	ErrInvalidPromotion  = errors.New("invalid promotion piece")
	ErrNoMoveToUndo      = errors.New("no move to undo")
	ErrNoMoveToRedo      = errors.New("no move to redo")
	ErrUnclosedBrace     = errors.New("unclosed brace comment")
	ErrUnmatchedParen    = errors.New("unmatched parenthesis")
)

// FENError wraps a FEN parsing failure with the offending text.
type FENError struct {
	Err error
	FEN string
}

func (e *FENError) Error() string {
	if e.FEN == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.FEN)
}

func (e *FENError) Unwrap() error { return e.Err }

// PGNError wraps a PGN-related failure (header, single-move resolution, or
// movetext lexing/parsing) with whatever positional context is available.
type PGNError struct {
	Err    error
	Token  string // the offending SAN/LAN token, tag text, etc.
	Line   int    // 1-based line number, 0 if unknown
	Column int    // 1-based column number, 0 if unknown
}

func (e *PGNError) Error() string {
	var loc string
	if e.Line > 0 {
		if e.Column > 0 {
			loc = fmt.Sprintf(" at %d:%d", e.Line, e.Column)
		} else {
			loc = fmt.Sprintf(" at line %d", e.Line)
		}
	}
	if e.Token == "" {
		return fmt.Sprintf("%v%s", e.Err, loc)
	}
	return fmt.Sprintf("%v%s: %q", e.Err, loc, e.Token)
}

func (e *PGNError) Unwrap() error { return e.Err }

// MoveError wraps a move that failed execution (illegal, wrong promotion
// kind, etc.) with the move itself rendered by the caller.
type MoveError struct {
	Err  error
	Move string
}

func (e *MoveError) Error() string {
	if e.Move == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Move)
}

func (e *MoveError) Unwrap() error { return e.Err }
