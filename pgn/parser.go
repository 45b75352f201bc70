package pgn

import (
	"strconv"

	"github.com/navanchauhan/gochess/board"
	"github.com/navanchauhan/gochess/game"
	"github.com/navanchauhan/gochess/pgnmove"
)

// parser is a recursive-descent movetext parser, grounded on
// mway1-chess__pgn.go's Parser (parseMoveText/parseVariation/
// collectLoop structure) and lgbarn-pgn-extract-go's resilient,
// diagnostic-collecting style: a malformed or unresolvable move is
// recorded as a diagnostic and parsing continues rather than aborting,
// per spec.md §4.6/§7.
type parser struct {
	lx          *lexer
	lookahead   *token
	diagnostics []Diagnostic
}

func newParser(movetext string) *parser {
	return &parser{lx: newLexer(movetext)}
}

func (p *parser) peek() token {
	if p.lookahead == nil {
		tok, diags := p.lx.next()
		p.diagnostics = append(p.diagnostics, diags...)
		p.lookahead = &tok
	}
	return *p.lookahead
}

func (p *parser) take() token {
	tok := p.peek()
	p.lookahead = nil
	return tok
}

func (p *parser) diag(level DiagnosticLevel, message string, tok token) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Level: level, Message: message, Line: tok.line, Column: tok.column})
}

// ParseGame parses a complete PGN game (tag-pair header plus movetext)
// from src, resolving moves against the position named by a "FEN" tag if
// present or the standard initial position otherwise, per spec.md §6.
func ParseGame(src string) (*TagPairs, *Movetext, error) {
	tags, movetext, err := parseHeader(src)
	if err != nil {
		return nil, nil, err
	}

	start := board.NewInitialPosition()
	if fen, ok := tags.Get("FEN"); ok {
		parsed, err := board.PositionFromFEN(fen)
		if err == nil {
			start = parsed
		}
	}

	p := newParser(movetext)
	mt := p.parseLine(start, start.SideToMove, start.FullmoveNumber, false)
	mt.Diagnostics = p.diagnostics
	return tags, mt, nil
}

// ParseMovetext parses a bare movetext string (no tag-pair header) against
// the standard initial position, for callers that only need the move tree.
func ParseMovetext(movetext string) *Movetext {
	p := newParser(movetext)
	mt := p.parseLine(board.NewInitialPosition(), board.White, 1, false)
	mt.Diagnostics = p.diagnostics
	return mt
}

// parseLine parses one line of movetext (the mainline, or the body of a
// single RAV) starting from pos with side to move and move number as
// given. stopAtVariationEnd is true for a RAV body, which ends at its
// matching ')' rather than at EOF/result.
func (p *parser) parseLine(pos board.Position, side board.Color, number uint16, stopAtVariationEnd bool) *Movetext {
	mt := &Movetext{}
	var pending []string
	resultSeen := false

	flushPendingAsLeading := func() {
		if len(pending) > 0 {
			mt.LeadingComments = append(mt.LeadingComments, pending...)
			pending = nil
		}
	}

	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF:
			p.take()
			flushPendingAsLeading()
			if stopAtVariationEnd {
				p.diag(Error, "unterminated variation", tok)
			}
			return mt

		case tokVariationEnd:
			if stopAtVariationEnd {
				p.take()
				flushPendingAsLeading()
				return mt
			}
			p.diag(Warning, "unmatched ')'", tok)
			p.take()
			continue

		case tokResult:
			p.take()
			flushPendingAsLeading()
			if mt.Result != ResultNone {
				p.diag(Warning, "multiple result markers, keeping the first", tok)
			} else {
				mt.Result = parseResult(tok.text)
			}
			resultSeen = true
			continue

		case tokMoveNumber:
			p.take()
			if n, err := strconv.ParseUint(tok.text, 10, 16); err == nil {
				number = uint16(n)
			}
			if tok.blacks {
				side = board.Black
			} else {
				side = board.White
			}
			continue

		case tokComment:
			p.take()
			switch {
			case resultSeen:
				mt.TrailingComments = append(mt.TrailingComments, tok.text)
			case len(mt.Moves) > 0:
				last := mt.Moves[len(mt.Moves)-1]
				last.CommentsAfter = append(last.CommentsAfter, tok.text)
			default:
				pending = append(pending, tok.text)
			}
			continue

		case tokNAG:
			p.take()
			if len(mt.Moves) > 0 {
				last := mt.Moves[len(mt.Moves)-1]
				last.NAGs = append(last.NAGs, tok.text)
			}
			continue

		case tokVariationStart:
			p.take()
			if len(mt.Moves) == 0 {
				branch := p.parseLine(pos, side, number, true)
				mt.LeadingVariations = append(mt.LeadingVariations, branch)
			} else {
				last := mt.Moves[len(mt.Moves)-1]
				branchPos, branchSide, branchNumber := last.beforeState()
				branch := p.parseLine(branchPos, branchSide, branchNumber, true)
				last.Variations = append(last.Variations, branch)
			}
			continue

		case tokSAN:
			p.take()
			mv, promotion, err := pgnmove.ParseSAN(&pos, tok.text)
			if err != nil {
				p.diag(Error, "unresolvable move "+strconv.Quote(tok.text), tok)
				continue
			}

			node := &Move{
				Number:         number,
				Side:           side,
				Notation:       tok.text,
				CommentsBefore: pending,
			}
			pending = nil
			node.setBeforeState(pos, side, number)
			mt.Moves = append(mt.Moves, node)

			pos = game.ApplyMove(pos, mv, promotion)
			node.move = mv
			node.promotion = promotion

			if side == board.Black {
				number++
			}
			side = side.Opposite()
			continue

		default:
			p.take()
			continue
		}
	}
}
