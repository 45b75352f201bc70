package pgn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/navanchauhan/gochess/board"
	"github.com/navanchauhan/gochess/game"
	"github.com/navanchauhan/gochess/pgnmove"
)

// Serialize renders tags and a movetext tree back to PGN text, grounded on
// mway1-chess__pgn.go's Encode, per spec.md §4.6's round-trip requirement.
func Serialize(tags *TagPairs, mt *Movetext) string {
	var sb strings.Builder
	if tags != nil {
		for _, key := range tags.Keys() {
			value, _ := tags.Get(key)
			fmt.Fprintf(&sb, "[%s %q]\n", key, value)
		}
		sb.WriteByte('\n')
	}

	start := board.NewInitialPosition()
	if tags != nil {
		if fen, ok := tags.Get("FEN"); ok {
			if parsed, err := board.PositionFromFEN(fen); err == nil {
				start = parsed
			}
		}
	}

	sb.WriteString(serializeMovetext(start, mt))
	sb.WriteByte(' ')
	sb.WriteString(mt.Result.String())
	return strings.TrimSpace(sb.String()) + "\n"
}

// serializeMovetext renders one line of movetext, recursing into variations
// attached to each move.
func serializeMovetext(pos board.Position, mt *Movetext) string {
	var parts []string
	for _, c := range mt.LeadingComments {
		parts = append(parts, "{"+c+"}")
	}
	for _, v := range mt.LeadingVariations {
		parts = append(parts, "("+serializeMovetext(pos, v)+")")
	}

	needsNumber := true
	for _, mv := range mt.Moves {
		for _, c := range mv.CommentsBefore {
			parts = append(parts, "{"+c+"}")
		}

		var word strings.Builder
		if needsNumber || mv.Side == board.White {
			word.WriteString(strconv.Itoa(int(mv.Number)))
			if mv.Side == board.Black {
				word.WriteString("...")
			} else {
				word.WriteByte('.')
			}
		}
		needsNumber = false

		move, promotion := mv.ResolvedMove()
		san := mv.Notation
		if san == "" {
			san = pgnmove.FormatSAN(&pos, move, promotion)
		}
		word.WriteString(san)
		for _, nag := range mv.NAGs {
			word.WriteByte(' ')
			word.WriteString(nag)
		}
		parts = append(parts, word.String())

		for _, c := range mv.CommentsAfter {
			parts = append(parts, "{"+c+"}")
		}

		for _, v := range mv.Variations {
			parts = append(parts, "("+serializeMovetext(pos, v)+")")
			needsNumber = true
		}

		pos = game.ApplyMove(pos, move, promotion)
	}

	for _, c := range mt.TrailingComments {
		parts = append(parts, "{"+c+"}")
	}

	return strings.Join(parts, " ")
}
