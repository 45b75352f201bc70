package pgn

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// notations flattens a Movetext's mainline into its SAN tokens, for
// structural comparison with go-cmp that ignores the unexported
// resolved-move/position bookkeeping fields.
func notations(mt *Movetext) []string {
	var out []string
	for _, mv := range mt.Moves {
		out = append(out, mv.Notation)
	}
	return out
}

func TestParseHeaderExtractsTags(t *testing.T) {
	src := `[Event "Test Match"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 1-0
`
	tags, movetext, err := parseHeader(src)
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if v, _ := tags.Get("White"); v != "Alice" {
		t.Fatalf("White tag = %q", v)
	}
	if len(tags.MissingRequired()) != 0 {
		t.Fatalf("MissingRequired = %v", tags.MissingRequired())
	}
	if !strings.Contains(movetext, "e4 e5") {
		t.Fatalf("movetext = %q", movetext)
	}
}

func TestParseHeaderMissingRequiredTags(t *testing.T) {
	tags := NewTagPairs()
	tags.Set("Event", "Casual")
	missing := tags.MissingRequired()
	if len(missing) != len(RequiredTags)-1 {
		t.Fatalf("expected %d missing tags, got %d: %v", len(RequiredTags)-1, len(missing), missing)
	}
}

func TestParseMovetextSimpleMainline(t *testing.T) {
	mt := ParseMovetext("1. e4 e5 2. Nf3 Nc6")
	if len(mt.Moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(mt.Moves))
	}
	if mt.Moves[0].Notation != "e4" || mt.Moves[3].Notation != "Nc6" {
		t.Fatalf("unexpected notations: %+v", mt.Moves)
	}
	if len(mt.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", mt.Diagnostics)
	}
}

// TestParseMovetextVariation exercises spec.md §8 scenario 6: a RAV
// branching from White's second move, producing two moves on ply 3 in
// the variation, three mainline moves after the branch point, and a
// draw result.
func TestParseMovetextVariation(t *testing.T) {
	mt := ParseMovetext("1. e4 e5 2. Nf3 (2. Nc3 Nc6) Nc6 3. Bb5 a6 1/2-1/2")

	if mt.Result != ResultDraw {
		t.Fatalf("result = %v, want draw", mt.Result)
	}

	// Mainline: e4 e5 Nf3 Nc6 Bb5 a6 — everything after the branch point
	// (Nf3) counts as three more mainline moves: Nc6, Bb5, a6.
	if len(mt.Moves) != 6 {
		t.Fatalf("expected 6 mainline moves, got %d: %+v", len(mt.Moves), mt.Moves)
	}
	nf3 := mt.Moves[2]
	if nf3.Notation != "Nf3" {
		t.Fatalf("expected branch point Nf3, got %q", nf3.Notation)
	}
	if len(nf3.Variations) != 1 {
		t.Fatalf("expected 1 variation on Nf3, got %d", len(nf3.Variations))
	}
	variation := nf3.Variations[0]
	if len(variation.Moves) != 2 {
		t.Fatalf("expected 2 moves in the variation, got %d: %+v", len(variation.Moves), variation.Moves)
	}
	if variation.Moves[0].Notation != "Nc3" || variation.Moves[1].Notation != "Nc6" {
		t.Fatalf("unexpected variation moves: %+v", variation.Moves)
	}
}

func TestParseMovetextComments(t *testing.T) {
	mt := ParseMovetext("1. e4 {a good move} e5 $1 2. Nf3 Nc6")
	if len(mt.Moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(mt.Moves))
	}
	if len(mt.Moves[0].CommentsAfter) != 1 || mt.Moves[0].CommentsAfter[0] != "a good move" {
		t.Fatalf("e4 comments = %+v", mt.Moves[0].CommentsAfter)
	}
	if len(mt.Moves[1].NAGs) != 1 || mt.Moves[1].NAGs[0] != "$1" {
		t.Fatalf("e5 NAGs = %+v", mt.Moves[1].NAGs)
	}
}

func TestParseMovetextUnresolvableMoveIsDiagnostic(t *testing.T) {
	mt := ParseMovetext("1. e4 Qh5")
	if len(mt.Moves) != 1 {
		t.Fatalf("expected 1 resolved move, got %d", len(mt.Moves))
	}
	if len(mt.Diagnostics) == 0 {
		t.Fatalf("expected a diagnostic for the unresolvable move")
	}
}

func TestParseMovetextUnterminatedVariation(t *testing.T) {
	mt := ParseMovetext("1. e4 e5 (1... c5")
	found := false
	for _, d := range mt.Diagnostics {
		if strings.Contains(d.Message, "unterminated") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unterminated-variation diagnostic, got %+v", mt.Diagnostics)
	}
}

func TestParseMovetextCastling(t *testing.T) {
	mt := ParseMovetext("1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O Nf6")
	if len(mt.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", mt.Diagnostics)
	}
	oo := mt.Moves[6]
	if oo.Notation != "O-O" {
		t.Fatalf("expected castling move, got %q", oo.Notation)
	}
}

func TestParseGameWithFENTag(t *testing.T) {
	src := `[Event "Endgame study"]
[Site "?"]
[Date "????.??.??"]
[Round "-"]
[White "?"]
[Black "?"]
[Result "1-0"]
[FEN "7k/P7/8/8/8/8/8/7K w - - 0 1"]

1. a8=Q 1-0
`
	_, mt, err := ParseGame(src)
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if len(mt.Moves) != 1 || mt.Moves[0].Notation != "a8=Q" {
		t.Fatalf("unexpected moves: %+v, diagnostics: %+v", mt.Moves, mt.Diagnostics)
	}
}

func TestParseMovetextUndecidedResult(t *testing.T) {
	mt := ParseMovetext("1. e4 e5 *")
	if mt.Result != ResultUndecided {
		t.Fatalf("result = %v, want ResultUndecided", mt.Result)
	}
	for _, d := range mt.Diagnostics {
		if strings.Contains(d.Message, "unknown token") {
			t.Fatalf("unexpected diagnostic for '*': %+v", d)
		}
	}
}

func TestParseMovetextTrailingCommentsAfterResult(t *testing.T) {
	mt := ParseMovetext("1. e4 e5 1-0 {a well-fought game}")
	if mt.Result != ResultWhiteWins {
		t.Fatalf("result = %v, want ResultWhiteWins", mt.Result)
	}
	if len(mt.Moves[1].CommentsAfter) != 0 {
		t.Fatalf("comment after result leaked into last move's CommentsAfter: %+v", mt.Moves[1].CommentsAfter)
	}
	if len(mt.TrailingComments) != 1 || mt.TrailingComments[0] != "a well-fought game" {
		t.Fatalf("TrailingComments = %+v, want [\"a well-fought game\"]", mt.TrailingComments)
	}
}

func TestSerializeCommentsBeforeRoundTrip(t *testing.T) {
	tags := NewTagPairs()
	for _, k := range RequiredTags {
		tags.Set(k, "?")
	}
	// A comment preceding the first move of the line is the one shape
	// the parser actually produces as CommentsBefore (pending only ever
	// feeds a move's CommentsBefore before any move has been added).
	mt := ParseMovetext("{about to open} 1. e4 e5 *")
	if len(mt.Moves[0].CommentsBefore) != 1 || mt.Moves[0].CommentsBefore[0] != "about to open" {
		t.Fatalf("setup: CommentsBefore = %+v", mt.Moves[0].CommentsBefore)
	}

	out := Serialize(tags, mt)
	movetext := strings.TrimPrefix(out, out[:strings.Index(out, "{")])
	reparsed := ParseMovetext(movetext)

	if len(reparsed.Moves[0].CommentsBefore) != 1 || reparsed.Moves[0].CommentsBefore[0] != "about to open" {
		t.Fatalf("CommentsBefore did not round-trip: got %+v", reparsed.Moves[0])
	}
	if len(reparsed.Moves[0].CommentsAfter) != 0 {
		t.Fatalf("comment migrated into CommentsAfter: got %+v", reparsed.Moves[0])
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tags := NewTagPairs()
	for _, k := range RequiredTags {
		tags.Set(k, "?")
	}
	mt := ParseMovetext("1. e4 e5 2. Nf3 Nc6 1/2-1/2")

	out := Serialize(tags, mt)
	if !strings.Contains(out, "e4") || !strings.Contains(out, "Nc6") || !strings.Contains(out, "1/2-1/2") {
		t.Fatalf("serialized output missing expected content: %q", out)
	}

	reparsed := ParseMovetext(strings.TrimPrefix(out, out[:strings.Index(out, "1.")]))
	if diff := cmp.Diff(notations(mt), notations(reparsed), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip notation mismatch:\n%s", diff)
	}
	if reparsed.Result != mt.Result {
		t.Fatalf("round trip result mismatch: got %v, want %v", reparsed.Result, mt.Result)
	}
}
