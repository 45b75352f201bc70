package pgnmove

import (
	"testing"

	"github.com/navanchauhan/gochess/board"
)

func TestFormatSANSimplePawnMove(t *testing.T) {
	pos := board.NewInitialPosition()
	mv := board.Move{From: board.SquareE2, To: board.SquareE4}
	if got, want := FormatSAN(&pos, mv, board.NoPieceKind), "e4"; got != want {
		t.Errorf("FormatSAN() = %q, want %q", got, want)
	}
}

func TestFormatSANKnightDisambiguation(t *testing.T) {
	// Knights on b1 and d1 both attack c3, so the move must be
	// disambiguated by origin file.
	pos, err := board.PositionFromFEN("8/8/8/8/8/8/8/1N1N4 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mv := board.Move{From: board.SquareB1, To: board.SquareC3}
	if got, want := FormatSAN(&pos, mv, board.NoPieceKind), "Nbc3"; got != want {
		t.Errorf("FormatSAN() = %q, want %q", got, want)
	}
}

func TestFormatSANCastle(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mv := board.Move{From: board.SquareE1, To: board.SquareG1}
	if got, want := FormatSAN(&pos, mv, board.NoPieceKind), "O-O"; got != want {
		t.Errorf("FormatSAN() = %q, want %q", got, want)
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	pos := board.NewInitialPosition()
	mv, promo, err := ParseSAN(&pos, "e4")
	if err != nil {
		t.Fatal(err)
	}
	want := board.Move{From: board.SquareE2, To: board.SquareE4}
	if mv != want || promo != board.NoPieceKind {
		t.Errorf("ParseSAN(e4) = %v, %v; want %v, NoPieceKind", mv, promo, want)
	}
}

func TestParseSANPromotion(t *testing.T) {
	pos, err := board.PositionFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mv, promo, err := ParseSAN(&pos, "a8=N")
	if err != nil {
		t.Fatal(err)
	}
	if mv.To != board.SquareA8 || promo != board.Knight {
		t.Errorf("ParseSAN(a8=N) = %v, %v; want a8, Knight", mv, promo)
	}
}

func TestParseSANInvalidToken(t *testing.T) {
	pos := board.NewInitialPosition()
	if _, _, err := ParseSAN(&pos, "e5"); err == nil {
		t.Error("ParseSAN(e5) on initial position, want error")
	}
}

func TestParseLANRoundTrip(t *testing.T) {
	pos := board.NewInitialPosition()
	mv, _, err := ParseLAN(&pos, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	want := board.Move{From: board.SquareE2, To: board.SquareE4}
	if mv != want {
		t.Errorf("ParseLAN(e2e4) = %v, want %v", mv, want)
	}
}

func TestParseSANLongAlgebraicForms(t *testing.T) {
	pos := board.NewInitialPosition()
	want := board.Move{From: board.SquareE2, To: board.SquareE4}
	for _, token := range []string{"e2-e4", "e2e4"} {
		mv, promo, err := ParseSAN(&pos, token)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", token, err)
		}
		if mv != want || promo != board.NoPieceKind {
			t.Errorf("ParseSAN(%q) = %v, %v; want %v, NoPieceKind", token, mv, promo, want)
		}
	}
}

func TestParseSANLongAlgebraicCapture(t *testing.T) {
	pos, err := board.PositionFromFEN("8/8/8/3p4/4P3/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mv, _, err := ParseSAN(&pos, "e4xd5")
	if err != nil {
		t.Fatal(err)
	}
	want := board.Move{From: board.SquareE4, To: board.SquareD5}
	if mv != want {
		t.Errorf("ParseSAN(e4xd5) = %v, want %v", mv, want)
	}
}

func TestParseSANLongAlgebraicPromotion(t *testing.T) {
	pos, err := board.PositionFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mv, promo, err := ParseSAN(&pos, "a7-a8=N")
	if err != nil {
		t.Fatal(err)
	}
	if mv.To != board.SquareA8 || promo != board.Knight {
		t.Errorf("ParseSAN(a7-a8=N) = %v, %v; want a8, Knight", mv, promo)
	}
}

func TestParseSANLongAlgebraicPromotionRequiresChoice(t *testing.T) {
	pos, err := board.PositionFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ParseSAN(&pos, "a7-a8"); err == nil {
		t.Error("ParseSAN(a7-a8) on a promoting pawn move with no promotion suffix, want error")
	}
}

func TestFormatLANPromotion(t *testing.T) {
	pos, err := board.PositionFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	mv := board.Move{From: board.SquareA7, To: board.SquareA8}
	if got, want := FormatLAN(&pos, mv, board.Queen), "a7a8q"; got != want {
		t.Errorf("FormatLAN() = %q, want %q", got, want)
	}
}
