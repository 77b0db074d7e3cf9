package ocr

import (
	"errors"
	"testing"
)

func TestCleanTextStripsNoise(t *testing.T) {
	got := CleanText("mh15. gf-5187\n")
	if got != "MH15GF5187" {
		t.Fatalf("expected MH15GF5187 got %q", got)
	}
}

func TestMatchPlateValid(t *testing.T) {
	cases := []string{"MH15GF5187", "MH15.GF5187", "MH15 GF 5187", "xxMH15GF5187yy"}
	for _, in := range cases {
		got, err := MatchPlate(in, DefaultPlatePattern)
		if err != nil {
			t.Fatalf("MatchPlate(%q): %v", in, err)
		}
		if got != "MH15GF5187" {
			t.Fatalf("MatchPlate(%q) = %q, want MH15GF5187", in, got)
		}
	}
}

func TestMatchPlateShortDigitGroup(t *testing.T) {
	got, err := MatchPlate("DL8CAF5098", DefaultPlatePattern)
	if err != nil {
		t.Fatalf("MatchPlate: %v", err)
	}
	if got != "DL8CAF5098" {
		t.Fatalf("expected DL8CAF5098 got %q", got)
	}
}

func TestMatchPlateNoMatch(t *testing.T) {
	_, err := MatchPlate("ABCDEF", DefaultPlatePattern)
	if !errors.Is(err, ErrNoPlate) {
		t.Fatalf("expected ErrNoPlate got %v", err)
	}
}

func TestMatchPlateEmptyPatternPassthrough(t *testing.T) {
	got, err := MatchPlate("ab 12\ncd", "")
	if err != nil {
		t.Fatalf("MatchPlate: %v", err)
	}
	if got != "AB12CD" {
		t.Fatalf("expected AB12CD got %q", got)
	}
	if _, err := MatchPlate("...", ""); !errors.Is(err, ErrNoPlate) {
		t.Fatalf("expected ErrNoPlate for empty cleaned text, got %v", err)
	}
}

func TestMatchPlateBadPattern(t *testing.T) {
	if _, err := MatchPlate("MH15GF5187", "["); err == nil {
		t.Fatalf("expected compile error for bad pattern")
	}
}
