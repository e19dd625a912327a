package mito

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestTranscribeVariantsHeavyStrand(t *testing.T) {
	locus := Locus{ID: 1, Name: "H", Start: 3307, End: 3330, Strand: StrandHeavy, Type: LocusCoding}

	in := map[Position]string{
		Pos(3307):    "A",
		Pos(3310):    "T",
		Ins(3309, 2): "AT",
		Pos(3312):    "--",
		Pos(100):     "C", // outside the locus
	}

	got, err := transcribeVariants(in, locus, zap.NewNop())
	if err != nil {
		t.Fatalf("transcribeVariants: %v", err)
	}

	want := map[Position]string{
		Pos(1):    "A",
		Pos(4):    "U",
		Ins(3, 2): "AU",
		Pos(6):    "--",
	}
	assertVariantMap(t, got, want)
}

func TestTranscribeVariantsLightStrand(t *testing.T) {
	locus := Locus{ID: 2, Name: "L", Start: 100, End: 200, Strand: StrandLight, Type: LocusCoding}

	tests := []struct {
		name string
		in   map[Position]string
		want map[Position]string
	}{
		{
			"substitution complemented and renumbered",
			map[Position]string{Pos(150): "A"},
			map[Position]string{Pos(51): "U"},
		},
		{
			"locus end maps to transcript start",
			map[Position]string{Pos(200): "G"},
			map[Position]string{Pos(1): "C"},
		},
		{
			"multi-base deletion shifts to its transcript start",
			map[Position]string{Pos(150): "---"},
			map[Position]string{Pos(49): "---"},
		},
		{
			"insertion reversed and anchored after flipped residue",
			map[Position]string{Ins(150, 1): "ACT"},
			map[Position]string{Ins(50, 1): "AGU"},
		},
		{
			"insertion after last locus base is dropped",
			map[Position]string{Ins(200, 1): "ACT"},
			map[Position]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transcribeVariants(tt.in, locus, zap.NewNop())
			if err != nil {
				t.Fatalf("transcribeVariants: %v", err)
			}
			assertVariantMap(t, got, tt.want)
		})
	}
}

func TestTranscribeVariantsBadStrand(t *testing.T) {
	locus := Locus{ID: 3, Name: "X", Start: 1, End: 10, Strand: Strand('X'), Type: LocusCoding}

	_, err := transcribeVariants(map[Position]string{Pos(5): "A"}, locus, zap.NewNop())
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T (%v), want *ConfigurationError", err, err)
	}
}

func TestComplementHelpers(t *testing.T) {
	if got := toRNA("ACTT-G"); got != "ACUU-G" {
		t.Errorf("toRNA = %q, want %q", got, "ACUU-G")
	}
	if got := complement("ACTG-"); got != "TGAC-" {
		t.Errorf("complement = %q, want %q", got, "TGAC-")
	}
	if got := reverseComplement("ACT"); got != "AGT" {
		t.Errorf("reverseComplement = %q, want %q", got, "AGT")
	}
}

func TestPolyadenylate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already aligned", "AUGUUC", "AUGUUC"},
		{"pad one", "AUGUU", "AUGUUA"},
		{"pad two", "AUGU", "AUGUAA"},
		{"gaps stripped before measuring", "AU-G-C", "AUGCAA"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := polyadenylate(tt.in); got != tt.want {
				t.Errorf("polyadenylate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDNATranscribe(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, map[Position]string{
		Pos(3310): "G",
		Pos(100):  "T", // outside the locus, dropped during mapping
	})
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	rna, err := dna.Transcribe(testLocusCoding)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if got := rna.Locus().ID; got != testLocusCoding {
		t.Errorf("Locus().ID = %d, want %d", got, testLocusCoding)
	}
	if got := len(rna.Variants()); got != 1 {
		t.Errorf("variant count = %d, want 1", got)
	}

	start, err := rna.Seq(1, 3)
	if err != nil {
		t.Fatalf("Seq(1, 3): %v", err)
	}
	if start != "AUG" {
		t.Errorf("Seq(1, 3) = %q, want %q", start, "AUG")
	}

	full, err := rna.Seq()
	if err != nil {
		t.Fatalf("Seq(): %v", err)
	}
	if want := "AUGGUCGCACGAUGGCUUGAAUAA"; full != want {
		t.Errorf("Seq() = %q, want %q", full, want)
	}
}

func TestDNATranscribeNoncoding(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, nil)
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	_, err = dna.Transcribe(testLocusNoncoding)
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %T (%v), want *DomainError", err, err)
	}
}

func TestDNATranscribeUnknownLocus(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, nil)
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	_, err = dna.Transcribe(999)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T (%v), want *ConfigurationError", err, err)
	}
}

func assertVariantMap(t *testing.T, got, want map[Position]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("variant count = %d, want %d (got %v)", len(got), len(want), got)
	}
	for p, tok := range want {
		if g, ok := got[p]; !ok || g != tok {
			t.Errorf("variant at %v = %q (present %v), want %q", p, g, ok, tok)
		}
	}
}
