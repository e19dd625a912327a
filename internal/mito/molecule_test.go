package mito

import (
	"errors"
	"fmt"
	"testing"
)

// testRefData is an in-package stand-in for the providers in
// internal/refdata. The genome is a synthetic 16569-base circle with a
// known window at 100..105 and a protein-coding locus at 3307..3330.
type testRefData struct {
	reference    string
	loci         map[int]Locus
	codons       map[string]string
	transcripts  map[int]string
	translations map[int]string
}

const (
	testLocusCoding    = 16
	testLocusTRNA      = 30
	testLocusNoncoding = 40
	testLocusBadStrand = 50
)

func newTestRefData() *testRefData {
	b := make([]byte, 16569)
	const pattern = "ACGT"
	for i := range b {
		b[i] = pattern[i%4]
	}
	copy(b[99:105], "GGAGCC")
	copy(b[3306:3330], "ATGTTCGCACGATGGCTTGAATAA")

	return &testRefData{
		reference: string(b),
		loci: map[int]Locus{
			testLocusCoding:    {ID: testLocusCoding, Name: "MT-ND1", Start: 3307, End: 3330, Strand: StrandHeavy, Type: LocusCoding},
			testLocusTRNA:      {ID: testLocusTRNA, Name: "MT-TF", Start: 577, End: 647, Strand: StrandHeavy, Type: LocusTRNA},
			testLocusNoncoding: {ID: testLocusNoncoding, Name: "MT-CR", Start: 16024, End: 576, Strand: StrandHeavy, Type: LocusNoncoding},
			testLocusBadStrand: {ID: testLocusBadStrand, Name: "MT-BAD", Start: 3307, End: 3330, Strand: Strand('X'), Type: LocusCoding},
		},
		codons: map[string]string{
			"AUG": "M", "AUU": "I", "UUC": "F", "UUG": "L",
			"GCA": "A", "CGA": "R", "UGG": "W", "CUU": "L",
			"GAA": "E", "GUC": "V", "UCG": "S", "ACA": "T",
			"CCU": "P", "UAA": TermResidue,
		},
		transcripts: map[int]string{
			testLocusCoding:    "AUGUUCGCACGAUGGCUUGAAUAA",
			testLocusTRNA:      "GUUUAUGUAGCUUACCUCCUCAAAGCAAUACACUGAAAAUGUUUAGACGGGCUCACAUCACCCCAUAAACA",
			testLocusBadStrand: "AUGUUCGCACGAUGGCUUGAAUAA",
		},
		translations: map[int]string{
			testLocusCoding:    "MFARWLE",
			testLocusBadStrand: "MFARWLE",
		},
	}
}

func (t *testRefData) Reference(start, end int) (string, error) {
	if start <= end {
		return t.reference[start-1 : end], nil
	}
	return t.reference[start-1:] + t.reference[:end], nil
}

func (t *testRefData) ReferenceLength() int { return len(t.reference) }

func (t *testRefData) Locus(id int) (Locus, error) {
	locus, ok := t.loci[id]
	if !ok {
		return Locus{}, &ConfigurationError{Msg: fmt.Sprintf("unknown locus %d", id)}
	}
	return locus, nil
}

func (t *testRefData) Codon(codon string) (string, error) {
	res, ok := t.codons[codon]
	if !ok {
		return "", &ConfigurationError{Msg: fmt.Sprintf("unknown codon %q", codon)}
	}
	return res, nil
}

func (t *testRefData) Transcript(locusID int) (string, error) {
	s, ok := t.transcripts[locusID]
	if !ok {
		return "", &ConfigurationError{Msg: fmt.Sprintf("no transcript for locus %d", locusID)}
	}
	return s, nil
}

func (t *testRefData) Translation(locusID int) (string, error) {
	s, ok := t.translations[locusID]
	if !ok {
		return "", &ConfigurationError{Msg: fmt.Sprintf("no translation for locus %d", locusID)}
	}
	return s, nil
}

func TestDNASeqMatchesReferenceWithoutVariants(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, nil)
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	windows := [][2]int{{1, 16569}, {100, 105}, {1, 1}, {16569, 16569}, {16567, 6}}
	for _, w := range windows {
		seq, err := dna.Seq(w[0], w[1])
		if err != nil {
			t.Fatalf("Seq(%d, %d): %v", w[0], w[1], err)
		}
		ref, err := dna.RefSeq(w[0], w[1])
		if err != nil {
			t.Fatalf("RefSeq(%d, %d): %v", w[0], w[1], err)
		}
		if seq != ref {
			t.Errorf("Seq(%d, %d) = %q, want reference %q", w[0], w[1], seq, ref)
		}
	}
}

func TestDNASeqReferenceWindow(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, nil)
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	seq, err := dna.Seq(100, 105)
	if err != nil {
		t.Fatalf("Seq(100, 105): %v", err)
	}
	if seq != "GGAGCC" {
		t.Errorf("Seq(100, 105) = %q, want %q", seq, "GGAGCC")
	}
}

func TestDNASubstitutionRoundTrip(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, map[Position]string{Pos(3460): "A"})
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	got, err := dna.Seq(3460)
	if err != nil {
		t.Fatalf("Seq(3460): %v", err)
	}
	if got != "A" {
		t.Errorf("Seq(3460) = %q, want %q", got, "A")
	}
}

func TestDNAWrappingLength(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, nil)
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	seq, err := dna.Seq(16567, 6)
	if err != nil {
		t.Fatalf("Seq(16567, 6): %v", err)
	}
	if len(seq) != 3+6 {
		t.Errorf("len(Seq(16567, 6)) = %d, want 9", len(seq))
	}
}

func TestMoleculeLen(t *testing.T) {
	rd := newTestRefData()

	tests := []struct {
		name     string
		variants map[Position]string
		want     int
	}{
		{"no variants", nil, 16569},
		{"substitution neutral", map[Position]string{Pos(5): "A"}, 16569},
		{"deletion shrinks", map[Position]string{Pos(5): "---"}, 16566},
		{"insertion grows", map[Position]string{Ins(5, 1): "AACC"}, 16573},
		{"balanced", map[Position]string{Pos(5): "--", Ins(9, 1): "GG"}, 16569},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dna, err := NewDNA(rd, tt.variants)
			if err != nil {
				t.Fatalf("NewDNA: %v", err)
			}
			if got := dna.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
			// Memoized value stays stable.
			if got := dna.Len(); got != tt.want {
				t.Errorf("second Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMoleculeConstructionErrors(t *testing.T) {
	rd := newTestRefData()

	tests := []struct {
		name       string
		variants   map[Position]string
		wantBounds bool
	}{
		{"empty token", map[Position]string{Pos(5): ""}, false},
		{"multi-char substitution", map[Position]string{Pos(5): "AC"}, false},
		{"insertion with gap", map[Position]string{Ins(5, 1): "A-C"}, false},
		{"gap-only insertion", map[Position]string{Ins(5, 1): "--"}, false},
		{"key past reference", map[Position]string{Pos(16570): "A"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDNA(rd, tt.variants)
			if err == nil {
				t.Fatal("NewDNA: want error")
			}
			if tt.wantBounds {
				var berr *BoundsError
				if !errors.As(err, &berr) {
					t.Errorf("error = %T (%v), want *BoundsError", err, err)
				}
			} else {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error = %T (%v), want *ValidationError", err, err)
				}
			}
		})
	}
}

func TestDNARangeRejectsOutsideKeys(t *testing.T) {
	rd := newTestRefData()

	_, err := NewDNARange(rd, map[Position]string{Pos(50): "A"}, 100, 200)
	var berr *BoundsError
	if !errors.As(err, &berr) {
		t.Fatalf("error = %T (%v), want *BoundsError", err, err)
	}
	if berr.Pos != Pos(50) {
		t.Errorf("offending position = %v, want 50", berr.Pos)
	}
}

func TestVariantsReturnsCopy(t *testing.T) {
	rd := newTestRefData()
	dna, err := NewDNA(rd, map[Position]string{Pos(5): "A"})
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	vars := dna.Variants()
	vars[Pos(9)] = "C"

	if len(dna.Variants()) != 1 {
		t.Error("mutating the returned map reached the molecule")
	}
}

func TestMoleculeImmutableToCallerMap(t *testing.T) {
	rd := newTestRefData()
	input := map[Position]string{Pos(3460): "A"}
	dna, err := NewDNA(rd, input)
	if err != nil {
		t.Fatalf("NewDNA: %v", err)
	}

	input[Pos(100)] = "T"

	seq, err := dna.Seq(100)
	if err != nil {
		t.Fatalf("Seq(100): %v", err)
	}
	if seq != "G" {
		t.Errorf("Seq(100) = %q after caller mutation, want reference %q", seq, "G")
	}
}
