package refdata

import (
	"fmt"

	"github.com/mitomaster/mitoseq/internal/mito"
)

// Memory is an immutable in-memory reference data set. It implements
// mito.ReferenceData and is safe to share read-only across goroutines.
type Memory struct {
	name         string
	reference    string
	loci         map[int]mito.Locus
	codons       map[string]string
	transcripts  map[int]string
	translations map[int]string
}

// NewMemory builds a provider directly from in-process tables. The
// codon map may be nil, selecting the vertebrate mitochondrial code.
// The maps are copied; callers keep ownership of their arguments.
func NewMemory(reference string, loci map[int]mito.Locus, codons map[string]string, transcripts, translations map[int]string) *Memory {
	if len(codons) == 0 {
		codons = VertebrateMitochondrialCode()
	} else {
		owned := make(map[string]string, len(codons))
		for k, v := range codons {
			owned[k] = v
		}
		codons = owned
	}

	ownedLoci := make(map[int]mito.Locus, len(loci))
	for id, l := range loci {
		ownedLoci[id] = l
	}

	return &Memory{
		reference:    reference,
		loci:         ownedLoci,
		codons:       codons,
		transcripts:  copyIntMap(transcripts),
		translations: copyIntMap(translations),
	}
}

// Name returns the data set name, if the bundle carried one.
func (m *Memory) Name() string { return m.name }

// Reference returns reference residues start..end, 1-based inclusive.
// A start greater than end wraps through the origin.
func (m *Memory) Reference(start, end int) (string, error) {
	n := len(m.reference)
	for _, i := range [2]int{start, end} {
		if i < 1 {
			return "", &mito.ValidationError{Msg: fmt.Sprintf("reference position %d is not positive", i)}
		}
		if i > n {
			return "", &mito.BoundsError{Pos: mito.Pos(i), Start: 1, End: n, Reason: "outside reference"}
		}
	}
	if start <= end {
		return m.reference[start-1 : end], nil
	}
	return m.reference[start-1:] + m.reference[:end], nil
}

// ReferenceLength returns the full extent of the reference.
func (m *Memory) ReferenceLength() int { return len(m.reference) }

// Locus returns the locus record for id.
func (m *Memory) Locus(id int) (mito.Locus, error) {
	locus, ok := m.loci[id]
	if !ok {
		return mito.Locus{}, &mito.ConfigurationError{Msg: fmt.Sprintf("unknown locus %d", id)}
	}
	return locus, nil
}

// Codon maps an RNA codon to its residue, or mito.TermResidue for a
// stop codon.
func (m *Memory) Codon(codon string) (string, error) {
	res, ok := m.codons[codon]
	if !ok {
		return "", &mito.ConfigurationError{Msg: fmt.Sprintf("unknown codon %q", codon)}
	}
	return res, nil
}

// Transcript returns the canonical transcript of a locus.
func (m *Memory) Transcript(locusID int) (string, error) {
	t, ok := m.transcripts[locusID]
	if !ok {
		return "", &mito.ConfigurationError{Msg: fmt.Sprintf("no transcript for locus %d", locusID)}
	}
	return t, nil
}

// Translation returns the canonical translation of a coding locus.
func (m *Memory) Translation(locusID int) (string, error) {
	t, ok := m.translations[locusID]
	if !ok {
		return "", &mito.ConfigurationError{Msg: fmt.Sprintf("no translation for locus %d", locusID)}
	}
	return t, nil
}

// LocusCount returns the number of loci in the data set.
func (m *Memory) LocusCount() int { return len(m.loci) }
