package mito

import "fmt"

// DNA is a molecule over the circular genome reference. Whole-genome
// molecules permit queries that cross the origin: position 1 follows the
// last reference position.
type DNA struct {
	molecule
}

// NewDNA builds a DNA molecule spanning the full circular genome.
func NewDNA(rd ReferenceData, variants map[Position]string) (*DNA, error) {
	refLen := rd.ReferenceLength()
	return newDNA(rd, variants, 1, refLen)
}

// NewDNARange builds a DNA molecule over the window start..end. A window
// with start > end crosses the origin.
func NewDNARange(rd ReferenceData, variants map[Position]string, start, end int) (*DNA, error) {
	return newDNA(rd, variants, start, end)
}

func newDNA(rd ReferenceData, variants map[Position]string, start, end int) (*DNA, error) {
	refLen := rd.ReferenceLength()
	ref, err := rd.Reference(1, refLen)
	if err != nil {
		return nil, err
	}

	win := window{start: start, end: end, refLen: refLen, wrapping: true}
	m, err := newMolecule(KindDNA, rd, ref, win, variants)
	if err != nil {
		return nil, err
	}
	return &DNA{molecule: m}, nil
}

// Seq returns the variant-bearing sequence for the requested bounds:
// no bounds for the whole window, one for a single position, two for a
// range. Deleted residues appear as gap markers.
func (d *DNA) Seq(bounds ...int) (string, error) {
	return d.seq(d.variants, bounds...)
}

// Transcribe maps the molecule's variants into the transcript-local
// frame of the given locus and returns the resulting RNA molecule.
// Variants outside the locus are dropped. Transcribing a noncoding
// locus is a DomainError.
func (d *DNA) Transcribe(locusID int) (*RNA, error) {
	locus, err := d.rd.Locus(locusID)
	if err != nil {
		return nil, err
	}
	if locus.Type == LocusNoncoding {
		return nil, &DomainError{Op: "transcribe", Reason: fmt.Sprintf("locus %s (%d) is noncoding", locus.Name, locus.ID)}
	}

	mapped, err := transcribeVariants(d.variants, locus, d.logger)
	if err != nil {
		return nil, err
	}

	rna, err := NewRNA(d.rd, locusID, mapped)
	if err != nil {
		return nil, err
	}
	rna.SetLogger(d.logger)
	return rna, nil
}
