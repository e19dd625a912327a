package mito

import "fmt"

// RNA is a molecule over the canonical transcript of a locus, addressed
// in 1-based transcript-local coordinates. Transcripts are linear;
// queries never wrap.
type RNA struct {
	molecule
	locus Locus
	full  bool // spans the entire polyadenylated transcript
}

// NewRNA builds an RNA molecule spanning the full transcript of a
// locus. The reference transcript is polyadenylated: gap placeholders
// are stripped and the tail is normalized to a codon-aligned length.
func NewRNA(rd ReferenceData, locusID int, variants map[Position]string) (*RNA, error) {
	locus, transcript, err := lookupTranscript(rd, locusID)
	if err != nil {
		return nil, err
	}

	ref := polyadenylate(transcript)
	win := window{start: 1, end: len(ref), refLen: len(ref)}
	m, err := newMolecule(KindRNA, rd, ref, win, variants)
	if err != nil {
		return nil, err
	}
	return &RNA{molecule: m, locus: locus, full: true}, nil
}

// NewRNARange builds an RNA molecule over a partial transcript window.
// The raw transcript is used as-is; polyadenylation applies only to
// full-transcript molecules. Partial molecules cannot be translated.
func NewRNARange(rd ReferenceData, locusID int, variants map[Position]string, start, end int) (*RNA, error) {
	locus, transcript, err := lookupTranscript(rd, locusID)
	if err != nil {
		return nil, err
	}

	win := window{start: start, end: end, refLen: len(transcript)}
	m, err := newMolecule(KindRNA, rd, transcript, win, variants)
	if err != nil {
		return nil, err
	}
	return &RNA{molecule: m, locus: locus}, nil
}

func lookupTranscript(rd ReferenceData, locusID int) (Locus, string, error) {
	locus, err := rd.Locus(locusID)
	if err != nil {
		return Locus{}, "", err
	}
	if locus.Type == LocusNoncoding {
		return Locus{}, "", &DomainError{Op: "transcript", Reason: fmt.Sprintf("locus %s (%d) is noncoding", locus.Name, locus.ID)}
	}
	transcript, err := rd.Transcript(locusID)
	if err != nil {
		return Locus{}, "", err
	}
	return locus, transcript, nil
}

// Locus returns the locus the transcript belongs to.
func (r *RNA) Locus() Locus { return r.locus }

// Seq returns the variant-bearing transcript for the requested bounds.
func (r *RNA) Seq(bounds ...int) (string, error) {
	return r.seq(r.variants, bounds...)
}

// Translate walks the transcript and its variants and returns the
// resulting amino-acid molecule, with codon-level variants carrying
// frame annotations. Valid only on a full-transcript molecule of a
// protein-coding locus; anything else is a DomainError, raised before
// the walk begins.
func (r *RNA) Translate() (*AA, error) {
	if !r.locus.IsCoding() {
		return nil, &DomainError{Op: "translate", Reason: fmt.Sprintf("locus %s (%d) is not protein-coding", r.locus.Name, r.locus.ID)}
	}
	if !r.full {
		return nil, &DomainError{Op: "translate", Reason: fmt.Sprintf("window [%d, %d] does not span the full transcript", r.win.start, r.win.end)}
	}

	aaVariants := translateVariants(r.refSeq, r.variants)

	aa, err := NewAA(r.rd, r.locus.ID, aaVariants)
	if err != nil {
		return nil, err
	}
	aa.SetLogger(r.logger)
	return aa, nil
}
