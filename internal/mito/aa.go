package mito

import (
	"fmt"
	"strconv"
	"strings"
)

// AA is a molecule over the canonical translation of a protein-coding
// locus, addressed by 1-based amino-acid position. Its variant tokens
// are codons, optionally carrying a signed frame-shift annotation
// ("AUG +1") recorded at the instant the codon was completed.
type AA struct {
	molecule
	locus Locus
}

// NewAA builds an amino-acid molecule spanning the full translation of
// a protein-coding locus.
func NewAA(rd ReferenceData, locusID int, variants map[Position]string) (*AA, error) {
	locus, err := rd.Locus(locusID)
	if err != nil {
		return nil, err
	}
	if !locus.IsCoding() {
		return nil, &DomainError{Op: "translation", Reason: fmt.Sprintf("locus %s (%d) is not protein-coding", locus.Name, locus.ID)}
	}

	translation, err := rd.Translation(locusID)
	if err != nil {
		return nil, err
	}

	win := window{start: 1, end: len(translation), refLen: len(translation)}
	m, err := newMolecule(KindAA, rd, translation, win, variants)
	if err != nil {
		return nil, err
	}
	return &AA{molecule: m, locus: locus}, nil
}

// Locus returns the locus the translation belongs to.
func (a *AA) Locus() Locus { return a.locus }

// Seq returns the variant-bearing residue string for the requested
// bounds. Each codon token is resolved through the codon table; stop
// codons render as TermSymbol.
func (a *AA) Seq(bounds ...int) (string, error) {
	residues := make(map[Position]string, len(a.variants))
	for p, tok := range a.variants {
		if !p.IsInsertion() && isDeletion(tok) {
			residues[p] = tok
			continue
		}
		res, _, err := a.resolveToken(tok)
		if err != nil {
			return "", err
		}
		residues[p] = res
	}
	return a.seq(residues, bounds...)
}

// VariantOptions control how Variants renders codon-level entries.
type VariantOptions struct {
	ShowCodons bool // report the raw codon instead of the residue
	ShowFrames bool // append the frame annotation when non-zero
}

// Variants renders the molecule's variant map keyed by amino-acid
// position. With neither option set each entry is the substituted
// residue; ShowCodons reports the codon itself, ShowFrames appends the
// signed frame shift for out-of-frame codons.
func (a *AA) Variants(opts VariantOptions) (map[int]string, error) {
	out := make(map[int]string, len(a.variants))
	for p, tok := range a.variants {
		if !p.IsInsertion() && isDeletion(tok) {
			out[p.Anchor] = tok
			continue
		}

		codon, frame, err := parseAAToken(tok)
		if err != nil {
			return nil, err
		}

		val := codon
		if !opts.ShowCodons {
			res, err := a.rd.Codon(codon)
			if err != nil {
				return nil, err
			}
			val = res
		}
		if opts.ShowFrames && frame != 0 {
			val = fmt.Sprintf("%s %+d", val, frame)
		}
		out[p.Anchor] = val
	}
	return out, nil
}

// resolveToken turns a codon token into its single-character residue.
func (a *AA) resolveToken(tok string) (string, int, error) {
	codon, frame, err := parseAAToken(tok)
	if err != nil {
		return "", 0, err
	}
	res, err := a.rd.Codon(codon)
	if err != nil {
		return "", 0, err
	}
	if res == TermResidue {
		res = string(TermSymbol)
	}
	return res, frame, nil
}

// parseAAToken splits an amino-acid variant token into its codon and
// frame annotation: "AUG +1" yields ("AUG", 1). A token without an
// annotation is in frame.
func parseAAToken(tok string) (codon string, frame int, err error) {
	codon = tok
	if i := strings.IndexByte(tok, ' '); i >= 0 {
		codon = tok[:i]
		frame, err = strconv.Atoi(strings.TrimSpace(tok[i+1:]))
		if err != nil {
			return "", 0, &ValidationError{Msg: fmt.Sprintf("malformed frame annotation in token %q", tok)}
		}
	}
	if codon == "" {
		return "", 0, &ValidationError{Msg: fmt.Sprintf("malformed amino-acid token %q", tok)}
	}
	return codon, frame, nil
}
