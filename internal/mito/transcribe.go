package mito

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// transcribeVariants maps genome-coordinate variants into the 1-based
// transcript-local frame of a locus. Variants outside the locus are
// dropped. Heavy-strand loci keep the reference orientation; light-
// strand loci read against it, so tokens are complemented, inserted
// sequences reversed, and coordinates renumbered from the locus end.
func transcribeVariants(variants map[Position]string, locus Locus, logger *zap.Logger) (map[Position]string, error) {
	switch locus.Strand {
	case StrandHeavy, StrandLight:
	default:
		return nil, &ConfigurationError{Msg: fmt.Sprintf("locus %s (%d): invalid strand %q", locus.Name, locus.ID, string(locus.Strand))}
	}

	out := make(map[Position]string, len(variants))
	for p, tok := range variants {
		if p.Anchor < locus.Start || p.Anchor > locus.End {
			logger.Debug("variant outside locus, dropped",
				zap.Stringer("position", p),
				zap.String("locus", locus.Name))
			continue
		}

		if locus.Strand == StrandHeavy {
			np := Position{Anchor: p.Anchor - locus.Start + 1, Insert: p.Insert}
			out[np] = toRNA(tok)
			continue
		}

		// Light strand.
		if p.IsInsertion() {
			// The reading direction flips: an insertion after reference
			// residue p lands after transcript residue end-p, with its
			// characters reversed. An insertion after the locus's last
			// base would land before transcript position 1, outside the
			// transcript; it is dropped like any out-of-locus variant.
			anchor := locus.End - p.Anchor
			if anchor < 1 {
				logger.Debug("variant outside locus, dropped",
					zap.Stringer("position", p),
					zap.String("locus", locus.Name))
				continue
			}
			out[Position{Anchor: anchor, Insert: p.Insert}] = toRNA(reverseComplement(tok))
			continue
		}

		anchor := locus.End - p.Anchor + 1
		if isDeletion(tok) && len(tok) > 1 {
			// A multi-base deletion anchors at its lowest reference
			// coordinate, which is the highest transcript coordinate on
			// this strand; shift left so the gap run starts where the
			// deleted residues start.
			anchor -= len(tok) - 1
		}
		out[Position{Anchor: anchor}] = toRNA(complement(tok))
	}
	return out, nil
}

// toRNA rewrites a DNA token into the RNA alphabet.
func toRNA(tok string) string {
	return strings.ReplaceAll(tok, "T", "U")
}

// complement returns the base-wise DNA complement; gap markers and
// unknown symbols pass through unchanged.
func complement(tok string) string {
	b := []byte(tok)
	for i := range b {
		b[i] = complementBase(b[i])
	}
	return string(b)
}

// reverseComplement complements the token and reverses its order.
func reverseComplement(tok string) string {
	b := []byte(tok)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	for i := range b {
		b[i] = complementBase(b[i])
	}
	return string(b)
}

func complementBase(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	}
	return base
}

// polyadenylate normalizes a raw transcript to a codon-aligned length.
// Gap placeholders are not material and are stripped before measuring;
// the tail is then padded with 'A' or truncated to the target length,
// the stripped length rounded up to the next multiple of three.
func polyadenylate(raw string) string {
	s := StripGaps(raw)
	target := ((len(s) + 2) / 3) * 3
	switch {
	case len(s) < target:
		return s + strings.Repeat("A", target-len(s))
	case len(s) > target:
		return s[:target]
	}
	return s
}
