package mito

import "fmt"

// translateVariants walks a full transcript together with its variant
// map and emits codon-level amino-acid variants keyed by amino-acid
// position.
//
// The walk fills a codon buffer from three competing sources: pending
// inserted bases, the next variant, and the next reference base.
// Deletions occupy no codon slot and push the frame counter forward by
// their length; inserted bases pull it back one at a time as they are
// consumed. Each completed codon is recorded, carrying a signed frame
// annotation whenever the frame is shifted at that instant. Once the
// variant queue drains, any partial codon is completed from the
// reference and the walk stops: later codons match the reference
// translation and are not materialized.
func translateVariants(transcript string, variants map[Position]string) map[Position]string {
	out := make(map[Position]string)
	keys := sortedPositions(variants)
	if len(keys) == 0 {
		return out
	}

	refNext := 1   // next unconsumed transcript position
	varIdx := 0    // next unconsumed variant
	var pending []byte // inserted bases waiting to enter the codon buffer
	frame := 0
	aaPos := 1
	codon := make([]byte, 0, 3)

	emit := func() {
		tok := string(codon)
		if frame != 0 {
			tok = fmt.Sprintf("%s %+d", tok, frame)
		}
		out[Pos(aaPos)] = tok
		codon = codon[:0]
		aaPos++
	}

	for varIdx < len(keys) || len(pending) > 0 {
		switch {
		case len(pending) > 0:
			codon = append(codon, pending[0])
			pending = pending[1:]
			frame--

		case !Pos(refNext).Less(keys[varIdx]):
			k := keys[varIdx]
			tok := variants[k]
			varIdx++
			switch {
			case !k.IsInsertion() && isDeletion(tok):
				frame += len(tok)
				if next := k.Anchor + len(tok); next > refNext {
					refNext = next
				}
			case k.IsInsertion():
				frame--
				codon = append(codon, tok[0])
				pending = append(pending, tok[1:]...)
			default: // substitution
				codon = append(codon, tok[0])
				refNext = k.Anchor + 1
			}

		default:
			codon = append(codon, transcript[refNext-1])
			refNext++
		}

		if len(codon) == 3 {
			emit()
		}
	}

	// Complete the final partial codon from the reference.
	for len(codon) > 0 && len(codon) < 3 && refNext <= len(transcript) {
		codon = append(codon, transcript[refNext-1])
		refNext++
	}
	if len(codon) == 3 {
		emit()
	}

	return out
}
