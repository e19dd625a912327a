// Package mito implements the variant-overlay engine for the circular
// human mitochondrial genome: position algebra with wrap-around
// coordinates, sparse variant assembly over a reference, strand-aware
// transcription, and frame-tracking codon translation.
//
// The package is pure computation. Reference tables (genome string,
// locus table, codon table, transcripts, translations) are supplied
// through the ReferenceData interface; see internal/refdata for the
// concrete providers.
package mito

import (
	"fmt"
	"strconv"
	"strings"
)

// Position addresses a residue on a reference molecule. Anchor is the
// 1-based reference coordinate. Insert is zero for a residue that exists
// in the reference; a value greater than zero marks a residue inserted
// immediately after Anchor, with no reference counterpart. Multiple
// insertions at the same anchor are ordered by their Insert numbers.
//
// The textual form follows the traditional fractional encoding used by
// variant lists: "3107" addresses reference position 3107, "3107.01"
// the first residue inserted after it.
type Position struct {
	Anchor int
	Insert int
}

// Pos returns the Position of reference residue anchor.
func Pos(anchor int) Position { return Position{Anchor: anchor} }

// Ins returns the Position of the n-th residue inserted after anchor.
func Ins(anchor, n int) Position { return Position{Anchor: anchor, Insert: n} }

// IsInsertion reports whether p addresses an inserted residue.
func (p Position) IsInsertion() bool { return p.Insert > 0 }

// Less orders positions ascending, insertions after their anchor residue.
func (p Position) Less(q Position) bool {
	if p.Anchor != q.Anchor {
		return p.Anchor < q.Anchor
	}
	return p.Insert < q.Insert
}

func (p Position) String() string {
	if p.Insert == 0 {
		return strconv.Itoa(p.Anchor)
	}
	return fmt.Sprintf("%d.%02d", p.Anchor, p.Insert)
}

// ParsePosition parses the textual position form: a bare integer for a
// reference residue, or anchor.NN for the NN-th insertion after anchor.
func ParsePosition(s string) (Position, error) {
	anchorStr, insertStr, hasInsert := strings.Cut(s, ".")

	anchor, err := strconv.Atoi(anchorStr)
	if err != nil {
		return Position{}, &ValidationError{Msg: fmt.Sprintf("malformed position %q", s)}
	}
	if anchor < 1 {
		return Position{}, &ValidationError{Msg: fmt.Sprintf("position %q is not positive", s)}
	}

	if !hasInsert {
		return Position{Anchor: anchor}, nil
	}

	insert, err := strconv.Atoi(insertStr)
	if err != nil || insert < 1 {
		return Position{}, &ValidationError{Msg: fmt.Sprintf("malformed insertion position %q", s)}
	}
	return Position{Anchor: anchor, Insert: insert}, nil
}

// window bounds the addressable coordinates of a molecule. A window with
// start > end crosses the origin: position 1 follows refLen. wrapping
// marks molecules (the whole genome) whose queries may themselves cross
// the origin regardless of index order.
type window struct {
	start, end int
	refLen     int
	wrapping   bool
}

// span is the number of reference residues the window covers.
func (w window) span() int {
	if w.start <= w.end {
		return w.end - w.start + 1
	}
	return w.refLen - w.start + 1 + w.end
}

// contains reports whether reference coordinate i lies inside the
// window, honoring origin crossing.
func (w window) contains(i int) bool {
	if w.start <= w.end {
		return i >= w.start && i <= w.end
	}
	return (i >= w.start && i <= w.refLen) || (i >= 1 && i <= w.end)
}

// normalizeBounds resolves an optional bounds pair against the window:
// no bounds selects the full window, a single bound selects one
// position, two bounds are taken as given.
func (w window) normalizeBounds(bounds ...int) (int, int, error) {
	switch len(bounds) {
	case 0:
		return w.start, w.end, nil
	case 1:
		return bounds[0], bounds[0], nil
	case 2:
		return bounds[0], bounds[1], nil
	}
	return 0, 0, &ValidationError{Msg: fmt.Sprintf("expected at most 2 bounds, got %d", len(bounds))}
}

// validate checks a start/end pair against the window. Wrapping-capable
// molecules accept any pair whose endpoints individually lie inside the
// window; otherwise a non-wrapping window requires an ordered in-range
// pair, and a window crossing the origin rejects indices in the
// excluded gap between its end and start.
func (w window) validate(start, end int) error {
	for _, i := range [2]int{start, end} {
		if i < 1 {
			return &ValidationError{Msg: fmt.Sprintf("position %d is not positive", i)}
		}
	}

	if w.wrapping {
		for _, i := range [2]int{start, end} {
			if !w.contains(i) {
				return boundsErr(Pos(i), w, "outside window")
			}
		}
		return nil
	}

	if w.start <= w.end {
		if !w.contains(start) {
			return boundsErr(Pos(start), w, "outside window")
		}
		if !w.contains(end) {
			return boundsErr(Pos(end), w, "outside window")
		}
		if start > end {
			return boundsErr(Pos(start), w, fmt.Sprintf("after range end %d", end))
		}
		return nil
	}

	// Window crosses the origin: every index strictly between w.end and
	// w.start is unaddressable.
	for _, i := range [2]int{start, end} {
		if i > w.end && i < w.start {
			return boundsErr(Pos(i), w, "inside excluded wrap gap")
		}
		if i > w.refLen {
			return boundsErr(Pos(i), w, "outside window")
		}
	}
	return nil
}
