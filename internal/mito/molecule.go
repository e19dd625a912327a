package mito

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Kind identifies the molecular layer a sequence lives on. The kind is
// fixed at construction and selects the reference-lookup strategy, the
// wrapping default, and the variant-token shape.
type Kind int

const (
	KindDNA Kind = iota
	KindRNA
	KindAA
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "DNA"
	case KindRNA:
		return "RNA"
	case KindAA:
		return "AA"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// molecule is the state shared by the three sequence kinds: an immutable
// window over a reference string plus a sparse variant map. All queries
// are pure functions of this state; the only derived value, the
// effective window length, is memoized on first use.
type molecule struct {
	kind     Kind
	rd       ReferenceData
	refSeq   string // full reference extent for this layer
	win      window
	variants map[Position]string
	logger   *zap.Logger

	// Pointer so the containing kind structs stay freely copyable.
	lenOnce *sync.Once
	length  *int
}

func newMolecule(kind Kind, rd ReferenceData, refSeq string, win window, variants map[Position]string) (molecule, error) {
	if err := validateWindow(win, kind); err != nil {
		return molecule{}, err
	}

	// Copy the variant map so later caller mutations cannot reach the
	// molecule.
	owned := make(map[Position]string, len(variants))
	for p, tok := range variants {
		if err := validateVariant(kind, win, p, tok); err != nil {
			return molecule{}, err
		}
		owned[p] = tok
	}

	return molecule{
		kind:     kind,
		rd:       rd,
		refSeq:   refSeq,
		win:      win,
		variants: owned,
		logger:   zap.NewNop(),
		lenOnce:  new(sync.Once),
		length:   new(int),
	}, nil
}

func validateWindow(w window, kind Kind) error {
	for _, i := range [2]int{w.start, w.end} {
		if i < 1 {
			return &ValidationError{Msg: fmt.Sprintf("window bound %d is not positive", i)}
		}
		if i > w.refLen {
			return &BoundsError{Pos: Pos(i), Start: 1, End: w.refLen, Reason: "outside reference"}
		}
	}
	if w.start > w.end && !w.wrapping {
		return &ValidationError{Msg: fmt.Sprintf("window [%d, %d] wraps but %s molecules are not circular", w.start, w.end, kind)}
	}
	return nil
}

// validateVariant checks a single variant entry: positive coordinates,
// a key inside [start, end+1) so insertions may anchor at the right
// boundary, and a token shaped for the molecule kind.
func validateVariant(kind Kind, w window, p Position, token string) error {
	if p.Anchor < 1 || p.Insert < 0 {
		return &ValidationError{Msg: fmt.Sprintf("variant position %s is not positive", p)}
	}
	if token == "" {
		return &ValidationError{Msg: fmt.Sprintf("variant at %s has an empty token", p)}
	}
	if !w.contains(p.Anchor) {
		return boundsErr(p, w, "outside window")
	}

	if p.IsInsertion() {
		if isDeletion(token) || containsGap(token) {
			return &ValidationError{Msg: fmt.Sprintf("insertion at %s contains gap markers: %q", p, token)}
		}
		return nil
	}

	if isDeletion(token) {
		return nil
	}

	switch kind {
	case KindAA:
		// Substituted codon, optionally carrying a frame annotation.
		if _, _, err := parseAAToken(token); err != nil {
			return err
		}
	default:
		if len(token) != 1 {
			return &ValidationError{Msg: fmt.Sprintf("substitution at %s must be a single residue, got %q", p, token)}
		}
	}
	return nil
}

func containsGap(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] == GapMarker {
			return true
		}
	}
	return false
}

// SetLogger replaces the molecule's logger. The default is a no-op
// logger; the logger is not part of the molecule's sequence state.
func (m *molecule) SetLogger(l *zap.Logger) {
	if l != nil {
		m.logger = l
	}
}

// Kind returns the molecular layer of the sequence.
func (m *molecule) Kind() Kind { return m.kind }

// Start returns the window start coordinate.
func (m *molecule) Start() int { return m.win.start }

// End returns the window end coordinate.
func (m *molecule) End() int { return m.win.end }

// Wrapping reports whether queries may cross the origin.
func (m *molecule) Wrapping() bool { return m.win.wrapping }

// Variants returns a copy of the variant map.
func (m *molecule) Variants() map[Position]string {
	out := make(map[Position]string, len(m.variants))
	for p, tok := range m.variants {
		out[p] = tok
	}
	return out
}

// Len returns the effective window length: the reference span minus
// deleted residues plus inserted ones. Memoized; never stored at
// construction.
func (m *molecule) Len() int {
	m.lenOnce.Do(func() {
		n := m.win.span()
		for p, tok := range m.variants {
			switch {
			case p.IsInsertion():
				n += len(tok)
			case isDeletion(tok):
				n -= len(tok)
			}
		}
		*m.length = n
	})
	return *m.length
}

// RefSeq returns the reference residues for the requested bounds with no
// variants applied. Bounds follow the normalization rules of Seq.
func (m *molecule) RefSeq(bounds ...int) (string, error) {
	start, end, err := m.resolve(bounds)
	if err != nil {
		return "", err
	}
	return subSeq(m.refSeq, start, end), nil
}

// seq assembles the variant overlay for the requested bounds. The
// concrete kinds wrap it to apply their token semantics.
func (m *molecule) seq(variants map[Position]string, bounds ...int) (string, error) {
	start, end, err := m.resolve(bounds)
	if err != nil {
		return "", err
	}
	return assemble(m.refSeq, variants, start, end), nil
}

func (m *molecule) resolve(bounds []int) (int, int, error) {
	start, end, err := m.win.normalizeBounds(bounds...)
	if err != nil {
		return 0, 0, err
	}
	if err := m.win.validate(start, end); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
