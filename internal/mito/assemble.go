package mito

import (
	"sort"
	"strings"
)

// GapMarker is the placeholder emitted in place of each deleted
// reference residue. Assembled sequences may contain runs of it; callers
// needing a gapless string strip it explicitly.
const GapMarker = '-'

// isDeletion reports whether a variant token is a run of gap markers.
func isDeletion(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] != GapMarker {
			return false
		}
	}
	return true
}

// sortedPositions returns the variant keys in ascending order,
// insertions after their anchor residue.
func sortedPositions(variants map[Position]string) []Position {
	keys := make([]Position, 0, len(variants))
	for p := range variants {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// assemble overlays a sparse variant map onto the full reference string
// ref (1-based) and extracts the requested window.
//
// The walk copies reference residues up to each variant, emits the
// token, and skips the residues the token replaces. Deletions are
// emitted as literal gap runs of the same length, so every position
// after them keeps its alignment; insertions grow the buffer, so the
// trim boundaries shift right by the length of every insertion anchored
// before them. Variant positions are validated at molecule
// construction, not here.
func assemble(ref string, variants map[Position]string, start, end int) string {
	if len(variants) == 0 {
		return subSeq(ref, start, end)
	}

	keys := sortedPositions(variants)

	var buf strings.Builder
	buf.Grow(len(ref) + 16)

	i := 1 // next reference position to copy
	for _, k := range keys {
		token := variants[k]

		// Copy reference through the residue the token attaches to:
		// substitutions and deletions replace their anchor residue,
		// insertions follow it.
		copyEnd := k.Anchor - 1
		if k.IsInsertion() {
			copyEnd = k.Anchor
		}
		if i <= copyEnd {
			buf.WriteString(ref[i-1 : copyEnd])
			i = copyEnd + 1
		}

		buf.WriteString(token)

		next := k.Anchor + 1
		if !k.IsInsertion() && isDeletion(token) {
			next = k.Anchor + len(token)
		}
		if next > i {
			i = next
		}
	}
	if i <= len(ref) {
		buf.WriteString(ref[i-1:])
	}

	// The assembled buffer grew by every insertion emitted before a trim
	// boundary; shift the boundaries to compensate.
	trimStart, trimEnd := start, end
	for _, k := range keys {
		if !k.IsInsertion() {
			continue
		}
		n := len(variants[k])
		if k.Anchor < start {
			trimStart += n
		}
		if k.Anchor < end {
			trimEnd += n
		}
	}

	return subSeq(buf.String(), trimStart, trimEnd)
}

// StripGaps removes every gap marker from s. Assembled sequences keep
// deletion placeholders for positional alignment; callers wanting the
// physical sequence strip them explicitly.
func StripGaps(s string) string {
	if !strings.ContainsRune(s, GapMarker) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == GapMarker {
			return -1
		}
		return r
	}, s)
}
