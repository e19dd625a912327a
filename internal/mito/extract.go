package mito

// subSeq returns the 1-based inclusive slice s[start..end]. When
// start > end the extraction wraps: the tail from start is concatenated
// with the head through end. Callers must have validated the indices
// against the molecule's window first.
func subSeq(s string, start, end int) string {
	if start <= end {
		return s[start-1 : end]
	}
	return s[start-1:] + s[:end]
}
