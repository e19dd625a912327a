package mito

import "fmt"

// BoundsError reports an index outside the addressable window, or inside
// the excluded gap of a window that crosses the origin.
type BoundsError struct {
	Pos    Position // offending index
	Start  int      // window bounds
	End    int
	Reason string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position %s %s (window [%d, %d])", e.Pos, e.Reason, e.Start, e.End)
}

// ValidationError reports a malformed variant token or position.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError reports an invalid strand code or a lookup key with
// no entry in the reference tables.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// DomainError reports an operation applied to a molecule that cannot
// support it, such as translating a partial transcript window or
// transcribing a noncoding locus.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string { return fmt.Sprintf("%s: %s", e.Op, e.Reason) }

func boundsErr(pos Position, w window, reason string) *BoundsError {
	return &BoundsError{Pos: pos, Start: w.start, End: w.end, Reason: reason}
}
