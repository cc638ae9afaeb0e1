package output

import "fmt"

// CircularStructureError is returned when Lift discovers that an input
// references itself, directly or transitively, by identity.
type CircularStructureError struct {
	// Path is the chain of map keys/slice indices leading from the root of
	// the lifted input to the node that closed the cycle, e.g.
	// []string{"items", "2", "parent"}.
	Path []string
}

func (e *CircularStructureError) Error() string {
	if len(e.Path) == 0 {
		return "output: circular structure detected"
	}
	return fmt.Sprintf("output: circular structure detected at %v", e.Path)
}

// UnsupportedToStringError is the value Output.String panics with, to reject
// implicit stringification.
type UnsupportedToStringError struct{}

func (e *UnsupportedToStringError) Error() string {
	return "output: calling String() on an Output is not supported; use Apply or Interpolate to produce a string"
}

// DeferredAlreadyResolvedError is returned when a Deferred's Resolve is
// called more than once.
type DeferredAlreadyResolvedError struct{}

func (e *DeferredAlreadyResolvedError) Error() string {
	return "output: deferred output already resolved"
}

// PathError wraps an error encountered while resolving one element of a
// composite input (a slice, map, or the argument list of All/AllMap/Concat/
// Interpolate), recording the key or index at which it occurred. Nested
// composites produce nested PathErrors; Unwrap walks inward one level at a
// time toward the underlying cause.
type PathError struct {
	Path  string
	Cause error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("output: at %q: %s", e.Path, e.Cause)
}

func (e *PathError) Unwrap() error {
	return e.Cause
}
