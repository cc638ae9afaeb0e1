package output

import (
	"context"

	"github.com/vk/outputs/output/promise"
)

// brand is the stable, structurally-detectable marker used to recognize an
// Output across package-version boundaries. Detection
// goes through the brand interface below rather than a type assertion to
// the concrete *impl type, so a differently-versioned implementation of
// this same contract is still recognized as long as it exposes the same
// marker method returning the same string.
const brand = "github.com/vk/outputs/output.Output/v1"

// branded is the unexported interface every Output implementation in this
// package satisfies. A type from another version of this package that
// happens to implement the same method with the same return value is
// recognized as interoperable; one that doesn't is treated as an ordinary
// value to be lifted.
type branded interface {
	outputBrand() string
}

// Output is a lazy, asynchronous container for a value together with its
// knownness, secrecy, and resource-dependency metadata. See the package doc
// comment for the full contract.
type Output interface {
	// Value resolves to the underlying value. If IsKnown resolves to
	// false, the logical observable value is undefined and Value resolves
	// to nil.
	Value(ctx context.Context) (any, error)
	// IsKnown resolves to whether the value will be materialized in the
	// current execution phase.
	IsKnown(ctx context.Context) (bool, error)
	// IsSecret resolves to whether the value must be treated as
	// confidential.
	IsSecret(ctx context.Context) (bool, error)
	// Deps returns the set of direct resource dependencies known at
	// construction time. It never suspends: deps are immutable and
	// available synchronously.
	Deps() ResourceSet
	// AllDeps resolves to the transitively reachable set of resource
	// dependencies, a superset of Deps.
	AllDeps(ctx context.Context) (ResourceSet, error)
	// Apply runs f over the resolved value according to this package's
	// knownness/secrecy propagation rules, producing a new Output.
	Apply(ctx context.Context, f func(context.Context, any) (any, error)) Output
	// Get returns an Output of the named field of a record-shaped value.
	Get(ctx context.Context, key string) Output
	// Index returns an Output of the i-th element of an array-shaped
	// value.
	Index(ctx context.Context, i int) Output
	// String never returns the underlying value: it panics with an
	// *UnsupportedToStringError.
	// Output deliberately does not implement fmt.Stringer's intended
	// contract so that accidental %s/%v formatting surfaces the guard
	// message instead of silently embedding "[object Output]"-style text.
	String() string

	outputBrand() string
}

// core holds an Output's five constituent fields. deps is eager and
// immutable; the remaining four are lazy and resolve exactly once,
// regardless of how many goroutines await them.
type core struct {
	deps    ResourceSet
	value   *promise.Cell[any]
	known   *promise.Cell[bool]
	secret  *promise.Cell[bool]
	allDeps *promise.Cell[ResourceSet]
}

type impl struct {
	*core
}

func (o *impl) outputBrand() string { return brand }

func wrap(c *core) Output {
	return &impl{c}
}

func (o *impl) Value(ctx context.Context) (any, error) {
	known, err := o.known.Await(ctx)
	if err != nil {
		return nil, err
	}
	v, err := o.value.Await(ctx)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, nil
	}
	return v, nil
}

func (o *impl) IsKnown(ctx context.Context) (bool, error) {
	return o.known.Await(ctx)
}

func (o *impl) IsSecret(ctx context.Context) (bool, error) {
	return o.secret.Await(ctx)
}

func (o *impl) Deps() ResourceSet {
	return o.deps
}

func (o *impl) AllDeps(ctx context.Context) (ResourceSet, error) {
	s, err := o.allDeps.Await(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return o.deps, nil
	}
	return s, nil
}

func (o *impl) String() string {
	panic(&UnsupportedToStringError{})
}

// AsOutput reports whether x is brand-recognized as an Output, returning it
// as such if so. Detection is structural (via the branded interface), not a
// type assertion to *impl.
func AsOutput(x any) (Output, bool) {
	b, ok := x.(branded)
	if !ok || b.outputBrand() != brand {
		return nil, false
	}
	o, ok := x.(Output)
	return o, ok
}

// newLeaf builds an Output directly from already-resolved metadata, used by
// Lift for scalar inputs and internally wherever a result is known
// immediately rather than via suspension.
func newLeaf(deps ResourceSet, value any, known, secret bool) Output {
	return wrap(&core{
		deps:    deps,
		value:   promise.Resolved(value),
		known:   promise.Resolved(known),
		secret:  promise.Resolved(secret),
		allDeps: promise.Resolved(deps),
	})
}

// newFailed builds an Output whose lazy fields all reject with err.
func newFailed(deps ResourceSet, err error) Output {
	return wrap(&core{
		deps:    deps,
		value:   promise.Failed[any](err),
		known:   promise.Failed[bool](err),
		secret:  promise.Failed[bool](err),
		allDeps: promise.Failed[ResourceSet](err),
	})
}
