package output

import (
	"context"
	"sync"
)

// Deferred is a placeholder Output created before its source is known.
// Every field of every Output obtained by chaining off a
// Deferred (via Apply, Get, Index, or by including it in All/Concat/etc.)
// suspends until Resolve is called.
type Deferred struct {
	mu       sync.Mutex
	resolved bool
	source   Output
	ready    chan struct{}
}

// NewDeferred returns an unresolved Deferred.
func NewDeferred() *Deferred {
	return &Deferred{ready: make(chan struct{})}
}

// Resolve binds d to src. Resolving a Deferred more than once is an error:
// unlike a Cell, which is an internal detail, a second Resolve on a
// user-visible Deferred rejects rather than panicking.
func (d *Deferred) Resolve(src Output) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved {
		return &DeferredAlreadyResolvedError{}
	}
	d.source = src
	d.resolved = true
	close(d.ready)
	return nil
}

// output returns the Output view of d, suspending on d.ready the first time
// any of its fields is awaited.
func (d *Deferred) output() Output {
	return deriveOutput(nil, func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		select {
		case <-d.ready:
		case <-ctx.Done():
			return nil, false, false, nil, ctx.Err()
		}
		d.mu.Lock()
		src := d.source
		d.mu.Unlock()

		known, err := src.IsKnown(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		secret, err := src.IsSecret(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		allDeps, err := src.AllDeps(ctx)
		if err != nil {
			// secret resolved in the step above, even though allDeps didn't.
			return nil, false, secret, nil, err
		}
		value, err := src.Value(ctx)
		if err != nil {
			// Every metadata field resolved; only the value itself failed.
			return nil, false, secret, allDeps, err
		}
		return value, known, secret, allDeps, nil
	})
}

// DeferredOutput lifts d into the standard Output interface immediately,
// without waiting for Resolve: the returned Output is liftAt-indistinguishable
// from one produced by any other Input. Its Deps() is fixed at construction,
// before any source is bound, so it is always empty, even after Resolve;
// the source's dependencies are reported through AllDeps once resolved.
func DeferredOutput(d *Deferred) Output {
	return d.output()
}
