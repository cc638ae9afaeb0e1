package output

import (
	"context"
	"sync"

	"github.com/vk/outputs/output/promise"
)

// joined captures one child Output's fully-resolved metadata, gathered
// concurrently by awaitAll.
type joined struct {
	value   any
	known   bool
	secret  bool
	deps    ResourceSet
	allDeps ResourceSet
	err     error
}

// awaitAll resolves every field of every output in outs concurrently,
// joining every input in parallel rather than one at a time. It returns the
// first error encountered, if any.
func awaitAll(ctx context.Context, outs []Output) ([]joined, error) {
	return awaitAllLabeled(ctx, outs, nil)
}

// awaitAllLabeled behaves like awaitAll, but when labels is non-nil and a
// child fails, the error is wrapped in a PathError naming the key or index
// (labels[i]) of the child that failed — the composite-walk equivalent of a
// stack frame.
func awaitAllLabeled(ctx context.Context, outs []Output, labels []string) ([]joined, error) {
	results := make([]joined, len(outs))

	var wg sync.WaitGroup
	wg.Add(len(outs))
	for i, o := range outs {
		go func(i int, o Output) {
			defer wg.Done()
			results[i] = awaitOne(ctx, o)
		}(i, o)
	}
	wg.Wait()

	for i, r := range results {
		if r.err != nil {
			if labels != nil && i < len(labels) {
				return nil, &PathError{Path: labels[i], Cause: r.err}
			}
			return nil, r.err
		}
	}
	return results, nil
}

func awaitOne(ctx context.Context, o Output) joined {
	known, err := o.IsKnown(ctx)
	if err != nil {
		return joined{err: err}
	}
	secret, err := o.IsSecret(ctx)
	if err != nil {
		return joined{err: err}
	}
	allDeps, err := o.AllDeps(ctx)
	if err != nil {
		return joined{err: err}
	}
	value, err := o.Value(ctx)
	if err != nil {
		return joined{err: err}
	}
	return joined{value: value, known: known, secret: secret, deps: o.Deps(), allDeps: allDeps}
}

// joinMeta implements this package's metadata join rule over already
// resolved child results: known only if every child is known, secret if any
// child is, deps and allDeps the union across children.
func joinMeta(results []joined) (known, secret bool, deps, allDeps ResourceSet) {
	known = true
	for _, r := range results {
		known = known && r.known
		secret = secret || r.secret
		deps = Union(deps, r.deps)
		allDeps = Union(allDeps, r.allDeps)
	}
	return known, secret, deps, allDeps
}

// deriveOutput builds an Output whose four lazy fields are all resolved
// together, on a single spawned goroutine, by compute. When compute
// succeeds, every field sees a consistent view of the result: the same
// (value, known, secret, allDeps) tuple.
//
// When compute fails, only value and known reject with the error; secret
// and allDeps resolve with whatever compute returned alongside the error
// instead of rejecting too. This matches the propagation rule that a
// transform's failure invalidates the transform's result but not the
// metadata that was already independently determined before the failure —
// compute is expected to return its best-known secret/allDeps alongside an
// error, not zero values, wherever the step that failed comes after they
// were already resolved.
//
// compute runs detached from whichever caller happened to trigger
// construction (it is handed a background context, never the caller's own),
// because the resulting Output is a shared, memoized value: a timeout on
// one reader's context must not poison the cell for every other reader who
// awaits it later with a context of their own.
func deriveOutput(deps ResourceSet, compute func(ctx context.Context) (value any, known, secret bool, allDeps ResourceSet, err error)) Output {
	valueCell := promise.New[any]()
	knownCell := promise.New[bool]()
	secretCell := promise.New[bool]()
	allDepsCell := promise.New[ResourceSet]()

	go func() {
		v, k, s, ad, err := compute(context.Background())
		if err != nil {
			valueCell.Resolve(nil, err)
			knownCell.Resolve(false, err)
			secretCell.Resolve(s, nil)
			allDepsCell.Resolve(ad, nil)
			return
		}
		valueCell.Resolve(v, nil)
		knownCell.Resolve(k, nil)
		secretCell.Resolve(s, nil)
		allDepsCell.Resolve(ad, nil)
	}()

	return wrap(&core{deps: deps, value: valueCell, known: knownCell, secret: secretCell, allDeps: allDepsCell})
}
