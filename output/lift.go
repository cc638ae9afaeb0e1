package output

import (
	"context"
	"reflect"
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

// path is an immutable ancestor stack used for identity-based cycle
// detection. Nodes are linked by pointer, not copied, so a path snapshot
// taken before suspending on a Pending can be safely reused once that
// Pending resolves: it still describes exactly the ancestors that were on
// the way to that position, never more.
//
// Each node also carries the map key or slice index it was reached by, so a
// detected cycle can report the full path to where it closed rather than
// just the bare fact that one exists.
type path struct {
	id     uintptr
	label  string
	parent *path
}

func (p *path) contains(id uintptr) bool {
	for n := p; n != nil; n = n.parent {
		if n.id == id {
			return true
		}
	}
	return false
}

func (p *path) push(id uintptr, label string) *path {
	return &path{id: id, label: label, parent: p}
}

// labels returns the human-readable path from the root to p, in order. The
// root node's own label is always "" (it has no incoming edge) and is
// omitted.
func (p *path) labels() []string {
	var rev []string
	for n := p; n != nil; n = n.parent {
		if n.label != "" {
			rev = append(rev, n.label)
		}
	}
	out := make([]string, len(rev))
	for i, l := range rev {
		out[len(rev)-1-i] = l
	}
	return out
}

// identityOf returns a pointer-stable identity for composite values (maps,
// slices, pointers) for which a cycle is structurally possible, and reports
// whether one was found. Scalars have no identity and can never participate
// in a cycle.
func identityOf(x any) (uintptr, bool) {
	if x == nil {
		return 0, false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	case reflect.Map, reflect.Ptr:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	default:
		return 0, false
	}
}

// Lift converts an arbitrary Input into an Output. Inputs already
// brand-recognized as an Output are returned unchanged. A cycle reachable
// without crossing a Pending boundary is reported synchronously, as a
// returned error, rather than by way of a rejected Output — mirroring how a
// synchronous construction failure would throw rather than reject. A cycle
// only visible after a Pending resolves is instead surfaced through the
// returned Output's own lazy fields.
func Lift(ctx context.Context, x any) (Output, error) {
	return liftAt(ctx, x, nil, "")
}

// liftAt lifts x, reached from its parent by label (the map key or slice
// index that led here, or "" at the root).
func liftAt(ctx context.Context, x any, anc *path, label string) (Output, error) {
	if x == nil {
		return newLeaf(nil, nil, true, false), nil
	}

	if o, ok := AsOutput(x); ok {
		return o, nil
	}

	if x == Unknown {
		return newLeaf(nil, Unknown, false, false), nil
	}

	if cv, ok := x.(cty.Value); ok {
		return liftCtyValue(cv), nil
	}

	if d, ok := x.(*Deferred); ok {
		return d.output(), nil
	}

	if p, ok := x.(Pending); ok {
		return liftPending(ctx, p, anc, label), nil
	}

	if id, hasID := identityOf(x); hasID {
		if anc.contains(id) {
			return nil, &CircularStructureError{Path: append(anc.labels(), label)}
		}
		child := anc.push(id, label)

		rv := reflect.ValueOf(x)
		switch rv.Kind() {
		case reflect.Slice:
			return liftSlice(ctx, rv, child)
		case reflect.Map:
			return liftMap(ctx, rv, child)
		case reflect.Ptr:
			// The pointer adds no key or index of its own: it is pushed
			// unlabeled so label appears once in a cycle's Path.
			return liftAt(ctx, rv.Elem().Interface(), anc.push(id, ""), label)
		}
	}

	// Plain scalar: known unless it literally is the Unknown sentinel,
	// already handled above.
	return newLeaf(nil, x, true, false), nil
}

func liftSlice(ctx context.Context, rv reflect.Value, anc *path) (Output, error) {
	n := rv.Len()
	children := make([]Output, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = strconv.Itoa(i)
		c, err := liftAt(ctx, rv.Index(i).Interface(), anc, labels[i])
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return joinComposite(children, labels, func(vals []any) any { return vals }), nil
}

func liftMap(ctx context.Context, rv reflect.Value, anc *path) (Output, error) {
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	children := make([]Output, len(keys))
	for i, k := range keys {
		ks, ok := k.Interface().(string)
		if !ok {
			ks = reflectToString(k)
		}
		names[i] = ks
		c, err := liftAt(ctx, rv.MapIndex(k).Interface(), anc, ks)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	return joinComposite(children, names, func(vals []any) any {
		m := make(map[string]any, len(vals))
		for i, v := range vals {
			m[names[i]] = v
		}
		return m
	}), nil
}

func reflectToString(rv reflect.Value) string {
	if s, ok := rv.Interface().(interface{ String() string }); ok {
		return s.String()
	}
	return rv.String()
}

// joinComposite builds the Output for a slice or map whose elements are
// themselves Outputs, applying this package's metadata join rule. labels,
// when non-nil, names each child by its key or index, so a child's failure
// surfaces wrapped in a PathError rather than bare.
func joinComposite(children []Output, labels []string, assemble func(vals []any) any) Output {
	_, deps, _ := splitDeps(children)
	return deriveOutput(deps, func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		results, err := awaitAllLabeled(ctx, children, labels)
		if err != nil {
			return nil, false, false, nil, err
		}
		known, secret, _, allDeps := joinMeta(results)
		vals := make([]any, len(results))
		for i, r := range results {
			vals[i] = r.value
		}
		value := assemble(vals)
		if !known {
			value = nil
		} else if ContainsUnknown(value) {
			known = false
			value = nil
		}
		return value, known, secret, allDeps, nil
	})
}

func splitDeps(children []Output) (hasAny bool, deps ResourceSet, allDeps ResourceSet) {
	for _, c := range children {
		deps = Union(deps, c.Deps())
		hasAny = true
	}
	return hasAny, deps, nil
}

// liftPending suspends until p resolves, then lifts its result at the
// ancestor path captured at the moment the Pending was discovered. Reusing
// that snapshot — rather than starting a fresh, empty path — is what lets a
// cycle that only closes after a Pending resolves still be caught: if the
// resolved value turns out to be one of the very ancestors on the way to
// this Pending, its identity is still on anc.
func liftPending(ctx context.Context, p Pending, anc *path, label string) Output {
	return deriveOutput(nil, func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		v, err := p.AwaitPending(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		inner, err := liftAt(ctx, v, anc, label)
		if err != nil {
			return nil, false, false, nil, err
		}
		known, err := inner.IsKnown(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		secret, err := inner.IsSecret(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		allDeps, err := inner.AllDeps(ctx)
		if err != nil {
			// secret resolved in the step above, even though allDeps didn't.
			return nil, false, secret, nil, err
		}
		value, err := inner.Value(ctx)
		if err != nil {
			// Every metadata field resolved; only the value itself failed.
			return nil, false, secret, allDeps, err
		}
		return value, known, secret, allDeps, nil
	})
}

// MustLift panics on a synchronous lift error. It exists for call sites
// (such as a combinator assembling a literal, cycle-free argument list)
// where a cycle would indicate a programming error rather than bad input.
func MustLift(ctx context.Context, x any) Output {
	o, err := Lift(ctx, x)
	if err != nil {
		panic(err)
	}
	return o
}
