package output

import (
	"context"
	"fmt"

	"github.com/vk/outputs/internal/suggest"
)

// Get returns a lifted Output of the named field of this Output's eventual
// record-shaped value. If this Output's value is known — whether it's nil,
// a non-map value, or a map lacking key — the result is a known nil,
// mirroring the optional-chaining "v?.[k]" reading: accessing into
// something that turned out to have no such field is not itself a reason
// to call the result unknown. A miss past the nil case logs a "did you
// mean" diagnostic rather than returning it, so a chain of Get/Index calls
// built ahead of time never has to guess which step failed. The result
// stays unknown only when the source itself is unknown (handled by Apply,
// before f ever runs) or when the field's own value is itself unknown.
func (o *impl) Get(ctx context.Context, key string) Output {
	return o.Apply(ctx, func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		m, ok := v.(map[string]any)
		if !ok {
			logMiss(ctx, "Get", key, nil)
			return nil, nil
		}
		val, ok := m[key]
		if !ok {
			names := make([]string, 0, len(m))
			for k := range m {
				names = append(names, k)
			}
			logMiss(ctx, "Get", key, names)
			return nil, nil
		}
		return val, nil
	})
}

// Index returns a lifted Output of the i-th element of this Output's
// eventual array-shaped value. As with Get, a known source that turns out
// to be nil, a non-array value, or an array too short for i resolves to a
// known nil rather than unknown; only an unknown source or an unknown
// element value propagates unknown.
func (o *impl) Index(ctx context.Context, i int) Output {
	return o.Apply(ctx, func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		s, ok := v.([]any)
		if !ok || i < 0 || i >= len(s) {
			logMiss(ctx, "Index", fmt.Sprintf("%d", i), nil)
			return nil, nil
		}
		return s[i], nil
	})
}

func logMiss(ctx context.Context, op, key string, candidates []string) {
	msg := fmt.Sprintf("output: %s(%q) missed", op, key)
	if best := suggest.Closest(key, candidates); best != "" {
		msg += fmt.Sprintf(", did you mean %q?", best)
	}
	logFromContext(ctx, msg)
}
