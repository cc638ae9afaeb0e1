package output

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// All lifts every element of inputs and joins them into a single Output of
// []any.
func All(ctx context.Context, inputs []any) (Output, error) {
	children := make([]Output, len(inputs))
	labels := make([]string, len(inputs))
	for i, in := range inputs {
		c, err := Lift(ctx, in)
		if err != nil {
			return nil, err
		}
		children[i] = c
		labels[i] = strconv.Itoa(i)
	}
	return joinComposite(children, labels, func(vals []any) any { return vals }), nil
}

// AllMap lifts every value of inputs and joins them into a single Output of
// map[string]any.
func AllMap(ctx context.Context, inputs map[string]any) (Output, error) {
	names := make([]string, 0, len(inputs))
	children := make([]Output, 0, len(inputs))
	for k, in := range inputs {
		c, err := Lift(ctx, in)
		if err != nil {
			return nil, err
		}
		names = append(names, k)
		children = append(children, c)
	}
	return joinComposite(children, names, func(vals []any) any {
		m := make(map[string]any, len(vals))
		for i, v := range vals {
			m[names[i]] = v
		}
		return m
	}), nil
}

// Concat lifts and stringifies each input, joining the results into a
// single Output of string.
func Concat(ctx context.Context, inputs []any) (Output, error) {
	children := make([]Output, len(inputs))
	labels := make([]string, len(inputs))
	for i, in := range inputs {
		c, err := Lift(ctx, in)
		if err != nil {
			return nil, err
		}
		children[i] = c
		labels[i] = strconv.Itoa(i)
	}
	return joinComposite(children, labels, func(vals []any) any {
		var sb strings.Builder
		for _, v := range vals {
			sb.WriteString(stringify(v))
		}
		return sb.String()
	}), nil
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if IsUnknown(v) {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// JSONStringify lifts input and resolves to its JSON encoding. If Unknown
// appears anywhere in input, the lifted source is unknown, so the result is
// unknown with a nil value and no partial JSON is produced. Secrecy and
// dependencies carry over from the lifted input. There is no
// replacer-function or indent parameter: callers
// needing pretty-printed output can json.Indent the result themselves.
func JSONStringify(ctx context.Context, input any) (Output, error) {
	src, err := Lift(ctx, input)
	if err != nil {
		return nil, err
	}
	return src.Apply(ctx, func(ctx context.Context, v any) (any, error) {
		b, err := json.Marshal(jsonSafe(v))
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}), nil
}

func jsonSafe(v any) any {
	switch vv := v.(type) {
	case *unknownSentinel:
		return nil
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = jsonSafe(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = jsonSafe(e)
		}
		return out
	default:
		return v
	}
}

// JSONParse lifts input, parses its eventual string value as JSON, and
// lifts the decoded structure again. There is no reviver parameter: the
// decoded structure is handed back as-is, matching encoding/json's own
// Unmarshal, which has no equivalent hook either.
func JSONParse(ctx context.Context, input any) (Output, error) {
	src, err := Lift(ctx, input)
	if err != nil {
		return nil, err
	}
	return src.Apply(ctx, func(ctx context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("output: JSONParse expects a string, got %T", v)
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	}), nil
}

// Secret lifts input and forces the result's secrecy to true regardless of
// the input's own secrecy.
func Secret(ctx context.Context, input any) (Output, error) {
	src, err := Lift(ctx, input)
	if err != nil {
		return nil, err
	}
	return deriveOutput(src.Deps(), func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		value, err := src.Value(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		known, err := src.IsKnown(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		allDeps, err := src.AllDeps(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		return value, known, true, allDeps, nil
	}), nil
}

// Unsecret lifts input and forces the result's secrecy to false regardless
// of the input's own secrecy. Callers use this to deliberately expose a
// value that was previously marked secret.
func Unsecret(ctx context.Context, input any) (Output, error) {
	src, err := Lift(ctx, input)
	if err != nil {
		return nil, err
	}
	return deriveOutput(src.Deps(), func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		value, err := src.Value(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		known, err := src.IsKnown(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		allDeps, err := src.AllDeps(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		return value, known, false, allDeps, nil
	}), nil
}

// IsSecret lifts input and resolves to whether its eventual value is
// secret, mirroring Secret and Unsecret as a standalone combinator rather
// than requiring the caller go through Lift(x).IsSecret(ctx) directly.
func IsSecret(ctx context.Context, input any) (bool, error) {
	src, err := Lift(ctx, input)
	if err != nil {
		return false, err
	}
	return src.IsSecret(ctx)
}
