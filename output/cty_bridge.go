package output

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// LiftCty lifts a cty.Value directly, recognizing its own native knownness
// (IsWhollyKnown) and secrecy (HasMark) instead of falling back to the
// generic scalar/composite walk in lift.go. Lift dispatches to this
// automatically whenever it encounters a cty.Value, so callers working with
// HCL-decoded configuration never need to call it themselves.
func LiftCty(ctx context.Context, v cty.Value) Output {
	return liftCtyValue(v)
}

func liftCtyValue(v cty.Value) Output {
	known := v.IsWhollyKnown()
	secret := ctyHasSensitiveMark(v)
	value := ctyToGo(v)
	if !known {
		value = nil
	}
	return newLeaf(nil, value, known, secret)
}

// sensitiveMark is this package's own mark value, used to flag a cty.Value
// as secret via cty's native marking mechanism rather than inventing a
// parallel secrecy channel for cty inputs specifically.
type sensitiveMark struct{}

// MarkCtySensitive returns a copy of v marked secret, for callers building
// cty.Value configuration that should carry through Lift as an Output with
// IsSecret() true.
func MarkCtySensitive(v cty.Value) cty.Value {
	return v.Mark(sensitiveMark{})
}

func ctyHasSensitiveMark(v cty.Value) bool {
	if !v.IsMarked() {
		return false
	}
	_, marks := v.Unmark()
	for m := range marks {
		if _, ok := m.(sensitiveMark); ok {
			return true
		}
	}
	return false
}

// ctyToGo converts a (possibly marked) cty.Value into the plain Go shapes
// this package operates on: string, bool, float64, []any, map[string]any,
// nil, or Unknown.
func ctyToGo(v cty.Value) any {
	if v.IsMarked() {
		v, _ = v.Unmark()
	}
	if !v.IsKnown() {
		return Unknown
	}
	if v.IsNull() {
		return nil
	}
	t := v.Type()
	switch {
	case t == cty.String:
		return v.AsString()
	case t == cty.Bool:
		return v.True()
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	case t.IsListType(), t.IsSetType(), t.IsTupleType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			out = append(out, ctyToGo(ev))
		}
		return out
	case t.IsMapType(), t.IsObjectType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			out[kv.AsString()] = ctyToGo(ev)
		}
		return out
	default:
		return Unknown
	}
}

// goToCty converts a plain Go value produced by this package back into a
// cty.Value, for handing a resolved argument to an HCL expression's
// evaluation context in interpolate.go.
func goToCty(v any) cty.Value {
	switch vv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case *unknownSentinel:
		return cty.DynamicVal
	case string:
		return cty.StringVal(vv)
	case bool:
		return cty.BoolVal(vv)
	case int:
		return cty.NumberIntVal(int64(vv))
	case int64:
		return cty.NumberIntVal(vv)
	case float64:
		return cty.NumberFloatVal(vv)
	case []any:
		if len(vv) == 0 {
			return cty.ListValEmpty(cty.DynamicPseudoType)
		}
		vals := make([]cty.Value, len(vv))
		for i, e := range vv {
			vals[i] = goToCty(e)
		}
		return cty.TupleVal(vals)
	case map[string]any:
		if len(vv) == 0 {
			return cty.EmptyObjectVal
		}
		vals := make(map[string]cty.Value, len(vv))
		for k, e := range vv {
			vals[k] = goToCty(e)
		}
		return cty.ObjectVal(vals)
	default:
		return cty.StringVal(stringify(v))
	}
}
