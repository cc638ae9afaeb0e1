package output

import "reflect"

// unknownSentinel is the concrete type behind Unknown. Equality against it
// is by identity: Unknown is a single package-level instance, and nothing
// else may construct one.
type unknownSentinel struct{}

// Unknown is the distinguished marker for "not yet known". It is the only
// value that means "will only be determined in a later phase" inside a
// materialized structure; absent knownness is otherwise communicated
// through IsKnown resolving to false.
var Unknown = &unknownSentinel{}

// IsUnknown reports whether v is the Unknown sentinel, by identity.
func IsUnknown(v any) bool {
	return v == Unknown
}

// ContainsUnknown walks a resolved value graph (slices, maps, and plain
// scalars) and reports whether Unknown appears anywhere within it.
func ContainsUnknown(v any) bool {
	switch vv := v.(type) {
	case *unknownSentinel:
		return vv == Unknown
	case []any:
		for _, e := range vv {
			if ContainsUnknown(e) {
				return true
			}
		}
		return false
	case map[string]any:
		for _, e := range vv {
			if ContainsUnknown(e) {
				return true
			}
		}
		return false
	default:
		return containsUnknownReflect(v)
	}
}

// containsUnknownReflect handles slices/maps/pointers/structs that didn't
// already normalize to []any/map[string]any (e.g. a typed []string cannot
// carry Unknown, but a typed []any-like or map[K]V with interface{}
// elements might).
func containsUnknownReflect(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if ContainsUnknown(rv.Index(i).Interface()) {
				return true
			}
		}
		return false
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if ContainsUnknown(iter.Value().Interface()) {
				return true
			}
		}
		return false
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return ContainsUnknown(rv.Elem().Interface())
	default:
		return false
	}
}
