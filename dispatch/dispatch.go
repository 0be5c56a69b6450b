// Package dispatch converts value kinds the strict JSON engine cannot
// serialize into plain JSON-native values. Conversion is driven by an
// ordered rule list — first match wins — built fresh for every call:
// temporal values, then numeric vectors, then labeled series, then the
// caller's fallback converter. Anything that falls off the end is an
// UnsupportedTypeError.
package dispatch

import (
	"fmt"
	"reflect"
)

// Func is a caller-supplied fallback converter. It receives a value the
// built-in rules rejected and returns a replacement, which is itself run
// back through the table.
type Func func(v any) (any, error)

// DefaultMaxDepth bounds converter recursion, guarding against fallback
// converters that hand back values the table can never finish with.
const DefaultMaxDepth = 254

// NaT is the missing-value sentinel for temporal and vector data. It
// serializes as JSON null wherever the table sees it.
var NaT = natType{}

type natType struct{}

func (natType) String() string { return "NaT" }

type rule struct {
	match   func(any) bool
	convert func(t *Table, v any, depth int) (any, error)
}

// Directives carries the per-call formatting configuration consumed by the
// rules. The zero value means: no pass-through, no vector serialization,
// machine-interchange temporal rendering.
type Directives struct {
	// Datetime, Date and Time are strftime-style patterns applied to the
	// matching temporal sub-kind in pass-through mode. Empty selects the
	// built-in default for that sub-kind.
	Datetime string
	Date     string
	Time     string

	// PassthroughTemporal routes temporal values through the directive
	// patterns (or the fallback converter, which takes precedence)
	// instead of the engine's native ISO rendering.
	PassthroughTemporal bool
	// SerializeVectors enables the vector and series rules.
	SerializeVectors bool

	// UTCZ and OmitMicroseconds tune native (non-pass-through) rendering
	// of instants.
	UTCZ             bool
	OmitMicroseconds bool
}

// Table is the per-call dispatch state. It is not safe for concurrent use
// and is meant to be discarded when the call returns.
type Table struct {
	dir      Directives
	def      Func
	rules    []rule
	maxDepth int
}

// New builds the rule list in the fixed built-in order: missing sentinel,
// temporal, vector, series. A non-nil fallback takes precedence over
// directive formatting for temporal values: when both are present,
// pass-through temporal values go to the fallback, not the patterns.
func New(dir Directives, fallback Func, maxDepth int) *Table {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	t := &Table{dir: dir, def: fallback, maxDepth: maxDepth}

	t.rules = append(t.rules, rule{
		match:   func(v any) bool { _, ok := v.(natType); return ok },
		convert: func(*Table, any, int) (any, error) { return nil, nil },
	})
	if dir.PassthroughTemporal {
		conv := (*Table).formatTemporal
		if fallback != nil {
			conv = (*Table).applyFallback
		}
		t.rules = append(t.rules, rule{match: isTemporal, convert: conv})
	}
	if dir.SerializeVectors {
		t.rules = append(t.rules, rule{match: isVector, convert: (*Table).convertVector})
		t.rules = append(t.rules, rule{match: isSeries, convert: (*Table).convertSeries})
	}
	return t
}

// Normalize walks v and returns an equivalent tree containing only values
// the strict engine serializes natively.
func (t *Table) Normalize(v any) (any, error) {
	return t.normalize(v, 0)
}

func (t *Table) normalize(v any, depth int) (any, error) {
	if depth > t.maxDepth {
		return nil, &UnsupportedTypeError{TypeName: typeName(v), Reason: "recursion limit exceeded"}
	}

	switch x := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			ne, err := t.normalize(e, depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = ne
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			ne, err := t.normalize(e, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = ne
		}
		return out, nil
	}

	// Temporal values outside pass-through mode belong to the engine's
	// native ISO rendering and never reach the rules.
	if isTemporal(v) && !t.dir.PassthroughTemporal {
		return renderNativeTemporal(v, t.dir), nil
	}

	for _, r := range t.rules {
		if r.match(v) {
			return r.convert(t, v, depth)
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return t.normalize(rv.Elem().Interface(), depth+1)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v, nil // non-string keys are the engine's business
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ne, err := t.normalize(iter.Value().Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = ne
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil // []byte: the engine base64-encodes it
		}
		out := make([]any, rv.Len())
		for i := range out {
			ne, err := t.normalize(rv.Index(i).Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = ne
		}
		return out, nil
	case reflect.Struct,
		reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// Statically typed values the engine serializes itself.
		return v, nil
	}

	if t.def != nil {
		return t.applyFallback(v, depth)
	}
	return nil, &UnsupportedTypeError{TypeName: typeName(v)}
}

// applyFallback delegates to the caller's converter and re-dispatches the
// result. A converter that returns its input unchanged would loop forever;
// that is detected and reported instead.
func (t *Table) applyFallback(v any, depth int) (any, error) {
	out, err := t.def(v)
	if err != nil {
		return nil, err
	}
	if sameValue(out, v) {
		return nil, &UnsupportedTypeError{TypeName: typeName(v), Reason: "fallback converter returned its input unchanged"}
	}
	return t.normalize(out, depth+1)
}

func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// UnsupportedTypeError reports a value no rule could convert.
type UnsupportedTypeError struct {
	TypeName string
	Reason   string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("dispatch: cannot serialize %s: %s", e.TypeName, e.Reason)
	}
	return fmt.Sprintf("dispatch: cannot serialize value of type %s", e.TypeName)
}
