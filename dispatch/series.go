package dispatch

import (
	"github.com/go-gota/gota/series"
)

func isSeries(v any) bool {
	switch v.(type) {
	case series.Series, *series.Series:
		return true
	}
	return false
}

// convertSeries unwraps a labeled column to its underlying values and
// re-dispatches them like a vector. Only the values survive; the name and
// positional labels are discarded. NA elements become null.
func (t *Table) convertSeries(v any, depth int) (any, error) {
	var s series.Series
	switch x := v.(type) {
	case series.Series:
		s = x
	case *series.Series:
		s = *x
	}
	out := make([]any, s.Len())
	for i := range out {
		if s.Elem(i).IsNA() {
			out[i] = nil
			continue
		}
		e, err := t.normalize(s.Val(i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
