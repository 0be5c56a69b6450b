package dispatch

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func isVector(v any) bool {
	_, ok := v.(mat.Vector)
	return ok
}

// convertVector unrolls a one-dimensional numeric vector into a JSON array.
// NaN marks a missing element and becomes null; everything else re-enters
// the table so nested handling stays uniform.
func (t *Table) convertVector(v any, depth int) (any, error) {
	vec := v.(mat.Vector)
	out := make([]any, vec.Len())
	for i := range out {
		f := vec.AtVec(i)
		if math.IsNaN(f) {
			out[i] = nil
			continue
		}
		e, err := t.normalize(f, depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
