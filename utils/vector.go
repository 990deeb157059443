package utils

import (
	"gonum.org/v1/gonum/mat"
)

func VecGetF64(v mat.Vector) (r []float64) {
	r = make([]float64, v.Len())
	for i := range r {
		r[i] = v.AtVec(i)
	}
	return
}

// Reversed returns a copy of v in reverse order.
func Reversed(v []float64) (r []float64) {
	var (
		N = len(v)
	)
	r = make([]float64, N)
	for i, val := range v {
		r[N-1-i] = val
	}
	return
}

// Negated returns a copy of v with every entry sign flipped.
func Negated(v []float64) (r []float64) {
	r = make([]float64, len(v))
	for i, val := range v {
		r[i] = -val
	}
	return
}
