package utils

import (
	"math"
)

// IsFinite reports whether every entry of A is neither NaN nor infinite.
func IsFinite(A any) bool {
	switch v := A.(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case []float64:
		for _, f := range v {
			if !IsFinite(f) {
				return false
			}
		}
	case Matrix:
		return IsFinite(v.M.RawMatrix().Data)
	}
	return true
}
