// Package rootfind isolates the real roots of a continuous function on an
// interval in two independent stages: Scan tabulates the function and returns
// sign change brackets, and a Refiner converges to the root inside one bracket.
package rootfind

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Bracket is an interval [Lo, Hi] over which f changes sign. Lo == Hi marks
// a sample that landed exactly on a root where f changes sign.
type Bracket struct {
	Lo, Hi float64
}

func (b Bracket) Width() float64 { return b.Hi - b.Lo }

func (b Bracket) String() string { return fmt.Sprintf("[%g, %g]", b.Lo, b.Hi) }

// Scan samples f at segments+1 equally spaced points on [lo, hi], endpoints
// included, and returns the brackets in left to right order. An interior
// sample that is exactly zero is a bracket only when its neighbours differ in
// sign, so a tangent root is missed whether or not it is sampled. A zero at
// an endpoint is a bracket when its one neighbour is non zero.
func Scan(f func(float64) float64, lo, hi float64, segments int) (brackets []Bracket, err error) {
	if segments < 1 {
		err = fmt.Errorf("unable to scan, need at least one segment, have %d", segments)
		return
	}
	if !(lo < hi) {
		err = fmt.Errorf("unable to scan, empty interval [%g, %g]", lo, hi)
		return
	}
	var (
		x  = floats.Span(make([]float64, segments+1), lo, hi)
		fx = make([]float64, len(x))
	)
	for i, xi := range x {
		fx[i] = f(xi)
	}
	last := len(x) - 1
	for i := 0; i <= last; i++ {
		switch {
		case fx[i] == 0 && zeroCrossing(fx, i):
			brackets = append(brackets, Bracket{Lo: x[i], Hi: x[i]})
		case i < last && fx[i] != 0 && fx[i+1] != 0 && (fx[i] < 0) != (fx[i+1] < 0):
			brackets = append(brackets, Bracket{Lo: x[i], Hi: x[i+1]})
		}
	}
	return
}

func zeroCrossing(fx []float64, i int) bool {
	switch last := len(fx) - 1; i {
	case 0:
		return fx[1] != 0
	case last:
		return fx[last-1] != 0
	default:
		return fx[i-1] != 0 && fx[i+1] != 0 && (fx[i-1] < 0) != (fx[i+1] < 0)
	}
}
