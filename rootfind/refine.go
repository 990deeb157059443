package rootfind

import (
	"fmt"
	"math"
)

// Refiner converges to the single root of f inside a bracket.
type Refiner interface {
	Refine(f func(float64) float64, br Bracket) (root float64, err error)
}

// NumericDivergenceError is returned when a refiner fails to converge inside
// a bracket.
type NumericDivergenceError struct {
	Method     string
	Bracket    Bracket
	Iterations int
	Last       float64
	Reason     string
}

func (e *NumericDivergenceError) Error() string {
	return fmt.Sprintf("%s did not converge in bracket %v after %d iterations (last iterate %g): %s",
		e.Method, e.Bracket, e.Iterations, e.Last, e.Reason)
}

const (
	DefaultTol     = 1.e-12
	DefaultMaxIter = 100
)

// Secant iterates x_{k+1} = x_k - f(x_k)(x_k - x_{k-1})/(f(x_k) - f(x_{k-1}))
// from the bracket endpoints, stopping when |f(x_k)| or the step falls to Tol.
type Secant struct {
	Tol     float64
	MaxIter int
}

func NewSecant() *Secant {
	return &Secant{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

func (s *Secant) Refine(f func(float64) float64, br Bracket) (root float64, err error) {
	if br.Lo == br.Hi {
		return br.Lo, nil
	}
	var (
		x0, x1 = br.Lo, br.Hi
		f0, f1 = f(x0), f(x1)
	)
	fail := func(iter int, x float64, reason string) error {
		return &NumericDivergenceError{Method: "secant", Bracket: br, Iterations: iter, Last: x, Reason: reason}
	}
	if math.Abs(f0) <= s.Tol {
		return x0, nil
	}
	if math.Abs(f1) <= s.Tol {
		return x1, nil
	}
	for iter := 1; iter <= s.MaxIter; iter++ {
		if f1 == f0 {
			return x1, fail(iter, x1, "flat secant")
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.IsNaN(x2) || math.IsInf(x2, 0) {
			return x1, fail(iter, x2, "iterate is not finite")
		}
		step := math.Abs(x2 - x1)
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
		if math.IsNaN(f1) {
			return x1, fail(iter, x1, "function is not finite at iterate")
		}
		if math.Abs(f1) <= s.Tol || step <= s.Tol {
			return x1, nil
		}
	}
	return x1, fail(s.MaxIter, x1, "iteration cap reached")
}

// Bisection halves the bracket until it is narrower than Tol. It converges
// for any valid bracket and is slower than Secant.
type Bisection struct {
	Tol     float64
	MaxIter int
}

func NewBisection() *Bisection {
	return &Bisection{Tol: DefaultTol, MaxIter: 200}
}

func (bi *Bisection) Refine(f func(float64) float64, br Bracket) (root float64, err error) {
	if br.Lo == br.Hi {
		return br.Lo, nil
	}
	var (
		lo, hi   = br.Lo, br.Hi
		fLo, fHi = f(lo), f(hi)
	)
	switch {
	case fLo == 0:
		return lo, nil
	case fHi == 0:
		return hi, nil
	case (fLo < 0) == (fHi < 0):
		return lo, &NumericDivergenceError{Method: "bisection", Bracket: br, Last: lo,
			Reason: "no sign change across bracket"}
	}
	for iter := 1; iter <= bi.MaxIter; iter++ {
		mid := 0.5 * (lo + hi)
		fMid := f(mid)
		if fMid == 0 || 0.5*(hi-lo) <= bi.Tol {
			return mid, nil
		}
		if (fMid < 0) == (fLo < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), &NumericDivergenceError{Method: "bisection", Bracket: br,
		Iterations: bi.MaxIter, Last: 0.5 * (lo + hi), Reason: "iteration cap reached"}
}

// New returns the refiner registered under name, "secant" or "bisection".
func New(name string) (r Refiner, err error) {
	switch name {
	case "", "secant":
		r = NewSecant()
	case "bisection":
		r = NewBisection()
	default:
		err = fmt.Errorf("unknown refiner %q, choose secant or bisection", name)
	}
	return
}
