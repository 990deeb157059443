// Package quadrature builds interpolatory and Gauss-type quadrature rules for
// the weighted integral of f(x)rho(x) over [a,b] from the moments of rho.
package quadrature

import (
	"fmt"
	"math"
)

type Func func(x float64) float64

type Interval struct {
	A, B float64
}

func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.A, iv.B) }

// Problem is a weight function rho, an integrand f and the domain on which
// rho is defined.
type Problem struct {
	Name                 string
	Weight, Integrand    Func
	DomainMin, DomainMax float64
}

// DefaultProblem is rho(x) = sqrt(1-x), f(x) = e^x, defined for x <= 1.
func DefaultProblem() Problem {
	return Problem{
		Name:      "rho(x) = sqrt(1-x), f(x) = e^x",
		Weight:    func(x float64) float64 { return math.Sqrt(1 - x) },
		Integrand: math.Exp,
		DomainMin: math.Inf(-1),
		DomainMax: 1,
	}
}

// WeightedIntegrand returns x -> f(x)rho(x).
func (pr Problem) WeightedIntegrand() Func {
	return func(x float64) float64 { return pr.Integrand(x) * pr.Weight(x) }
}

type InvalidIntervalError struct {
	Interval
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval %v: %s", e.Interval, e.Reason)
}

type InvalidNodeCountError struct {
	N int
}

func (e *InvalidNodeCountError) Error() string {
	return fmt.Sprintf("invalid node count %d: need at least 1", e.N)
}

// Validate checks a < b and that [a,b] lies inside the weight's domain.
func (pr Problem) Validate(iv Interval) error {
	switch {
	case math.IsNaN(iv.A) || math.IsNaN(iv.B) || math.IsInf(iv.A, 0) || math.IsInf(iv.B, 0):
		return &InvalidIntervalError{Interval: iv, Reason: "bounds must be finite"}
	case iv.A >= iv.B:
		return &InvalidIntervalError{Interval: iv, Reason: "A must be strictly less than B"}
	case iv.B > pr.DomainMax || iv.A < pr.DomainMin:
		return &InvalidIntervalError{Interval: iv,
			Reason: fmt.Sprintf("interval is outside the domain [%g, %g] of the weight function", pr.DomainMin, pr.DomainMax)}
	}
	return nil
}
