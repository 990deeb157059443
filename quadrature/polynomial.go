package quadrature

import (
	"fmt"

	"github.com/notargets/wquad/rootfind"
	"github.com/notargets/wquad/utils"
)

// Polynomial holds a_0..a_n of p(x) = a_0 x^n + a_1 x^(n-1) + ... + a_n,
// highest power first.
type Polynomial struct {
	Coeffs []float64
}

func (p Polynomial) Degree() int { return len(p.Coeffs) - 1 }

// Eval uses Horner's rule.
func (p Polynomial) Eval(x float64) (y float64) {
	for _, c := range p.Coeffs {
		y = y*x + c
	}
	return
}

// NewMonicPolynomial derives the monic degree n polynomial whose roots are
// the Gauss-type nodes from the moments mu_0..mu_{2n-1}. The coefficients
// satisfy, for i = 0..n-1,
//
//	sum_{j=1..n} a_j mu_{i+n-j} = -mu_{i+n}
//
// so row i of the system is mu_i..mu_{i+n-1} reversed.
func NewMonicPolynomial(moments []float64) (p Polynomial, err error) {
	var (
		N2 = len(moments)
		N  = N2 / 2
	)
	if N2 == 0 || N2%2 != 0 {
		err = fmt.Errorf("need an even, non zero number of moments, have %d", N2)
		return
	}
	M := utils.NewMatrix(N, N)
	for i := 0; i < N; i++ {
		M.SetRow(i, utils.Reversed(moments[i:i+N]))
	}
	var a []float64
	if a, err = utils.Solve(M, utils.Negated(moments[N:N2])); err != nil {
		return
	}
	p.Coeffs = append([]float64{1}, a...)
	return
}

type RootCountMismatchError struct {
	Want, Got int
	Interval
}

func (e *RootCountMismatchError) Error() string {
	return fmt.Sprintf("polynomial of degree %d has %d sign changes on %v, expected %d simple real roots",
		e.Want, e.Got, e.Interval, e.Want)
}

// FindRoots scans p over iv with samplesPerNode*degree segments and refines
// each sign change bracket. The roots are returned in scan order.
func FindRoots(p Polynomial, iv Interval, samplesPerNode int, refiner rootfind.Refiner) (roots []float64, brackets []rootfind.Bracket, err error) {
	var (
		n = p.Degree()
	)
	if brackets, err = rootfind.Scan(p.Eval, iv.A, iv.B, samplesPerNode*n); err != nil {
		return
	}
	if len(brackets) != n {
		err = &RootCountMismatchError{Want: n, Got: len(brackets), Interval: iv}
		return
	}
	roots = make([]float64, n)
	for i, br := range brackets {
		if roots[i], err = refiner.Refine(p.Eval, br); err != nil {
			roots = nil
			return
		}
	}
	return
}
