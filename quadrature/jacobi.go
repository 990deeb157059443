package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/wquad/utils"
)

// JacobiGQ computes the n point Gauss quadrature for the Jacobi weight
// (1-r)^alpha (1+r)^beta on [-1,1] from the eigen decomposition of the
// symmetric Jacobi matrix (Golub-Welsch). Nodes are returned ascending.
func JacobiGQ(alpha, beta float64, n int) (r Rule, err error) {
	if n < 1 {
		err = fmt.Errorf("need at least one Gauss point, have %d", n)
		return
	}
	var (
		N  = n - 1
		ab = alpha + beta
	)
	if N == 0 {
		r = Rule{
			Nodes:   []float64{-(alpha - beta) / (ab + 2.)},
			Weights: []float64{gamma0(alpha, beta)},
		}
		return
	}
	h1 := make([]float64, N+1)
	for i := range h1 {
		h1[i] = 2*float64(i) + ab
	}
	// main diagonal: (beta^2-alpha^2)/(h1 (h1+2))
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i, val := range h1 {
		d0[i] = fac / (val * (val + 2.))
	}
	if ab < 10*1.e-16 {
		d0[0] = 0.
	}
	// 1st off diagonal: 2/(h1+2) sqrt(i (i+ab) (i+alpha) (i+beta) / ((h1+1)(h1+3)))
	d1 := make([]float64, N)
	for i := range d1 {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + ab) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(utils.NewSymTriDiagonal(d0, d1), true); !ok {
		err = fmt.Errorf("eigenvalue decomposition failed")
		return
	}
	x := eig.Values(nil)
	var V mat.Dense
	eig.VectorsTo(&V)
	w := make([]float64, N+1)
	g0 := gamma0(alpha, beta)
	for j := range w {
		v0 := V.At(0, j)
		w[j] = v0 * v0 * g0
	}
	r = Rule{Nodes: x, Weights: w}
	return
}

// GaussJacobiRule maps the n point (alpha=1/2, beta=0) Gauss-Jacobi rule onto
// [a,1], where it is the Gauss rule for rho(x) = sqrt(1-x):
//
//	x = a + (1-a)(s+1)/2,  sqrt(1-x) dx = ((1-a)/2)^(3/2) sqrt(1-s) ds
func GaussJacobiRule(a float64, n int) (r Rule, err error) {
	var (
		half = 0.5 * (1 - a)
	)
	if !(a < 1) {
		err = &InvalidIntervalError{Interval: Interval{A: a, B: 1}, Reason: "A must be strictly less than B"}
		return
	}
	if r, err = JacobiGQ(0.5, 0, n); err != nil {
		return
	}
	scale := math.Pow(half, 1.5)
	for i := range r.Nodes {
		r.Nodes[i] = a + half*(r.Nodes[i]+1)
		r.Weights[i] *= scale
	}
	return
}

// gamma0 is the integral of the Jacobi weight over [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
