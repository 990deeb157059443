package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/wquad/utils"
)

// Rule is a quadrature formula sum_i Weights[i] f(Nodes[i]); Nodes and Weights
// are paired by position.
type Rule struct {
	Nodes, Weights []float64
}

func (r Rule) Len() int { return len(r.Nodes) }

func (r Rule) Apply(f Func) (sum float64) {
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}
	return
}

// EquallySpacedNodes returns the n+1 nodes a, a+h, ..., b with h = (b-a)/n.
func EquallySpacedNodes(iv Interval, n int) []float64 {
	if n < 1 {
		panic(fmt.Errorf("need at least 2 nodes, have n = %d", n))
	}
	return floats.Span(make([]float64, n+1), iv.A, iv.B)
}

// NewInterpolatoryRule solves sum_j A_j x_j^i = mu_i, i = 0..len(nodes)-1, for
// the weights of the rule on fixed nodes. The rule integrates every polynomial
// of degree below len(nodes) exactly.
func NewInterpolatoryRule(nodes, moments []float64) (r Rule, err error) {
	return momentMatchedRule(nodes, moments)
}

// NewGaussRule is NewInterpolatoryRule over the roots of the moment derived
// monic polynomial, using mu_0..mu_{n-1}. With n roots the rule is exact up to
// degree 2n-1.
func NewGaussRule(roots, moments []float64) (r Rule, err error) {
	if len(moments) < len(roots) {
		err = fmt.Errorf("need %d moments for %d roots, have %d", len(roots), len(roots), len(moments))
		return
	}
	return momentMatchedRule(roots, moments[:len(roots)])
}

func momentMatchedRule(x, moments []float64) (r Rule, err error) {
	var (
		N = len(x)
	)
	if N == 0 {
		err = fmt.Errorf("unable to build a quadrature rule without nodes")
		return
	}
	if len(moments) != N {
		err = fmt.Errorf("moment count %d does not match node count %d", len(moments), N)
		return
	}
	var w []float64
	if w, err = utils.Solve(utils.NewPowerMatrix(x, N), moments); err != nil {
		return
	}
	r = Rule{
		Nodes:   append([]float64{}, x...),
		Weights: w,
	}
	return
}
