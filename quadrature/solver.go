package quadrature

import (
	"fmt"

	"github.com/notargets/wquad/integrator"
	"github.com/notargets/wquad/rootfind"
)

const DefaultSamplesPerNode = 10

// Solver runs the IQF and GTQF pipeline for one problem. Zero valued fields
// are replaced by defaults on first use.
type Solver struct {
	Problem        Problem
	Integrator     integrator.Integrator
	Moments        MomentSource // nil integrates the weight numerically
	Refiner        rootfind.Refiner
	SamplesPerNode int
}

func NewSolver(pr Problem) *Solver {
	return &Solver{
		Problem:        pr,
		Integrator:     integrator.NewAdaptive(),
		Refiner:        rootfind.NewSecant(),
		SamplesPerNode: DefaultSamplesPerNode,
	}
}

// Result carries every intermediate of one run.
type Result struct {
	N        int
	Interval Interval
	Exact    float64

	// Interpolatory formula on n+1 equally spaced nodes
	IQFMoments []float64
	IQF        Rule
	IQFValue   float64
	IQFError   float64

	// Gauss-type formula on the n roots of the moment derived polynomial
	GTQFMoments []float64
	Polynomial  Polynomial
	Brackets    []rootfind.Bracket
	GTQF        Rule
	GTQFValue   float64
	GTQFError   float64
}

// RunOnce validates the input and runs the full pipeline. Validation
// happens before any integration, and every later failure is fatal for the
// run and wrapped with the stage that produced it.
func (s *Solver) RunOnce(n int, a, b float64) (res *Result, err error) {
	iv := Interval{A: a, B: b}
	if n < 1 {
		return nil, &InvalidNodeCountError{N: n}
	}
	if err = s.Problem.Validate(iv); err != nil {
		return nil, err
	}
	s.defaults()
	var (
		moments = s.Moments
		f       = s.Problem.Integrand
	)
	if moments == nil {
		moments = NumericMoments{Integrator: s.Integrator, Weight: s.Problem.Weight}
	}
	res = &Result{N: n, Interval: iv}
	res.Exact = s.Integrator.Integrate(s.Problem.WeightedIntegrand(), a, b)

	res.IQFMoments = moments.Moments(iv, n+1)
	if res.IQF, err = NewInterpolatoryRule(EquallySpacedNodes(iv, n), res.IQFMoments); err != nil {
		return nil, fmt.Errorf("interpolatory weights: %w", err)
	}
	res.IQFValue = res.IQF.Apply(f)
	res.IQFError = AbsError(res.Exact, res.IQFValue)

	res.GTQFMoments = moments.Moments(iv, 2*n)
	if res.Polynomial, err = NewMonicPolynomial(res.GTQFMoments); err != nil {
		return nil, fmt.Errorf("orthogonal polynomial coefficients: %w", err)
	}
	var roots []float64
	if roots, res.Brackets, err = FindRoots(res.Polynomial, iv, s.SamplesPerNode, s.Refiner); err != nil {
		return nil, fmt.Errorf("orthogonal polynomial roots: %w", err)
	}
	if res.GTQF, err = NewGaussRule(roots, res.GTQFMoments); err != nil {
		return nil, fmt.Errorf("gauss-type weights: %w", err)
	}
	res.GTQFValue = res.GTQF.Apply(f)
	res.GTQFError = AbsError(res.Exact, res.GTQFValue)
	return
}

func (s *Solver) defaults() {
	if s.Integrator == nil {
		s.Integrator = integrator.NewAdaptive()
	}
	if s.Refiner == nil {
		s.Refiner = rootfind.NewSecant()
	}
	if s.SamplesPerNode < 1 {
		s.SamplesPerNode = DefaultSamplesPerNode
	}
}
