package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/wquad/integrator"
	"github.com/notargets/wquad/rootfind"
	"github.com/notargets/wquad/utils"
)

var unit = Interval{A: 0, B: 1}

func monomial(k int) Func {
	return func(x float64) float64 { return utils.POW(x, k) }
}

func TestScenarioN2(t *testing.T) {
	s := NewSolver(DefaultProblem())
	res, err := s.RunOnce(2, 0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1.030, res.Exact, 5.e-4)
	assert.InDelta(t, ExactIntegral(unit), res.Exact, 1.e-13)
	assert.Equal(t, []float64{0, 0.5, 1}, res.IQF.Nodes)
	assert.Len(t, res.IQFMoments, 3)
	assert.Len(t, res.GTQFMoments, 4)
	assert.InDeltaSlice(t, []float64{0.17142857142857, 0.45714285714286, 0.03809523809524}, res.IQF.Weights, 1.e-12)
	assert.InDeltaSlice(t, []float64{1, -0.88888888888889, 0.12698412698413}, res.Polynomial.Coeffs, 1.e-12)
	assert.InDeltaSlice(t, []float64{0.17883808681458, 0.71005080207431}, res.GTQF.Nodes, 1.e-10)
	assert.InDeltaSlice(t, []float64{0.38911066843561, 0.27755599823106}, res.GTQF.Weights, 1.e-10)

	assert.InDelta(t, 1.02868331721374, res.IQFValue, 1.e-12)
	assert.InDelta(t, 1.02988424049761, res.GTQFValue, 1.e-10)
	assert.True(t, res.IQFError < 0.1)
	assert.True(t, res.GTQFError < 0.1)
	// IQF error is 1.395e-3 and GTQF error 1.942e-4 for this case
	assert.InDelta(t, 1.3951520649684e-3, res.IQFError, 1.e-10)
	assert.InDelta(t, 1.942287810905e-4, res.GTQFError, 1.e-10)
	assert.True(t, 5*res.GTQFError < res.IQFError)

	for _, r := range res.GTQF.Nodes {
		assert.True(t, 0 <= r && r <= 1)
	}
	assert.Len(t, res.Brackets, 2)

	reports := res.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, "IQF", reports[0].Name)
	assert.Equal(t, res.GTQFError, reports[1].Error)
}

func TestErrorsAcrossN(t *testing.T) {
	s := NewSolver(DefaultProblem())
	for _, iv := range []Interval{unit, {A: -1, B: 1}, {A: 0.2, B: 0.9}} {
		for n := 1; n <= 5; n++ {
			res, err := s.RunOnce(n, iv.A, iv.B)
			require.NoError(t, err, "n = %d, %v", n, iv)
			for _, e := range []float64{res.IQFError, res.GTQFError} {
				assert.True(t, e >= 0 && !math.IsInf(e, 0) && !math.IsNaN(e))
			}
			assert.True(t, res.GTQFError <= res.IQFError+1.e-13,
				"n = %d, %v: GTQF error %g > IQF error %g", n, iv, res.GTQFError, res.IQFError)
			if n >= 3 && res.GTQFError > 1.e-13 {
				assert.True(t, 10*res.GTQFError < res.IQFError, "n = %d, %v", n, iv)
			}
			assert.Len(t, res.IQF.Nodes, n+1)
			assert.Len(t, res.IQF.Weights, n+1)
			assert.Len(t, res.GTQF.Nodes, n)
			assert.Len(t, res.GTQF.Weights, n)
		}
	}
}

func TestIQFExactness(t *testing.T) {
	pr := DefaultProblem()
	integ := integrator.NewAdaptive()
	for n := 1; n <= 5; n++ {
		mu := Moments(integ, pr.Weight, unit, n+1)
		rule, err := NewInterpolatoryRule(EquallySpacedNodes(unit, n), mu)
		require.NoError(t, err)
		for k := 0; k <= n; k++ {
			assert.InDelta(t, mu[k], rule.Apply(monomial(k)), 1.e-12, "n = %d, k = %d", n, k)
		}
	}
}

func TestGTQFExactness(t *testing.T) {
	s := NewSolver(DefaultProblem())
	sm := NewSqrtMoments()
	for n := 1; n <= 5; n++ {
		res, err := s.RunOnce(n, 0, 1)
		require.NoError(t, err)
		mu := sm.Moments(unit, 2*n+1)
		for k := 0; k <= 2*n-1; k++ {
			assert.InDelta(t, mu[k], res.GTQF.Apply(monomial(k)), 1.e-9, "n = %d, k = %d", n, k)
		}
		// degree 2n is where exactness ends
		assert.True(t, math.Abs(mu[2*n]-res.GTQF.Apply(monomial(2*n))) > 1.e-8, "n = %d", n)
	}
}

func TestMomentsAtDomainEdge(t *testing.T) {
	pr := DefaultProblem()
	mu := Moments(integrator.NewAdaptive(), pr.Weight, unit, 10)
	require.Len(t, mu, 10)
	assert.True(t, utils.IsFinite(mu))
	for i := 1; i < len(mu); i++ {
		assert.True(t, mu[i] > 0 && mu[i] < mu[i-1])
	}
	assert.InDelta(t, 2./3., mu[0], 1.e-14)
}

func TestClosedForms(t *testing.T) {
	pr := DefaultProblem()
	integ := integrator.NewAdaptive()
	sm := NewSqrtMoments()
	for _, iv := range []Interval{unit, {A: -0.5, B: 0.7}, {A: -3, B: 1}, {A: 0.9, B: 0.95}} {
		num := Moments(integ, pr.Weight, iv, 10)
		exact := sm.Moments(iv, 10)
		for i := range num {
			assert.InEpsilon(t, exact[i], num[i], 1.e-12, "%v, i = %d", iv, i)
		}
		assert.InEpsilon(t, ExactIntegral(iv), integ.Integrate(pr.WeightedIntegrand(), iv.A, iv.B), 1.e-12)
	}
	// Beta(i+1, 3/2) on [0,1]
	mu := sm.Moments(unit, 6)
	for i, val := range mu {
		fi := float64(i)
		assert.InEpsilon(t, math.Gamma(fi+1)*math.Gamma(1.5)/math.Gamma(fi+2.5), val, 1.e-13)
	}
	// default precision applies to a zero value
	assert.Equal(t, mu, SqrtMoments{}.Moments(unit, 6))
}

func TestAnalyticMomentSource(t *testing.T) {
	numeric := NewSolver(DefaultProblem())
	analytic := NewSolver(DefaultProblem())
	analytic.Moments = NewSqrtMoments()
	for n := 1; n <= 4; n++ {
		r1, err := numeric.RunOnce(n, -1, 1)
		require.NoError(t, err)
		r2, err := analytic.RunOnce(n, -1, 1)
		require.NoError(t, err)
		assert.InDelta(t, r1.IQFValue, r2.IQFValue, 1.e-11)
		assert.InDelta(t, r1.GTQFValue, r2.GTQFValue, 1.e-10)
	}
}

func TestGaussJacobiReference(t *testing.T) {
	s := NewSolver(DefaultProblem())
	for _, a := range []float64{0, -1} {
		for n := 1; n <= 5; n++ {
			res, err := s.RunOnce(n, a, 1)
			require.NoError(t, err)
			ref, err := GaussJacobiRule(a, n)
			require.NoError(t, err)
			approx := cmpopts.EquateApprox(0, 1.e-8)
			if diff := cmp.Diff(ref.Nodes, res.GTQF.Nodes, approx); diff != "" {
				t.Errorf("a = %v, n = %d: nodes mismatch (-ref +got):\n%s", a, n, diff)
			}
			if diff := cmp.Diff(ref.Weights, res.GTQF.Weights, approx); diff != "" {
				t.Errorf("a = %v, n = %d: weights mismatch (-ref +got):\n%s", a, n, diff)
			}
		}
	}
	// Legendre limit: 2 points at +-1/sqrt(3) with unit weights
	r, err := JacobiGQ(0, 0, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, r.Nodes, 1.e-14)
	assert.InDeltaSlice(t, []float64{1, 1}, r.Weights, 1.e-14)
	r, err = JacobiGQ(0.5, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, r.Nodes[0], 1.e-15)
	_, err = JacobiGQ(0, 0, 0)
	assert.Error(t, err)
	_, err = GaussJacobiRule(1, 2)
	assert.Error(t, err)
	// Short intervals leave the moment system poorly conditioned; keep n small
	res, err := s.RunOnce(3, 0.5, 1)
	require.NoError(t, err)
	ref, err := GaussJacobiRule(0.5, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ref.Nodes, res.GTQF.Nodes, 1.e-8)
}

func TestRootOrderPermutation(t *testing.T) {
	s := NewSolver(DefaultProblem())
	for n := 2; n <= 5; n++ {
		res, err := s.RunOnce(n, 0, 1)
		require.NoError(t, err)
		roots := res.GTQF.Nodes
		for i := 1; i < n; i++ {
			assert.True(t, roots[i-1] < roots[i], "scan order is ascending")
		}
		rev, err := NewGaussRule(utils.Reversed(roots), res.GTQFMoments)
		require.NoError(t, err)
		assert.InDeltaSlice(t, res.GTQF.Weights, utils.Reversed(rev.Weights), 1.e-10)
		assert.InDelta(t, res.GTQFValue, rev.Apply(math.Exp), 1.e-11)
	}
}

func TestValidation(t *testing.T) {
	pr := DefaultProblem()
	tests := []struct {
		name string
		n    int
		a, b float64
	}{
		{"a equals b", 2, 0.5, 0.5},
		{"a above b", 2, 1, 0},
		{"b outside domain", 2, 0, 1.5},
		{"not finite", 2, math.Inf(-1), 1},
		{"nan", 2, math.NaN(), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			integ := &integrator.Counting{Integrator: integrator.NewAdaptive()}
			s := NewSolver(pr)
			s.Integrator = integ
			res, err := s.RunOnce(tc.n, tc.a, tc.b)
			assert.Nil(t, res)
			var ie *InvalidIntervalError
			require.True(t, errors.As(err, &ie), "got %v", err)
			assert.Equal(t, 0, integ.Calls)
		})
	}
	integ := &integrator.Counting{Integrator: integrator.NewAdaptive()}
	s := NewSolver(pr)
	s.Integrator = integ
	_, err := s.RunOnce(0, 0, 1)
	var ne *InvalidNodeCountError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, 0, integ.Calls)

	// a negative lower bound is inside the weight's domain
	assert.NoError(t, pr.Validate(Interval{A: -5, B: 1}))
}

// stubMoments returns fixed moments regardless of interval
type stubMoments []float64

func (sm stubMoments) Moments(_ Interval, count int) []float64 {
	return append([]float64{}, sm[:count]...)
}

func TestFatalErrors(t *testing.T) {
	{ // Singular Hankel system
		s := NewSolver(DefaultProblem())
		s.Moments = stubMoments{1, 1, 1, 1}
		_, err := s.RunOnce(2, 0, 1)
		var se *utils.SingularSystemError
		require.True(t, errors.As(err, &se), "got %v", err)
		assert.Contains(t, err.Error(), "orthogonal polynomial coefficients")
	}
	{ // Root outside the interval: p(x) = x - 5
		s := NewSolver(DefaultProblem())
		s.Moments = stubMoments{1, 5}
		_, err := s.RunOnce(1, 0, 1)
		var re *RootCountMismatchError
		require.True(t, errors.As(err, &re), "got %v", err)
		assert.Equal(t, 1, re.Want)
		assert.Equal(t, 0, re.Got)
	}
	{ // Refiner gives up
		s := NewSolver(DefaultProblem())
		s.Refiner = &rootfind.Secant{Tol: 0, MaxIter: 1}
		_, err := s.RunOnce(3, 0, 1)
		var de *rootfind.NumericDivergenceError
		require.True(t, errors.As(err, &de), "got %v", err)
	}
	{ // Bisection is a drop in replacement
		s := NewSolver(DefaultProblem())
		s.Refiner = rootfind.NewBisection()
		res, err := s.RunOnce(3, 0, 1)
		require.NoError(t, err)
		ref, _ := GaussJacobiRule(0, 3)
		assert.InDeltaSlice(t, ref.Nodes, res.GTQF.Nodes, 1.e-10)
	}
}

func TestRuleBuilders(t *testing.T) {
	{
		_, err := NewInterpolatoryRule([]float64{0, 0.5, 0.5}, []float64{1, 1, 1})
		var se *utils.SingularSystemError
		assert.True(t, errors.As(err, &se))
	}
	{
		_, err := NewInterpolatoryRule([]float64{0, 1}, []float64{1})
		assert.Error(t, err)
		_, err = NewInterpolatoryRule(nil, nil)
		assert.Error(t, err)
		_, err = NewGaussRule([]float64{0.2, 0.7}, []float64{1})
		assert.Error(t, err)
		_, err = NewMonicPolynomial([]float64{1, 2, 3})
		assert.Error(t, err)
	}
	{ // Trapezoid from unit weight moments
		r, err := NewInterpolatoryRule(EquallySpacedNodes(unit, 1), []float64{1, 0.5})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, r.Weights, 1.e-15)
		assert.Equal(t, 2, r.Len())
	}
	assert.Panics(t, func() { EquallySpacedNodes(unit, 0) })
	p := Polynomial{Coeffs: []float64{1, -3, 2}}
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 0., p.Eval(1))
	assert.Equal(t, 0., p.Eval(2))
	assert.Equal(t, 2., p.Eval(0))
	roots, brackets, err := FindRoots(p, Interval{A: 0, B: 3}, 10, rootfind.NewSecant())
	require.NoError(t, err)
	assert.Len(t, brackets, 2)
	assert.InDeltaSlice(t, []float64{1, 2}, roots, 1.e-12)
	_, _, err = FindRoots(Polynomial{Coeffs: []float64{1, 0, 1}}, unit, 10, rootfind.NewSecant())
	var re *RootCountMismatchError
	assert.True(t, errors.As(err, &re))
}
