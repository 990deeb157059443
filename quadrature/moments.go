package quadrature

import (
	"github.com/notargets/wquad/integrator"
	"github.com/notargets/wquad/utils"
)

// MomentSource produces mu_i = int_a^b x^i rho(x) dx for i = 0..count-1.
type MomentSource interface {
	Moments(iv Interval, count int) []float64
}

// NumericMoments integrates x^i rho(x) with an Integrator.
type NumericMoments struct {
	Integrator integrator.Integrator
	Weight     Func
}

func (nm NumericMoments) Moments(iv Interval, count int) (mu []float64) {
	mu = make([]float64, count)
	for i := range mu {
		p := i
		mu[i] = nm.Integrator.Integrate(func(x float64) float64 {
			return utils.POW(x, p) * nm.Weight(x)
		}, iv.A, iv.B)
	}
	return
}

// Moments is NumericMoments for a single call.
func Moments(integ integrator.Integrator, weight Func, iv Interval, count int) []float64 {
	return NumericMoments{Integrator: integ, Weight: weight}.Moments(iv, count)
}
