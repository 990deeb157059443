package quadrature

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"gonum.org/v1/gonum/mathext"
)

// SqrtMoments evaluates the moments of rho(x) = sqrt(1-x) in closed form.
// With t = 1-x,
//
//	mu_i = sum_k C(i,k) (-1)^k [t^(k+3/2) / (k+3/2)] from t = 1-b to t = 1-a
//
// The alternating sum cancels badly in float64, so it is carried out with
// Prec bits and rounded at the end.
type SqrtMoments struct {
	Prec uint
}

func NewSqrtMoments() SqrtMoments { return SqrtMoments{Prec: 256} }

func (sm SqrtMoments) Moments(iv Interval, count int) (mu []float64) {
	var (
		prec = sm.Prec
	)
	if prec == 0 {
		prec = 256
	}
	var (
		one    = new(big.Float).SetPrec(prec).SetInt64(1)
		tA     = new(big.Float).SetPrec(prec).Sub(one, new(big.Float).SetPrec(prec).SetFloat64(iv.A))
		tB     = new(big.Float).SetPrec(prec).Sub(one, new(big.Float).SetPrec(prec).SetFloat64(iv.B))
		binom  = new(big.Int)
		powers = make([]*big.Float, count) // (tA^(k+3/2) - tB^(k+3/2)) / (k+3/2)
	)
	for k := 0; k < count; k++ {
		w := new(big.Float).SetPrec(prec).SetFloat64(float64(k) + 1.5)
		diff := new(big.Float).SetPrec(prec).Sub(sm.pow(tA, w), sm.pow(tB, w))
		powers[k] = diff.Quo(diff, w)
	}
	mu = make([]float64, count)
	for i := 0; i < count; i++ {
		sum := new(big.Float).SetPrec(prec)
		for k := 0; k <= i; k++ {
			term := new(big.Float).SetPrec(prec).SetInt(binom.Binomial(int64(i), int64(k)))
			term.Mul(term, powers[k])
			if k%2 == 1 {
				term.Neg(term)
			}
			sum.Add(sum, term)
		}
		mu[i], _ = sum.Float64()
	}
	return
}

func (sm SqrtMoments) pow(t, w *big.Float) *big.Float {
	if t.Sign() == 0 {
		return new(big.Float).SetPrec(t.Prec())
	}
	return bigfloat.Pow(t, w)
}

// ExactIntegral returns int_a^b e^x sqrt(1-x) dx for the default problem,
//
//	e * Gamma(3/2) * [P(3/2, 1-a) - P(3/2, 1-b)]
//
// with P the regularized lower incomplete gamma function.
func ExactIntegral(iv Interval) float64 {
	g32 := 0.5 * math.Sqrt(math.Pi)
	return math.E * g32 * (mathext.GammaIncReg(1.5, 1-iv.A) - mathext.GammaIncReg(1.5, 1-iv.B))
}
