// Package integrator computes definite integrals of smooth or weakly
// singular real functions on a finite interval.
package integrator

import (
	"container/heap"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

type Integrator interface {
	Integrate(f func(float64) float64, a, b float64) float64
}

// Adaptive is a globally adaptive Gauss-Legendre integrator. Each panel is
// estimated with order Order and order 2*Order rules, their difference is the
// panel's error, and the panel with the largest error is bisected until the
// summed error meets AbsTol or RelTol. An integrable endpoint singularity
// ends in panels a few ulps wide whose nodes round onto the endpoint; those
// panels keep a finite estimate when one exists and are dropped otherwise.
type Adaptive struct {
	Order          int
	AbsTol, RelTol float64
	MaxDepth       int // bisections of a single panel
	MaxEvals       int // integrand evaluations per Integrate call
	evals          int
}

func NewAdaptive() *Adaptive {
	return &Adaptive{
		Order:    10,
		AbsTol:   1.e-14,
		RelTol:   1.e-14,
		MaxDepth: 50,
		MaxEvals: 200000,
	}
}

// Evals returns the number of integrand evaluations since the last Reset.
func (ad *Adaptive) Evals() int { return ad.evals }

func (ad *Adaptive) Reset() { ad.evals = 0 }

// Integrate returns the integral of f over [a,b]. When MaxEvals is spent
// before the tolerance is met the current sum is returned, so the result is
// best effort.
func (ad *Adaptive) Integrate(f func(float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	if a > b {
		return -ad.Integrate(f, b, a)
	}
	var (
		active = &panelHeap{}
		closed float64 // panels that can not be bisected further
		start  = ad.evals
	)
	ad.add(active, &closed, ad.estimate(f, a, b, 0))
	for active.Len() > 0 && ad.evals-start < ad.MaxEvals {
		total, errSum := closed, 0.
		for _, p := range *active {
			total += p.value
			errSum += p.err
		}
		if errSum <= math.Max(ad.AbsTol, ad.RelTol*math.Abs(total)) {
			break
		}
		p := heap.Pop(active).(panel)
		mid := 0.5 * (p.a + p.b)
		ad.add(active, &closed, ad.estimate(f, p.a, mid, p.depth+1))
		ad.add(active, &closed, ad.estimate(f, mid, p.b, p.depth+1))
	}
	for _, p := range *active {
		closed += p.value
	}
	return closed
}

// add keeps p for further bisection, or folds its value into closed when p
// is too deep or too narrow to split.
func (ad *Adaptive) add(active *panelHeap, closed *float64, p panel) {
	mid := 0.5 * (p.a + p.b)
	if p.depth >= ad.MaxDepth || p.b-p.a <= 4*ulp(math.Max(math.Abs(p.a), math.Abs(p.b))) ||
		mid <= p.a || mid >= p.b {
		*closed += p.value
		return
	}
	heap.Push(active, p)
}

// estimate always returns a finite value. A non-finite rule gives the panel
// an infinite error so it is bisected first.
func (ad *Adaptive) estimate(f func(float64) float64, a, b float64, depth int) (p panel) {
	p = panel{a: a, b: b, depth: depth}
	coarse := ad.fixed(f, a, b, ad.Order)
	fine := ad.fixed(f, a, b, 2*ad.Order)
	switch {
	case isFinite(fine) && isFinite(coarse):
		p.value, p.err = fine, math.Abs(fine-coarse)
	case isFinite(fine):
		p.value, p.err = fine, math.Inf(1)
	case isFinite(coarse):
		p.value, p.err = coarse, math.Inf(1)
	default:
		p.value, p.err = 0, math.Inf(1)
	}
	return
}

func (ad *Adaptive) fixed(f func(float64) float64, a, b float64, n int) float64 {
	ad.evals += n
	return quad.Fixed(f, a, b, n, quad.Legendre{}, 0)
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func ulp(x float64) float64 { return math.Nextafter(x, math.Inf(1)) - x }

type panel struct {
	a, b       float64
	value, err float64
	depth      int
}

// panelHeap is a max-heap on the panel error.
type panelHeap []panel

func (h panelHeap) Len() int            { return len(h) }
func (h panelHeap) Less(i, j int) bool  { return h[i].err > h[j].err }
func (h panelHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *panelHeap) Push(x interface{}) { *h = append(*h, x.(panel)) }
func (h *panelHeap) Pop() interface{} {
	old := *h
	p := old[len(old)-1]
	*h = old[:len(old)-1]
	return p
}

// Counting wraps an Integrator and counts calls to Integrate.
type Counting struct {
	Integrator
	Calls int
}

func (c *Counting) Integrate(f func(float64) float64, a, b float64) float64 {
	c.Calls++
	return c.Integrator.Integrate(f, a, b)
}
