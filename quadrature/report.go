package quadrature

import "math"

func AbsError(exact, approx float64) float64 { return math.Abs(exact - approx) }

type FormulaReport struct {
	Name          string
	Approx, Error float64
}

// Reports pairs each formula's value with its error against the reference.
func (res *Result) Reports() []FormulaReport {
	return []FormulaReport{
		{Name: "IQF", Approx: res.IQFValue, Error: res.IQFError},
		{Name: "GTQF", Approx: res.GTQFValue, Error: res.GTQFError},
	}
}
