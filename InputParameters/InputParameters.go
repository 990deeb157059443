package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. ghodss/yaml converts the
// document to JSON before decoding, so the keys are matched by the json tags.
// Keys must not be YAML 1.1 booleans: a bare N, Y, on or off is read as
// true or false and the entry is lost.
type InputParameters struct {
	Title          string  `json:"Title"`
	N              int     `json:"Nodes"`
	A              float64 `json:"A"`
	B              float64 `json:"B"`
	Moments        string  `json:"Moments"` // numeric or analytic
	Refiner        string  `json:"Refiner"` // secant or bisection
	SamplesPerNode int     `json:"SamplesPerNode"`
	Tolerance      float64 `json:"Tolerance"`
	MaxIterations  int     `json:"MaxIterations"`
	IntegratorTol  float64 `json:"IntegratorTol"`
}

func NewInputParameters() *InputParameters {
	return &InputParameters{
		Title:          "Weighted quadrature",
		N:              2,
		A:              0,
		B:              1,
		Moments:        "numeric",
		Refiner:        "secant",
		SamplesPerNode: 10,
		Tolerance:      1.e-12,
		MaxIterations:  100,
		IntegratorTol:  1.e-14,
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= Number of nodes\n", ip.N)
	fmt.Printf("[%8.5f, %8.5f]\t= Interval\n", ip.A, ip.B)
	fmt.Printf("[%s]\t\t= Moments\n", ip.Moments)
	fmt.Printf("[%s]\t\t= Refiner\n", ip.Refiner)
	fmt.Printf("[%d]\t\t\t= Samples per node\n", ip.SamplesPerNode)
	fmt.Printf("%8.2e\t\t= Refiner tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t= Refiner max iterations\n", ip.MaxIterations)
	fmt.Printf("%8.2e\t\t= Integrator tolerance\n", ip.IntegratorTol)
}

// Check rejects settings the solver cannot use. Interval bounds are checked
// by the solver against the weight function's domain.
func (ip *InputParameters) Check() error {
	switch {
	case ip.N < 1:
		return fmt.Errorf("number of nodes must be at least 1, have %d", ip.N)
	case ip.Moments != "numeric" && ip.Moments != "analytic":
		return fmt.Errorf("unknown moments %q, choose numeric or analytic", ip.Moments)
	case ip.SamplesPerNode < 1:
		return fmt.Errorf("samples per node must be at least 1, have %d", ip.SamplesPerNode)
	case ip.Tolerance <= 0 || ip.IntegratorTol <= 0:
		return fmt.Errorf("tolerances must be positive")
	case ip.MaxIterations < 1:
		return fmt.Errorf("max iterations must be at least 1, have %d", ip.MaxIterations)
	}
	return nil
}
