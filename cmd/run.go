package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/wquad/integrator"
	"github.com/notargets/wquad/quadrature"
	"github.com/notargets/wquad/utils"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute both quadrature formulas once and print every intermediate",
	Long: `
Computes the reference integral, the interpolatory formula on n+1 equally
spaced nodes and the Gauss-type formula on n moment derived roots,

wquad run -n 3 -a 0 -b 1 --moments analytic`,
	PreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := loadParameters()
		if err != nil {
			return err
		}
		s, err := NewSolver(ip)
		if err != nil {
			return err
		}
		if viper.GetBool("verbose") {
			ip.Print()
		}
		printHeader(os.Stdout, s.Problem, ip.N)
		res, err := s.RunOnce(ip.N, ip.A, ip.B)
		if err != nil {
			return err
		}
		printResult(os.Stdout, res)
		fmt.Println()
		printReports(os.Stdout, res)
		if viper.GetBool("verbose") {
			if ad, ok := s.Integrator.(*integrator.Adaptive); ok {
				fmt.Printf("Integrand evaluations: %d\n", ad.Evals())
			}
		}
		if viper.GetBool("graph") {
			plotPolynomial(res, time.Duration(viper.GetInt("delay"))*time.Millisecond)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	addSolverFlags(RunCmd)
	addIntervalFlags(RunCmd)
	RunCmd.Flags().BoolP("graph", "g", false, "plot the orthogonal polynomial and its roots")
	RunCmd.Flags().IntP("delay", "d", 10000, "milliseconds to display the plot")
}

func plotPolynomial(res *quadrature.Result, delay time.Duration) {
	var (
		iv = res.Interval
		x  = floats.Span(make([]float64, 201), iv.A, iv.B)
		p  = make([]float64, len(x))
	)
	for i, xi := range x {
		p[i] = res.Polynomial.Eval(xi)
	}
	fMin, fMax := floats.Min(p), floats.Max(p)
	pad := 0.1 * (fMax - fMin)
	lc := utils.NewLineChart(1280, 720, iv.A, iv.B, fMin-pad, fMax+pad)
	lc.Plot(0, x, p, -0.8, "p(x)")
	lc.Plot(0, []float64{iv.A, iv.B}, []float64{0, 0}, 0, "zero")
	lc.Points(delay, res.GTQF.Nodes, make([]float64, res.GTQF.Len()), 0.8, "roots")
}
