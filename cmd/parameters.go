package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/wquad/InputParameters"
	"github.com/notargets/wquad/integrator"
	"github.com/notargets/wquad/quadrature"
	"github.com/notargets/wquad/rootfind"
)

// addSolverFlags registers the flags shared by every command that runs the
// solver. Defaults come from InputParameters.NewInputParameters.
func addSolverFlags(cmd *cobra.Command) {
	def := InputParameters.NewInputParameters()
	cmd.Flags().IntP("nodes", "n", def.N, "number of nodes")
	cmd.Flags().StringP("inputParameters", "I", "", "YAML file of input parameters, flags override its values")
	cmd.Flags().String("moments", def.Moments, "moment evaluation: numeric (adaptive quadrature) or analytic (closed form)")
	cmd.Flags().String("refiner", def.Refiner, "root refinement inside each bracket: secant or bisection")
	cmd.Flags().Int("samples", def.SamplesPerNode, "bracket scan segments per node")
	cmd.Flags().Float64("tol", def.Tolerance, "root refinement tolerance")
	cmd.Flags().Int("maxIter", def.MaxIterations, "root refinement iteration cap")
	cmd.Flags().Float64("integratorTol", def.IntegratorTol, "adaptive integrator absolute and relative tolerance")
	cmd.Flags().BoolP("verbose", "v", false, "print integrator evaluation counts")
}

func addIntervalFlags(cmd *cobra.Command) {
	def := InputParameters.NewInputParameters()
	cmd.Flags().Float64P("a", "a", def.A, "lower limit of integration")
	cmd.Flags().Float64P("b", "b", def.B, "upper limit of integration")
}

func bindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// loadParameters layers defaults, the -I file, then the config file,
// environment and any flag given on the command line.
func loadParameters() (ip *InputParameters.InputParameters, err error) {
	ip = InputParameters.NewInputParameters()
	if file := viper.GetString("inputParameters"); len(file) != 0 {
		var data []byte
		if data, err = os.ReadFile(file); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", file, err)
		}
	}
	if viper.IsSet("nodes") {
		ip.N = viper.GetInt("nodes")
	}
	if viper.IsSet("a") {
		ip.A = viper.GetFloat64("a")
	}
	if viper.IsSet("b") {
		ip.B = viper.GetFloat64("b")
	}
	if viper.IsSet("moments") {
		ip.Moments = viper.GetString("moments")
	}
	if viper.IsSet("refiner") {
		ip.Refiner = viper.GetString("refiner")
	}
	if viper.IsSet("samples") {
		ip.SamplesPerNode = viper.GetInt("samples")
	}
	if viper.IsSet("tol") {
		ip.Tolerance = viper.GetFloat64("tol")
	}
	if viper.IsSet("maxIter") {
		ip.MaxIterations = viper.GetInt("maxIter")
	}
	if viper.IsSet("integratorTol") {
		ip.IntegratorTol = viper.GetFloat64("integratorTol")
	}
	err = ip.Check()
	return
}

// NewSolver builds a solver for the default problem from input parameters.
func NewSolver(ip *InputParameters.InputParameters) (s *quadrature.Solver, err error) {
	if err = ip.Check(); err != nil {
		return
	}
	s = quadrature.NewSolver(quadrature.DefaultProblem())
	ad := integrator.NewAdaptive()
	ad.AbsTol, ad.RelTol = ip.IntegratorTol, ip.IntegratorTol
	s.Integrator = ad
	if ip.Moments == "analytic" {
		s.Moments = quadrature.NewSqrtMoments()
	}
	var r rootfind.Refiner
	if r, err = rootfind.New(ip.Refiner); err != nil {
		return nil, err
	}
	switch rf := r.(type) {
	case *rootfind.Secant:
		rf.Tol, rf.MaxIter = ip.Tolerance, ip.MaxIterations
	case *rootfind.Bisection:
		rf.Tol, rf.MaxIter = ip.Tolerance, ip.MaxIterations
	}
	s.Refiner = r
	s.SamplesPerNode = ip.SamplesPerNode
	return
}
