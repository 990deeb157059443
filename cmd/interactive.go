package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notargets/wquad/quadrature"
)

// InteractiveCmd represents the interactive command
var InteractiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for integration limits and compute the formulas repeatedly",
	Long: `
Prompts for the limits A and B (empty input keeps the default), computes both
formulas and asks whether to continue with new limits,

wquad interactive -n 3`,
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
		printHeader(os.Stdout, s.Problem, ip.N)
		return repl(os.Stdin, os.Stdout, s, ip.N, ip.A, ip.B)
	},
}

func init() {
	rootCmd.AddCommand(InteractiveCmd)
	addSolverFlags(InteractiveCmd)
}

// repl prompts for limits until the user declines to continue or input ends.
// Invalid limits re-prompt, a failed computation is reported and the loop
// returns to prompting.
func repl(in io.Reader, out io.Writer, s *quadrature.Solver, n int, defA, defB float64) error {
	var (
		sc = bufio.NewScanner(in)
	)
	for {
		a, ok := promptFloat(sc, out, "A", "lower limit of integration", defA)
		if !ok {
			return nil
		}
		b, ok := promptFloat(sc, out, "B", "upper limit of integration", defB)
		if !ok {
			return nil
		}
		res, err := s.RunOnce(n, a, b)
		var ie *quadrature.InvalidIntervalError
		switch {
		case errors.As(err, &ie):
			fmt.Fprintf(out, "error: %s\n", ie.Reason)
			continue
		case err != nil:
			fmt.Fprintf(out, "error: computation failed: %v\n", err)
		default:
			printResult(out, res)
		}
		fmt.Fprintf(out, ">>> Enter \"1\" to enter new limits: ")
		if !sc.Scan() || strings.TrimSpace(sc.Text()) != "1" {
			fmt.Fprintf(out, "\nExiting...\n")
			return sc.Err()
		}
	}
}

// promptFloat reads one value, re-prompting on unparsable input. An empty
// line selects the default. ok is false when the input is exhausted.
func promptFloat(sc *bufio.Scanner, out io.Writer, name, description string, def float64) (val float64, ok bool) {
	for {
		fmt.Fprintf(out, "Enter %s, the %s (default %g): ", name, description, def)
		if !sc.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(sc.Text())
		if len(text) == 0 {
			return def, true
		}
		var err error
		if val, err = strconv.ParseFloat(text, 64); err == nil {
			return val, true
		}
		fmt.Fprintf(out, "error: %q is not a number\n", text)
	}
}
