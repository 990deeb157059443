package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/wquad/quadrature"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run n = 1..nmax and write the values and errors as CSV",
	Long: `
Writes one CSV row per node count, suitable as input to tools/convOrder,

wquad sweep --nmax 5 -a 0 -b 1 -o sweep.csv`,
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
		w := io.Writer(os.Stdout)
		if file := viper.GetString("output"); len(file) != 0 {
			f, err := os.Create(file)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return writeSweep(w, s, ip.Title, viper.GetInt("nmax"), ip.A, ip.B)
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	addSolverFlags(SweepCmd)
	addIntervalFlags(SweepCmd)
	SweepCmd.Flags().Int("nmax", 5, "largest node count")
	SweepCmd.Flags().StringP("output", "o", "", "CSV file to write, default stdout")
}

var sweepHeader = []string{"title", "n", "a", "b", "exact", "iqf", "iqf_error", "gtqf", "gtqf_error"}

// writeSweep stops at the first node count that fails.
func writeSweep(w io.Writer, s *quadrature.Solver, title string, nMax int, a, b float64) (err error) {
	if nMax < 1 {
		return fmt.Errorf("nmax must be at least 1, have %d", nMax)
	}
	cw := csv.NewWriter(w)
	if err = cw.Write(sweepHeader); err != nil {
		return
	}
	ff := func(x float64) string { return strconv.FormatFloat(x, 'g', 17, 64) }
	for n := 1; n <= nMax; n++ {
		var res *quadrature.Result
		if res, err = s.RunOnce(n, a, b); err != nil {
			cw.Flush()
			return fmt.Errorf("n = %d: %w", n, err)
		}
		if err = cw.Write([]string{
			title, strconv.Itoa(n), ff(a), ff(b), ff(res.Exact),
			ff(res.IQFValue), ff(res.IQFError), ff(res.GTQFValue), ff(res.GTQFError),
		}); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
