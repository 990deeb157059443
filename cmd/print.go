package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/notargets/wquad/quadrature"
)

func printHeader(w io.Writer, pr quadrature.Problem, n int) {
	fmt.Fprintf(w, "Approximate evaluation of definite integrals\n")
	fmt.Fprintf(w, "   %s   n = %d\n\n", pr.Name, n)
}

// printVector prints values as one bordered row under symbol_0, symbol_1, ...
// headers.
func printVector(w io.Writer, symbol string, values []float64, prec int, note string) {
	headers := make([]string, len(values))
	cells := make([]string, len(values))
	for i, val := range values {
		headers[i] = fmt.Sprintf("%s_%d", symbol, i)
		cells[i] = fmt.Sprintf("%.*f", prec, val)
	}
	tw := newTable(w, headers)
	tw.Append(cells)
	tw.Render()
	if len(note) != 0 {
		fmt.Fprintf(w, "   <- %s\n", note)
	}
}

func newTable(w io.Writer, headers []string) (tw *tablewriter.Table) {
	tw = tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetHeader(headers)
	return
}

func printResult(w io.Writer, res *quadrature.Result) {
	fmt.Fprintf(w, "\n------------ reference ------------\n")
	fmt.Fprintf(w, "Integral by adaptive quadrature: %.12f\n", res.Exact)

	fmt.Fprintf(w, "\n------------ interpolatory formula ------------\n")
	printVector(w, "x", res.IQF.Nodes, 2, "nodes")
	printVector(w, "mu", res.IQFMoments, 5, "moments of the weight function")
	printVector(w, "A", res.IQF.Weights, 5, "weights")
	fmt.Fprintf(w, "Interpolatory formula value = %.12f\n", res.IQFValue)
	fmt.Fprintf(w, "Actual error = %.12f\n", res.IQFError)

	fmt.Fprintf(w, "\n------------ Gauss-type formula ------------\n")
	printVector(w, "mu", res.GTQFMoments, 5, "moments of the weight function")
	printVector(w, "a", res.Polynomial.Coeffs, 5, "coefficients of a_0 x^n + a_1 x^(n-1) + ... + a_n")
	printVector(w, "x", res.GTQF.Nodes, 5, "roots")
	printVector(w, "A", res.GTQF.Weights, 5, "weights")
	fmt.Fprintf(w, "Gauss-type formula value = %.14f\n", res.GTQFValue)
	fmt.Fprintf(w, "Actual error = %.14f\n", res.GTQFError)
}

func printReports(w io.Writer, res *quadrature.Result) {
	tw := newTable(w, []string{"formula", "value", "error"})
	for _, rep := range res.Reports() {
		tw.Append([]string{rep.Name, fmt.Sprintf("%.14f", rep.Approx), fmt.Sprintf("%.3e", rep.Error)})
	}
	tw.Render()
}
