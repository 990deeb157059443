package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
)

var (
	csvFile string
)

// Reads the output of "wquad sweep" and reports, per study, how fast each
// formula's error falls as nodes are added.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a node count sweep")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cs := studies[k]
		fmt.Printf("Title = %s, Interval = [%g, %g]\n", cs.title, cs.a, cs.b)
		fmt.Printf("n, IQF error, GTQF error\n")
		for i := range cs.numNodes {
			fmt.Printf("%d, %.6e, %.6e\n", cs.numNodes[i], cs.iqfErr[i], cs.gtqfErr[i])
		}
		for _, s := range []struct {
			name string
			err  []float64
		}{{"IQF", cs.iqfErr}, {"GTQF", cs.gtqfErr}} {
			sum, err := Summarize(s.err)
			if err != nil {
				fmt.Printf("%s: %s\n", s.name, err)
				continue
			}
			fmt.Printf("%s: digits gained per node mean = %5.2f, median = %5.2f, stddev = %5.2f\n",
				s.name, sum.Mean, sum.Median, sum.StdDev)
		}
	}
}

type ConvergenceStudy struct {
	title           string
	a, b            float64
	numNodes        []int
	iqfErr, gtqfErr []float64
}

func NewConvergenceStudy(title string, a, b float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		a:     a,
		b:     b,
	}
}

func (cs *ConvergenceStudy) Add(numNodes int, iqfErr, gtqfErr float64) {
	cs.numNodes = append(cs.numNodes, numNodes)
	cs.iqfErr = append(cs.iqfErr, iqfErr)
	cs.gtqfErr = append(cs.gtqfErr, gtqfErr)
}

type Summary struct {
	Rates                []float64
	Mean, Median, StdDev float64
}

// Summarize computes log10(e_n / e_{n+1}) between consecutive node counts,
// skipping pairs where either error is zero, and its statistics.
func Summarize(errs []float64) (sum Summary, err error) {
	for i := 0; i+1 < len(errs); i++ {
		if errs[i] <= 0 || errs[i+1] <= 0 {
			continue
		}
		sum.Rates = append(sum.Rates, math.Log10(errs[i]/errs[i+1]))
	}
	if len(sum.Rates) == 0 {
		err = fmt.Errorf("need at least two non zero errors")
		return
	}
	if sum.Mean, err = stats.Mean(sum.Rates); err != nil {
		return
	}
	if sum.Median, err = stats.Median(sum.Rates); err != nil {
		return
	}
	sum.StdDev, err = stats.StandardDeviation(sum.Rates)
	return
}

func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	parse := func(txt string) (x float64) {
		if err == nil {
			x, err = strconv.ParseFloat(txt, 64)
		}
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 9 {
			return nil, fmt.Errorf("line %d: expected 9 fields, have %d", i+1, len(rec))
		}
		title := rec[0]
		n, errN := strconv.Atoi(rec[1])
		if errN != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, errN)
		}
		a, b := parse(rec[2]), parse(rec[3])
		iqfErr, gtqfErr := parse(rec[6]), parse(rec[8])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		key := fmt.Sprintf("%s[%s,%s]", title, rec[2], rec[3])
		if cs, ok = studies[key]; !ok {
			cs = NewConvergenceStudy(title, a, b)
			studies[key] = cs
		}
		cs.Add(n, iqfErr, gtqfErr)
	}
	return
}
