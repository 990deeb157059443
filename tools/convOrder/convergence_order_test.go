package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	data := `title,n,a,b,exact,iqf,iqf_error,gtqf,gtqf_error
unit,1,0,1,1.03,1.12,1e-1,0.99,1e-2
unit,2,0,1,1.03,1.028,1e-3,1.0298,1e-5
unit,3,0,1,1.03,1.0302,1e-5,1.03,1e-8
wide,1,-1,1,2.1,2.8,0.7,1.9,0.2
`
	studies, err := readCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, studies, 2)
	cs := studies["unit[0,1]"]
	require.NotNil(t, cs)
	assert.Equal(t, []int{1, 2, 3}, cs.numNodes)
	assert.Equal(t, []float64{1e-2, 1e-5, 1e-8}, cs.gtqfErr)

	sum, err := Summarize(cs.iqfErr)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2}, sum.Rates, 1.e-12)
	assert.InDelta(t, 2, sum.Mean, 1.e-12)
	assert.InDelta(t, 0, sum.StdDev, 1.e-12)
	sum, err = Summarize(cs.gtqfErr)
	require.NoError(t, err)
	assert.InDelta(t, 3, sum.Median, 1.e-12)

	_, err = Summarize(studies["wide[-1,1]"].iqfErr)
	assert.Error(t, err)
	_, err = Summarize([]float64{1e-3, 0, 0})
	assert.Error(t, err)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := readCSV(strings.NewReader("h\nunit,x,0,1,1,1,1,1,1\n"))
	assert.Error(t, err)
	_, err = readCSV(strings.NewReader("h\nunit,1,0,1,1,1,oops,1,1\n"))
	assert.Error(t, err)
	_, err = readCSV(strings.NewReader("h\nunit,1,0\n"))
	assert.Error(t, err)
}
