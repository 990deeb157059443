package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major dense matrix backed by gonum. Methods marked
// "Changes receiver" mutate and return the receiver so calls can be chained.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{M: m}
	return
}

func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Row(i int) []float64 {
	var (
		_, nc = m.Dims()
		r     = make([]float64, nc)
	)
	copy(r, m.M.RawRowView(i))
	return r
}

func (m Matrix) MulVec(x []float64) (y []float64) {
	var (
		nr, _ = m.Dims()
		yV    = mat.NewVecDense(nr, nil)
	)
	yV.MulVec(m.M, mat.NewVecDense(len(x), x))
	y = VecGetF64(yV)
	return
}

// NewPowerMatrix returns the nPow x len(x) matrix with M[i][j] = x[j]^i, the
// moment matching system for a quadrature rule on nodes x.
func NewPowerMatrix(x []float64, nPow int) (R Matrix) {
	R = NewMatrix(nPow, len(x))
	data := R.M.RawMatrix().Data
	nc := len(x)
	for i := 0; i < nPow; i++ {
		for j, xj := range x {
			data[j+i*nc] = POW(xj, i)
		}
	}
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from its main
// diagonal d0 and first off diagonal d1, len(d1) == len(d0)-1.
func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	var (
		N = len(d0)
	)
	if len(d1) != N-1 {
		panic(fmt.Errorf("off diagonal length %d does not match diagonal length %d", len(d1), N))
	}
	Tri = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		Tri.SetSym(i, i, d0[i])
		if i < N-1 {
			Tri.SetSym(i, i+1, d1[i])
		}
	}
	return
}
