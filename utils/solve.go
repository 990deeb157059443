package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SingularSystemError is returned when a linear system cannot be solved
// because its matrix is singular or numerically rank deficient.
type SingularSystemError struct {
	Dim  int
	Cond float64
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("unable to solve, %dx%d matrix is singular (condition number %g)", e.Dim, e.Dim, e.Cond)
}

// Solve returns x such that M x = v using an LU factorization with partial
// pivoting. M must be square and len(v) must match its dimension.
func Solve(M Matrix, v []float64) (x []float64, err error) {
	var (
		nr, nc = M.Dims()
		lu     mat.LU
	)
	if nr != nc {
		err = fmt.Errorf("unable to solve, matrix is not square: %dx%d", nr, nc)
		return
	}
	if len(v) != nr {
		err = fmt.Errorf("unable to solve, right hand side length %d does not match dimension %d", len(v), nr)
		return
	}
	lu.Factorize(M.M)
	cond := lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
		err = &SingularSystemError{Dim: nr, Cond: cond}
		return
	}
	xV := mat.NewVecDense(nr, nil)
	if err = lu.SolveVecTo(xV, false, mat.NewVecDense(nr, v)); err != nil {
		err = &SingularSystemError{Dim: nr, Cond: cond}
		return
	}
	x = VecGetF64(xV)
	if !IsFinite(x) {
		x = nil
		err = &SingularSystemError{Dim: nr, Cond: cond}
	}
	return
}
