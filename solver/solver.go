// Package solver is a reference, non-authoritative implementation of
// the core's solve(num_columns, triplets, rhs) -> x contract. It
// exists so the repository has a runnable end-to-end path; production
// deployments are expected to substitute a real iterative or
// multiscale least-squares solver, per the core's explicit non-goal
// of owning solver algorithms.
package solver

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/vidstige/field-interpolation/linsys"
)

// Solve accumulates triplets (duplicate (row, col) pairs are summed,
// per the core's data-model invariant) into a sparse matrix, forms
// the normal equations AᵀA x = Aᵀb, and solves the resulting dense
// square system. It returns nil when the normal equations are
// singular, matching the "empty result, caller substitutes zeros"
// failure contract.
func Solve(numColumns int, triplets []linsys.Triplet, rhs []float64) []float64 {
	numRows := len(rhs)
	if numRows == 0 || numColumns == 0 {
		return nil
	}

	dok := sparse.NewDOK(numRows, numColumns)
	for _, tr := range triplets {
		dok.Set(tr.Row, tr.Col, dok.At(tr.Row, tr.Col)+tr.Value)
	}
	a := dok.ToCSR()

	ata := mat.NewDense(numColumns, numColumns, nil)
	ata.Mul(a.T(), a)

	b := mat.NewVecDense(numRows, rhs)
	atb := mat.NewVecDense(numColumns, nil)
	atb.MulVec(a.T(), b)

	var x mat.VecDense
	if err := x.SolveVec(ata, atb); err != nil {
		return nil
	}

	result := make([]float64, numColumns)
	for i := range result {
		result[i] = x.AtVec(i)
	}
	return result
}
