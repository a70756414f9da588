// Package erroratt produces a per-cell "blame" heatmap attributing
// residual error from a solved system back to the unknowns that
// participated in each equation, in proportion to their leverage
// (squared coefficient) within that equation.
package erroratt

import "github.com/vidstige/field-interpolation/linsys"

// Heatmap computes, for every column referenced by triplets, the
// leverage-weighted share of squared residual error it is responsible
// for. solution must have one entry per unknown column; rhs is the
// original right-hand side the triplets were assembled against.
func Heatmap(triplets []linsys.Triplet, rhs []float64, solution []float64, numUnknowns int) []float64 {
	residual := make([]float64, len(rhs))
	copy(residual, rhs)
	rowEnergy := make([]float64, len(rhs))

	for _, tr := range triplets {
		residual[tr.Row] -= tr.Value * solution[tr.Col]
		rowEnergy[tr.Row] += tr.Value * tr.Value
	}

	squaredResidual := make([]float64, len(rhs))
	for row, r := range residual {
		squaredResidual[row] = r * r
	}

	heatmap := make([]float64, numUnknowns)
	for _, tr := range triplets {
		energy := rowEnergy[tr.Row]
		if energy == 0 {
			continue
		}
		blameFraction := (tr.Value * tr.Value) / energy
		heatmap[tr.Col] += blameFraction * squaredResidual[tr.Row]
	}
	return heatmap
}
