package erroratt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidstige/field-interpolation/linsys"
)

func TestHeatmapS6(t *testing.T) {
	triplets := []linsys.Triplet{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 1},
	}
	rhs := []float64{2}
	solution := []float64{0, 0}

	heatmap := Heatmap(triplets, rhs, solution, 2)
	assert.Equal(t, []float64{2, 2}, heatmap)
}

func TestHeatmapConservation(t *testing.T) {
	triplets := []linsys.Triplet{
		{Row: 0, Col: 0, Value: 2},
		{Row: 0, Col: 1, Value: 3},
		{Row: 1, Col: 1, Value: 1},
		{Row: 1, Col: 2, Value: 4},
	}
	rhs := []float64{5, -1}
	solution := []float64{1, 0.5, -0.25}

	heatmap := Heatmap(triplets, rhs, solution, 3)

	residual0 := rhs[0] - (2*solution[0] + 3*solution[1])
	residual1 := rhs[1] - (1*solution[1] + 4*solution[2])
	total := residual0*residual0 + residual1*residual1

	sum := 0.0
	for _, v := range heatmap {
		sum += v
	}
	assert.InDelta(t, total, sum, 1e-9)
}

func TestHeatmapSkipsZeroEnergyRow(t *testing.T) {
	triplets := []linsys.Triplet{} // a row with no triplets can't appear per invariants, but
	rhs := []float64{0}            // a zero-rhs, zero-coefficient row should not panic if seen.
	solution := []float64{}

	heatmap := Heatmap(triplets, rhs, solution, 0)
	assert.Equal(t, []float64{}, heatmap)
}
