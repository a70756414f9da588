package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidstige/field-interpolation/lattice"
	"github.com/vidstige/field-interpolation/linsys"
)

func TestModelSecondOrderS3(t *testing.T) {
	g, err := lattice.New([]int{4})
	assert.NoError(t, err)
	sys := linsys.New()
	weights := Weights{Model2: 1}
	for index := 0; index < g.NumCells(); index++ {
		coord := g.CoordOf(index)
		AddModelConstraints(sys, g, weights, coord, index, 0)
	}
	assert.Equal(t, 2, sys.RowCount())
	assert.ElementsMatch(t, []linsys.Triplet{
		{Row: 0, Col: 0, Value: +1},
		{Row: 0, Col: 1, Value: -2},
		{Row: 0, Col: 2, Value: +1},
		{Row: 1, Col: 1, Value: +1},
		{Row: 1, Col: 2, Value: -2},
		{Row: 1, Col: 3, Value: +1},
	}, sys.Triplets())
}

// maxResidual evaluates Σ coeff*field[col] for every row of sys against
// field, returning the max absolute residual.
func maxResidual(sys *linsys.System, field []float64) float64 {
	sums := make([]float64, sys.RowCount())
	for _, tr := range sys.Triplets() {
		sums[tr.Row] += tr.Value * field[tr.Col]
	}
	maxAbs := 0.0
	for row, sum := range sums {
		residual := sum - sys.Rhs()[row]
		if residual < 0 {
			residual = -residual
		}
		if residual > maxAbs {
			maxAbs = residual
		}
	}
	return maxAbs
}

// polynomialField evaluates a polynomial of degree < k (coefficients
// low-to-high) at every cell coordinate along dimension 0.
func polynomialField(g lattice.Geometry, coeffs []float64) []float64 {
	field := make([]float64, g.NumCells())
	for index := range field {
		c := float64(g.CoordOf(index)[0])
		value, power := 0.0, 1.0
		for _, coeff := range coeffs {
			value += coeff * power
			power *= c
		}
		field[index] = value
	}
	return field
}

func TestFiniteDifferenceNullSpace(t *testing.T) {
	g, err := lattice.New([]int{6})
	assert.NoError(t, err)

	// model_k's stencil is the k-th finite difference, which
	// annihilates every polynomial of degree < k; model_0 is the
	// degenerate case (only the zero field is in its null space,
	// since it is a direct pull-to-zero rather than a difference).
	cases := []struct {
		weights Weights
		coeffs  []float64 // polynomial of degree < k
	}{
		{Weights{Model0: 1}, []float64{0}},
		{Weights{Model1: 1}, []float64{3.5}},
		{Weights{Model2: 1}, []float64{1, -2}},
		{Weights{Model3: 1}, []float64{1, -2, 0.5}},
		{Weights{Model4: 1}, []float64{1, -2, 0.5, 4}},
	}

	for _, c := range cases {
		sys := linsys.New()
		for index := 0; index < g.NumCells(); index++ {
			coord := g.CoordOf(index)
			AddModelConstraints(sys, g, c.weights, coord, index, 0)
		}
		field := polynomialField(g, c.coeffs)
		assert.InDelta(t, 0, maxResidual(sys, field), 1e-9)
	}
}

func TestCrossPartialNullSpaceAffine(t *testing.T) {
	g, err := lattice.New([]int{4, 4})
	assert.NoError(t, err)
	sys := linsys.New()
	weights := Weights{GradientSmoothness: 1}
	for index := 0; index < g.NumCells(); index++ {
		coord := g.CoordOf(index)
		for d := 0; d < g.Dim(); d++ {
			AddModelConstraints(sys, g, weights, coord, index, d)
		}
	}

	a := []float64{1.5, -2.0}
	b := 3.0
	field := make([]float64, g.NumCells())
	for index := range field {
		coord := g.CoordOf(index)
		value := b
		for d, c := range coord {
			value += a[d] * float64(c)
		}
		field[index] = value
	}
	assert.InDelta(t, 0, maxResidual(sys, field), 1e-9)
}
