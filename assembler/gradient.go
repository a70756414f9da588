package assembler

import (
	"github.com/vidstige/field-interpolation/interp"
	"github.com/vidstige/field-interpolation/lattice"
	"github.com/vidstige/field-interpolation/linsys"
)

// AddGradientConstraint imposes the observed gradient g at pos using
// the selected kernel, weighted by weight. It reports false when
// weight is zero or the kernel could not place a stencil (no cell, or
// no interpolation samples, depending on kernel); it panics with
// ErrUnknownGradientKernel for an unrecognized kernel value, matching
// the programmer-error class of failure described for this case.
func AddGradientConstraint(sys *linsys.System, geom lattice.Geometry, pos, g []float64, weight float64, kernel GradientKernel) bool {
	if weight == 0 {
		return false
	}
	switch kernel {
	case NearestNeighbor:
		return addNearestNeighborGradient(sys, geom, pos, g, weight)
	case CellEdges:
		return addCellEdgesGradient(sys, geom, pos, g, weight)
	case LinearInterpolation:
		return addLinearInterpolationGradient(sys, geom, pos, g, weight)
	default:
		panic(ErrUnknownGradientKernel)
	}
}

func addNearestNeighborGradient(sys *linsys.System, geom lattice.Geometry, pos, g []float64, weight float64) bool {
	index := interp.CellIndex(geom, pos)
	if index < 0 {
		return false
	}
	strides := geom.Strides()
	for d := 0; d < geom.Dim(); d++ {
		sys.AppendEquation(weight, g[d], []linsys.Term{
			{Col: index, Coeff: -1},
			{Col: index + strides[d], Coeff: +1},
		})
	}
	return true
}

func addCellEdgesGradient(sys *linsys.System, geom lattice.Geometry, pos, g []float64, weight float64) bool {
	index := interp.CellIndex(geom, pos)
	if index < 0 {
		return false
	}
	n := geom.Dim()
	strides := geom.Strides()
	numCorners := 1 << uint(n)
	termWeight := 2.0 / float64(numCorners)

	for d := 0; d < n; d++ {
		terms := make([]linsys.Term, numCorners)
		for corner := 0; corner < numCorners; corner++ {
			cornerIndex := index
			for axis := 0; axis < n; axis++ {
				if (corner>>uint(axis))&1 == 1 {
					cornerIndex += strides[axis]
				}
			}
			sign := -1.0
			if (corner>>uint(d))&1 == 1 {
				sign = +1.0
			}
			terms[corner] = linsys.Term{Col: cornerIndex, Coeff: sign * termWeight}
		}
		sys.AppendEquation(weight, g[d], terms)
	}
	return true
}

func addLinearInterpolationGradient(sys *linsys.System, geom lattice.Geometry, pos, g []float64, weight float64) bool {
	n := geom.Dim()
	shifted := make([]float64, n)
	for d, p := range pos {
		shifted[d] = p - 0.5
	}
	samples := interp.Corners(geom, shifted, 1)
	if len(samples) == 0 {
		return false
	}

	strides := geom.Strides()
	for d := 0; d < n; d++ {
		terms := make([]linsys.Term, 0, 2*len(samples))
		weightSum := 0.0
		for _, s := range samples {
			terms = append(terms,
				linsys.Term{Col: s.Index, Coeff: -s.Weight},
				linsys.Term{Col: s.Index + strides[d], Coeff: +s.Weight},
			)
			weightSum += s.Weight
		}
		sys.AppendEquation(weight, weightSum*g[d], terms)
	}
	return true
}
