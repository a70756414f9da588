package assembler

import (
	"github.com/vidstige/field-interpolation/lattice"
	"github.com/vidstige/field-interpolation/linsys"
)

// AddModelConstraints emits the finite-difference smoothness priors
// (orders 0-4) and the cross-partial gradient-smoothness prior for one
// cell, along dimension d. coord is the cell's full coordinate, index
// its linear index, and d the dimension the stencil runs along. Each
// prior only fires when weights enable it and the full stencil fits
// within the lattice.
func AddModelConstraints(sys *linsys.System, geom lattice.Geometry, weights Weights, coord []int, index, d int) {
	size := geom.Sizes()[d]
	stride := geom.Strides()[d]
	c := coord[d]

	if weights.Model0 > 0 && c >= 0 && c < size {
		sys.AppendEquation(weights.Model0, 0, []linsys.Term{
			{Col: index, Coeff: 1},
		})
	}

	if weights.Model1 > 0 && c >= 0 && c+1 < size {
		sys.AppendEquation(weights.Model1, 0, []linsys.Term{
			{Col: index, Coeff: -1},
			{Col: index + stride, Coeff: +1},
		})
	}

	if weights.Model2 > 0 && c >= 0 && c+2 < size {
		sys.AppendEquation(weights.Model2, 0, []linsys.Term{
			{Col: index, Coeff: +1},
			{Col: index + stride, Coeff: -2},
			{Col: index + 2*stride, Coeff: +1},
		})
	}

	if weights.Model3 > 0 && c >= 0 && c+3 < size {
		sys.AppendEquation(weights.Model3, 0, []linsys.Term{
			{Col: index, Coeff: +1},
			{Col: index + stride, Coeff: -3},
			{Col: index + 2*stride, Coeff: +3},
			{Col: index + 3*stride, Coeff: -1},
		})
	}

	if weights.Model4 > 0 && c >= 0 && c+4 < size {
		sys.AppendEquation(weights.Model4, 0, []linsys.Term{
			{Col: index, Coeff: +1},
			{Col: index + stride, Coeff: -4},
			{Col: index + 2*stride, Coeff: +6},
			{Col: index + 3*stride, Coeff: -4},
			{Col: index + 4*stride, Coeff: +1},
		})
	}

	if weights.GradientSmoothness > 0 && c >= 0 && c+1 < size {
		sizes := geom.Sizes()
		strides := geom.Strides()
		for e := 0; e < geom.Dim(); e++ {
			if e == d {
				continue
			}
			if coord[e]+1 >= sizes[e] {
				continue
			}
			sys.AppendEquation(weights.GradientSmoothness, 0, []linsys.Term{
				{Col: index, Coeff: -1},
				{Col: index + stride, Coeff: +1},
				{Col: index + strides[e], Coeff: +1},
				{Col: index + stride + strides[e], Coeff: -1},
			})
		}
	}
}
