// Package interp implements multilinear interpolation over the 2^N
// corners of the lattice cell straddling a continuous position.
package interp

import (
	"math"

	"github.com/vidstige/field-interpolation/lattice"
)

// Sample is one admitted lattice corner contributing to an
// interpolated value: its linear index and its multilinear weight.
type Sample struct {
	Index  int
	Weight float64
}

// Corners computes up to 2^N samples for pos on the given lattice.
// extraBound should be 0 when only the corner itself will be read, or
// 1 when the caller also needs to access coord[d]+1 for every d (a
// gradient stencil). Corners that would violate bounds (including the
// extra bound) are skipped; weights of admitted corners do not
// generally sum to 1 when some corners were dropped.
func Corners(geom lattice.Geometry, pos []float64, extraBound int) []Sample {
	n := geom.Dim()
	floor := make([]int, n)
	frac := make([]float64, n)
	for d, p := range pos {
		f := math.Floor(p)
		floor[d] = int(f)
		frac[d] = p - f
	}

	sizes := geom.Sizes()
	strides := geom.Strides()
	numCorners := 1 << uint(n)
	samples := make([]Sample, 0, numCorners)

	for i := 0; i < numCorners; i++ {
		index := 0
		weight := 1.0
		inside := true
		for d := 0; d < n; d++ {
			bit := (i >> uint(d)) & 1
			coord := floor[d] + bit
			index += strides[d] * coord
			if bit == 1 {
				weight *= frac[d]
			} else {
				weight *= 1 - frac[d]
			}
			if coord < 0 || coord+extraBound >= sizes[d] {
				inside = false
			}
		}
		if inside {
			samples = append(samples, Sample{Index: index, Weight: weight})
		}
	}
	return samples
}

// WeightSum returns the sum of sample weights, used by callers that
// need the renormalization constant for a partial (boundary-clipped)
// kernel.
func WeightSum(samples []Sample) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s.Weight
	}
	return sum
}

// CellIndex returns the linear index of the lattice cell whose lower
// corner is floor(pos), or -1 if pos[d]+1 does not fit within
// sizes[d] for some dimension (i.e. there is no full cell here).
func CellIndex(geom lattice.Geometry, pos []float64) int {
	sizes := geom.Sizes()
	strides := geom.Strides()
	index := 0
	for d, p := range pos {
		coord := int(math.Floor(p))
		if coord < 0 || coord+1 >= sizes[d] {
			return -1
		}
		index += coord * strides[d]
	}
	return index
}
