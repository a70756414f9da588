package assembler

import (
	"github.com/vidstige/field-interpolation/interp"
	"github.com/vidstige/field-interpolation/lattice"
	"github.com/vidstige/field-interpolation/linsys"
)

// AddValueConstraint interpolates the field at pos and constrains the
// renormalized interpolated value to equal value, weighted by weight.
// It reports false (and leaves sys unchanged) when weight is zero or
// no lattice corner straddling pos is in bounds.
func AddValueConstraint(sys *linsys.System, geom lattice.Geometry, pos []float64, value, weight float64) bool {
	if weight == 0 {
		return false
	}
	samples := interp.Corners(geom, pos, 0)
	if len(samples) == 0 {
		return false
	}

	terms := make([]linsys.Term, len(samples))
	weightSum := 0.0
	for i, s := range samples {
		terms[i] = linsys.Term{Col: s.Index, Coeff: s.Weight}
		weightSum += s.Weight
	}
	// AppendEquation scales coefficients by `weight` itself, so pass
	// natural-scale interpolation weights and rhs = weightSum*value;
	// the resulting row is Σ (w_i*weight)*x_i = (weightSum*value)*weight,
	// i.e. the renormalized interpolated field equals value.
	sys.AppendEquation(weight, weightSum*value, terms)
	return true
}
