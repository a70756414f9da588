// Package fieldbuilder is the high-level driver that wires a lattice
// geometry, a point cloud, and a set of weights into an assembled
// linsys.System ready for an external solver.
package fieldbuilder

import (
	"fmt"

	"github.com/vidstige/field-interpolation/assembler"
	"github.com/vidstige/field-interpolation/lattice"
	"github.com/vidstige/field-interpolation/linsys"
)

// Point is one observed sample: a continuous position in lattice
// coordinates, an optional surface normal (gradient target), and an
// optional per-point weight (defaults to 1 when nil).
type Point struct {
	Position []float64
	Normal   []float64
	Weight   *float64
}

// Result bundles the assembled system with the lattice it was built
// against and the number of unknowns (one per cell), the handoff to
// an external solver.
type Result struct {
	System      *linsys.System
	Geometry    lattice.Geometry
	NumUnknowns int
}

// Build constructs the lattice, installs model priors for every cell,
// and installs data constraints for every point, returning the
// assembled system. Every point must have len(Position) == len(sizes);
// a mismatched point is a programmer error and returns an error
// immediately rather than silently truncating or padding.
func Build(sizes []int, weights assembler.Weights, points []Point) (Result, error) {
	geom, err := lattice.New(sizes)
	if err != nil {
		return Result{}, err
	}

	sys := linsys.New()
	installModelPriors(sys, geom, weights)

	for i, p := range points {
		if len(p.Position) != geom.Dim() {
			return Result{}, fmt.Errorf("fieldbuilder: point %d has %d dimensions, want %d", i, len(p.Position), geom.Dim())
		}
		pointWeight := 1.0
		if p.Weight != nil {
			pointWeight = *p.Weight
		}

		assembler.AddValueConstraint(sys, geom, p.Position, 0, pointWeight*weights.DataPos)

		if p.Normal != nil {
			if len(p.Normal) != geom.Dim() {
				return Result{}, fmt.Errorf("fieldbuilder: point %d normal has %d dimensions, want %d", i, len(p.Normal), geom.Dim())
			}
			assembler.AddGradientConstraint(sys, geom, p.Position, p.Normal, pointWeight*weights.DataGradient, weights.GradientKernel)
		}
	}

	return Result{System: sys, Geometry: geom, NumUnknowns: geom.NumCells()}, nil
}

func installModelPriors(sys *linsys.System, geom lattice.Geometry, weights assembler.Weights) {
	for index := 0; index < geom.NumCells(); index++ {
		coord := geom.CoordOf(index)
		for d := 0; d < geom.Dim(); d++ {
			assembler.AddModelConstraints(sys, geom, weights, coord, index, d)
		}
	}
}
