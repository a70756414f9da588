package assembler

import "fmt"

// GradientKernel selects how a gradient observation is turned into
// finite-difference equations.
type GradientKernel int

const (
	// NearestNeighbor imposes one one-sided difference per axis at
	// the containing cell's lower corner.
	NearestNeighbor GradientKernel = iota
	// CellEdges averages directional differences over all parallel
	// edges of the containing cell (Calakli & Taubin).
	CellEdges
	// LinearInterpolation spreads the constraint across the
	// neighboring staggered cell-center samples.
	LinearInterpolation
)

func (k GradientKernel) String() string {
	switch k {
	case NearestNeighbor:
		return "NearestNeighbor"
	case CellEdges:
		return "CellEdges"
	case LinearInterpolation:
		return "LinearInterpolation"
	default:
		return fmt.Sprintf("GradientKernel(%d)", int(k))
	}
}

// Weights configures the regularizer (model priors) and the amount of
// trust placed in data (value/gradient constraints). All fields are
// non-negative; zero disables the corresponding term.
type Weights struct {
	DataPos            float64
	DataGradient       float64
	Model0             float64
	Model1             float64
	Model2             float64
	Model3             float64
	Model4             float64
	GradientSmoothness float64
	GradientKernel     GradientKernel
}
