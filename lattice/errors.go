package lattice

import "errors"

// ErrInvalidLattice is returned (wrapped) by New when the requested
// dimensionality or sizes violate the lattice preconditions.
var ErrInvalidLattice = errors.New("lattice: invalid lattice")
