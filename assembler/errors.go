package assembler

import "errors"

// ErrUnknownGradientKernel is a programmer error: the caller asked
// for a GradientKernel value the assembler does not implement. It is
// fatal to the call, unlike OutOfBounds which is reported as a bool.
var ErrUnknownGradientKernel = errors.New("assembler: unknown gradient kernel")
