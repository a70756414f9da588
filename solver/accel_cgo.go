//go:build cgo
// +build cgo

package solver

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("solver: using netlib to accelerate normal-equation BLAS")
}
