package main

import (
	"fmt"
	"sort"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/vidstige/field-interpolation/config"
	"github.com/vidstige/field-interpolation/erroratt"
	"github.com/vidstige/field-interpolation/fieldbuilder"
	"github.com/vidstige/field-interpolation/solver"
)

var (
	cpuProfile bool
	topBlamed  int
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct [scene.yaml]",
	Short: "Build, solve, and summarize one reconstruction job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(defaultProfileDir())).Stop()
		}
		return runReconstruct(args[0])
	},
}

func init() {
	reconstructCmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile while reconstructing")
	reconstructCmd.Flags().IntVar(&topBlamed, "top", 5, "number of highest-blame cells to report")
	rootCmd.AddCommand(reconstructCmd)
}

func runReconstruct(path string) error {
	scene, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := scene.Validate(); err != nil {
		return err
	}
	scene.Print()

	weights, err := scene.ToWeights()
	if err != nil {
		return err
	}

	result, err := fieldbuilder.Build(scene.Sizes, weights, scene.ToPoints())
	if err != nil {
		return err
	}

	x := solver.Solve(result.NumUnknowns, result.System.Triplets(), result.System.Rhs())
	if x == nil {
		x = make([]float64, result.NumUnknowns)
	}

	heatmap := erroratt.Heatmap(result.System.Triplets(), result.System.Rhs(), x, result.NumUnknowns)

	fmt.Printf("rows=%d triplets=%d unknowns=%d\n", result.System.RowCount(), result.System.TripletCount(), result.NumUnknowns)
	fmt.Printf("solution norm = %.6f\n", floats.Norm(x, 2))
	fmt.Printf("total blame   = %.6f\n", floats.Sum(heatmap))
	printTopBlamed(heatmap, topBlamed)
	return nil
}

func printTopBlamed(heatmap []float64, n int) {
	indices := make([]int, len(heatmap))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool {
		return heatmap[indices[i]] > heatmap[indices[j]]
	})
	if n > len(indices) {
		n = len(indices)
	}
	for _, idx := range indices[:n] {
		fmt.Printf("cell %d: blame = %.6f\n", idx, heatmap[idx])
	}
}
