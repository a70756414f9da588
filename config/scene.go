// Package config loads a reconstruction job description (lattice
// sizes, weights, point cloud) from a YAML scene file.
package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/vidstige/field-interpolation/assembler"
	"github.com/vidstige/field-interpolation/fieldbuilder"
	"github.com/vidstige/field-interpolation/lattice"
)

// PointObservation is the YAML-facing shape of a fieldbuilder.Point.
type PointObservation struct {
	Position []float64 `json:"position"`
	Normal   []float64 `json:"normal,omitempty"`
	Weight   *float64  `json:"weight,omitempty"`
}

// WeightConfig is the YAML-facing shape of assembler.Weights; the
// gradient kernel is spelled out as a name rather than an int so scene
// files stay readable.
type WeightConfig struct {
	DataPos            float64 `json:"data_pos"`
	DataGradient       float64 `json:"data_gradient"`
	Model0             float64 `json:"model_0"`
	Model1             float64 `json:"model_1"`
	Model2             float64 `json:"model_2"`
	Model3             float64 `json:"model_3"`
	Model4             float64 `json:"model_4"`
	GradientSmoothness float64 `json:"gradient_smoothness"`
	GradientKernel     string  `json:"gradient_kernel"`
}

// Scene is the top-level YAML document describing one reconstruction
// job.
type Scene struct {
	Title   string             `json:"title"`
	Sizes   []int              `json:"sizes"`
	Weights WeightConfig       `json:"weights"`
	Points  []PointObservation `json:"points"`
}

// Parse unmarshals a Scene from YAML bytes.
func (s *Scene) Parse(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// Load reads and parses a Scene from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading scene %q: %w", path, err)
	}
	scene := &Scene{}
	if err := scene.Parse(data); err != nil {
		return nil, fmt.Errorf("config: parsing scene %q: %w", path, err)
	}
	return scene, nil
}

// Print dumps a human-readable summary of the scene, mirroring the
// teacher's InputParameters.Print diagnostic style.
func (s *Scene) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", s.Title)
	fmt.Printf("%v\t\t= Sizes\n", s.Sizes)
	fmt.Printf("%8.5f\t= data_pos\n", s.Weights.DataPos)
	fmt.Printf("%8.5f\t= data_gradient\n", s.Weights.DataGradient)
	fmt.Printf("%8.5f %8.5f %8.5f %8.5f %8.5f\t= model_0..model_4\n",
		s.Weights.Model0, s.Weights.Model1, s.Weights.Model2, s.Weights.Model3, s.Weights.Model4)
	fmt.Printf("%8.5f\t= gradient_smoothness\n", s.Weights.GradientSmoothness)
	fmt.Printf("[%s]\t\t\t= gradient_kernel\n", s.Weights.GradientKernel)
	fmt.Printf("%d\t\t\t= num points\n", len(s.Points))
}

// Validate checks the scene's preconditions before it reaches
// fieldbuilder.Build: a lattice dimension in range, and every point's
// position (and normal, if present) matching that dimension.
func (s *Scene) Validate() error {
	n := len(s.Sizes)
	if n < 1 || n > lattice.MaxDim {
		return fmt.Errorf("config: scene %q has %d dimensions, want 1..%d: %w", s.Title, n, lattice.MaxDim, lattice.ErrInvalidLattice)
	}
	for _, size := range s.Sizes {
		if size < 1 {
			return fmt.Errorf("config: scene %q has a non-positive lattice size: %w", s.Title, lattice.ErrInvalidLattice)
		}
	}
	for i, p := range s.Points {
		if len(p.Position) != n {
			return fmt.Errorf("config: point %d has %d dimensions, want %d", i, len(p.Position), n)
		}
		if p.Normal != nil && len(p.Normal) != n {
			return fmt.Errorf("config: point %d normal has %d dimensions, want %d", i, len(p.Normal), n)
		}
	}
	return nil
}

// kernelByName maps a scene's gradient_kernel string to the
// assembler's enumerated identifier.
var kernelByName = map[string]assembler.GradientKernel{
	"":                     assembler.NearestNeighbor,
	"nearest_neighbor":     assembler.NearestNeighbor,
	"cell_edges":           assembler.CellEdges,
	"linear_interpolation": assembler.LinearInterpolation,
}

// ToWeights converts the scene's YAML-facing weight config into
// assembler.Weights, resolving the gradient kernel name.
func (s *Scene) ToWeights() (assembler.Weights, error) {
	kernel, ok := kernelByName[s.Weights.GradientKernel]
	if !ok {
		return assembler.Weights{}, fmt.Errorf("config: %w: %q", assembler.ErrUnknownGradientKernel, s.Weights.GradientKernel)
	}
	return assembler.Weights{
		DataPos:            s.Weights.DataPos,
		DataGradient:       s.Weights.DataGradient,
		Model0:             s.Weights.Model0,
		Model1:             s.Weights.Model1,
		Model2:             s.Weights.Model2,
		Model3:             s.Weights.Model3,
		Model4:             s.Weights.Model4,
		GradientSmoothness: s.Weights.GradientSmoothness,
		GradientKernel:     kernel,
	}, nil
}

// ToPoints converts the scene's point observations into
// fieldbuilder.Point values.
func (s *Scene) ToPoints() []fieldbuilder.Point {
	points := make([]fieldbuilder.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = fieldbuilder.Point{Position: p.Position, Normal: p.Normal, Weight: p.Weight}
	}
	return points
}
