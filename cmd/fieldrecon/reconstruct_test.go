package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReconstructEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	scene := []byte(`
title: Test Scene
sizes: [5, 5]
weights:
  data_pos: 1.0
  model_2: 0.05
  gradient_kernel: nearest_neighbor
points:
  - position: [2.0, 2.0]
    normal: [1.0, 0.0]
`)
	assert.NoError(t, os.WriteFile(path, scene, 0o644))
	assert.NoError(t, runReconstruct(path))
}

func TestRunReconstructRejectsMissingFile(t *testing.T) {
	assert.Error(t, runReconstruct("/nonexistent/scene.yaml"))
}
