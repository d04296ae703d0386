package scene

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/output"
)

func TestPresets_AllBuild(t *testing.T) {
	for _, preset := range Presets() {
		t.Run(preset.Name, func(t *testing.T) {
			s, camera, err := Load(preset.Name, 16.0/9.0, Options{})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if camera == nil {
				t.Fatal("Expected a camera")
			}
			if s.Tree() == nil {
				t.Error("Expected Load to build the tree")
			}
			if len(s.Lights()) == 0 {
				t.Error("Expected at least one light")
			}
			if camera.Config().AspectRatio != 16.0/9.0 {
				t.Errorf("Expected aspect 16/9, got %f", camera.Config().AspectRatio)
			}
		})
	}
}

func TestPresets_Unknown(t *testing.T) {
	if _, _, err := Load("nope", 1, Options{}); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

func TestPresets_BackgroundOverride(t *testing.T) {
	sky := material.NewSolidTexture(core.NewVec3(0.5, 0.7, 1.0))
	s, _, err := Load("cornell", 1, Options{Background: sky})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.BackgroundTexture != sky {
		t.Error("Expected the background texture to be applied")
	}
}

func TestMeshScene_FromSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	if err := output.WriteSTL(path, NewCubeMesh(nil)); err != nil {
		t.Fatalf("Failed to write STL: %v", err)
	}

	s, _, err := Load("mesh", 1, Options{MeshPath: path})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	stats := s.Stats()
	if stats.Triangles != 12 {
		t.Errorf("Expected 12 triangles from the STL, got %d", stats.Triangles)
	}

	// Fitted into the unit cube, standing on the floor
	box := s.Primitives()[0].BoundingBox()
	if math.Abs(box.Min.Z) > 1e-9 || box.Size().MaxComponent() > 1+1e-9 {
		t.Errorf("Expected mesh fitted on z=0 inside a unit cube, got %v", box)
	}

	if _, _, err := Load("mesh", 1, Options{MeshPath: filepath.Join(t.TempDir(), "missing.stl")}); err == nil {
		t.Error("Expected an error for a missing STL file")
	}
}
