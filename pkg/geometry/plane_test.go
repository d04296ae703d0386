package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 2), grey)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{"from above", core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)), true, 3},
		{"from below", core.NewRay(core.NewVec3(1, 1, -2), core.NewVec3(0, 0, 1)), true, 2},
		{"parallel", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)), false, 0},
		{"pointing away", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := NewHit()
			got := plane.Intersect(tt.ray, &hit)
			if got != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, got)
			}
			if got && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}

	if plane.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normalized normal, got %v", plane.Normal)
	}
	box := plane.BoundingBox()
	if !math.IsInf(box.Min.X, -1) || !math.IsInf(box.Max.Z, 1) {
		t.Errorf("Expected infinite bounds, got %v", box)
	}
}

func TestPlane_LightSampling(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), light)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 100; i++ {
		ray := plane.RandomRayToward(origin, sampler)
		if ray.Direction.Z <= 0 {
			t.Fatalf("Expected direction toward the plane, got %v", ray.Direction)
		}
		expected := math.Abs(ray.Direction.Z) / math.Pi
		if pdf := plane.PdfFor(ray); math.Abs(pdf-expected) > 1e-9 {
			t.Fatalf("Expected pdf %f, got %f", expected, pdf)
		}
	}
	if plane.PdfFor(core.NewRay(origin, core.NewVec3(0, 0, -1))) != 0 {
		t.Error("Expected zero pdf away from the plane")
	}
}
