package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains the primitives to render, the emissive subset used for
// direct lighting, and the spatial index over them
type Scene struct {
	Background        core.Vec3        // Radiance for rays that escape the scene
	BackgroundTexture material.Texture // Overrides Background when set, sampled by ray direction

	primitives []geometry.Primitive
	lights     []geometry.Primitive
	tree       *geometry.KDTree
}

// Stats summarises the contents of a built scene
type Stats struct {
	Primitives int              // Top-level primitives
	Lights     int              // Individually sampled emitters
	Tree       geometry.KDStats // Shape of the top-level tree
	Triangles  int              // Faces across all meshes
}

// NewScene creates an empty scene with a black background
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a primitive. Emissive primitives also join the light list;
// a LightGroup such as a mesh contributes each of its parts instead.
func (s *Scene) Add(prims ...geometry.Primitive) {
	for _, p := range prims {
		s.primitives = append(s.primitives, p)
		s.lights = append(s.lights, lightsOf(p)...)
	}
}

func lightsOf(p geometry.Primitive) []geometry.Primitive {
	if !p.IsEmittable() {
		return nil
	}
	if group, ok := p.(geometry.LightGroup); ok {
		return group.Lights()
	}
	return []geometry.Primitive{p}
}

// Build prepares every primitive and then the scene's KD-tree. Calling it
// again once the tree exists does nothing.
func (s *Scene) Build() {
	if s.tree != nil {
		return
	}
	for _, p := range s.primitives {
		p.Build()
	}
	s.tree = geometry.NewKDTree(s.primitives)
}

// Rebuild discards the tree and light list and builds them again. It must be
// called after primitives are mutated, while no render is in progress.
func (s *Scene) Rebuild() {
	s.tree = nil
	s.Build()

	s.lights = s.lights[:0]
	for _, p := range s.primitives {
		s.lights = append(s.lights, lightsOf(p)...)
	}
}

// Intersect finds the closest hit along the ray, counting the ray against
// the calling worker
func (s *Scene) Intersect(ctx *core.WorkerContext, ray core.Ray, hit *geometry.Hit) bool {
	ctx.CountRay()
	if s.tree != nil {
		return s.tree.Intersect(ray, hit)
	}

	// Unbuilt scenes fall back to a linear scan
	found := false
	for _, p := range s.primitives {
		if p.Intersect(ray, hit) {
			found = true
		}
	}
	return found
}

// Primitives returns the top-level primitives
func (s *Scene) Primitives() []geometry.Primitive {
	return s.primitives
}

// Lights returns the emitters sampled by next-event estimation
func (s *Scene) Lights() []geometry.Primitive {
	return s.lights
}

// Tree returns the scene's KD-tree, or nil before Build
func (s *Scene) Tree() *geometry.KDTree {
	return s.tree
}

// BackgroundAt returns the radiance arriving along a ray that missed
// everything. Textured backgrounds use a latitude-longitude mapping.
func (s *Scene) BackgroundAt(ray core.Ray) core.Vec3 {
	if s.BackgroundTexture == nil {
		return s.Background
	}
	d := ray.Direction
	u := (math.Atan2(d.Z, d.X) + math.Pi) / (2 * math.Pi)
	v := (math.Atan2(d.Y, math.Hypot(d.X, d.Z)) + math.Pi/2) / math.Pi
	return s.BackgroundTexture.Sample(u, v, core.Vec3{})
}

// Stats reports primitive, light and tree counts
func (s *Scene) Stats() Stats {
	stats := Stats{
		Primitives: len(s.primitives),
		Lights:     len(s.lights),
	}
	for _, p := range s.primitives {
		if mesh, ok := p.(*geometry.Mesh); ok {
			stats.Triangles += mesh.TriangleCount()
		}
	}
	if s.tree != nil {
		stats.Tree = s.tree.Stats()
	}
	return stats
}
