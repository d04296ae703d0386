package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DefaultAOSamples is the number of hemisphere rays per camera hit
const DefaultAOSamples = 16

// AmbientOcclusion estimates how much of the hemisphere above each visible
// point is open to the sky. It ignores materials and lights.
type AmbientOcclusion struct {
	Samples int
}

// NewAmbientOcclusion creates an AO integrator with the given sample count
func NewAmbientOcclusion(samples int) *AmbientOcclusion {
	if samples <= 0 {
		samples = DefaultAOSamples
	}
	return &AmbientOcclusion{Samples: samples}
}

// Sample returns the background for misses and otherwise the grey fraction
// of cosine-distributed rays that escape the scene
func (ao *AmbientOcclusion) Sample(ctx *core.WorkerContext, s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := geometry.NewHit()
	if !s.Intersect(ctx, ray, &hit) {
		return s.BackgroundAt(ray)
	}
	hr := hit.Record(ray)
	onb := core.NewONB(hr.Normal)

	open := 0
	for i := 0; i < ao.Samples; i++ {
		wi := core.CosineSampleHemisphere(ctx.Get2D())
		probe := geometry.NewHit()
		if !s.Intersect(ctx, core.NewRay(hr.Position, onb.LocalToWorld(wi)), &probe) {
			open++
		}
	}
	return core.Splat(float64(open) / float64(ao.Samples))
}
