package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const (
	// DefaultMinBounces is the number of bounces before Russian roulette applies
	DefaultMinBounces = 4
	// DefaultMaxBounces caps the path length
	DefaultMaxBounces = 50

	// pdfFloor ends paths whose BSDF sample density is too small to divide by
	pdfFloor = core.Eps
)

// PathTracer implements unidirectional path tracing with next-event
// estimation toward one randomly chosen light per diffuse bounce
type PathTracer struct {
	MinBounces int
	MaxBounces int
}

// NewPathTracer creates a path tracer with the default bounce limits
func NewPathTracer() *PathTracer {
	return &PathTracer{
		MinBounces: DefaultMinBounces,
		MaxBounces: DefaultMaxBounces,
	}
}

// Sample traces one path from the camera ray
func (pt *PathTracer) Sample(ctx *core.WorkerContext, s *scene.Scene, ray core.Ray) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.Splat(1)

	// Camera rays see emitters directly
	isSpecular := true

	for bounce := 0; bounce < pt.MaxBounces; bounce++ {
		hit := geometry.NewHit()
		if !s.Intersect(ctx, ray, &hit) {
			radiance = radiance.Add(throughput.MultiplyVec(s.BackgroundAt(ray)))
			break
		}
		hr := hit.Record(ray)

		if hr.Material.IsEmittable() {
			// Diffuse bounces already counted this light through NEE
			if isSpecular && hr.Normal.Dot(ray.Direction) < 0 {
				radiance = radiance.Add(throughput.MultiplyVec(hr.Material.Emitted(&hr)))
			}
			break
		}

		onb := core.NewONB(hr.Normal)
		wo := onb.WorldToLocal(ray.Direction.Negate().Normalize())

		var wi core.Vec3
		wi, isSpecular = hr.Material.Sample(wo, ctx)
		attenuation := hr.Material.Eval(wo, wi, &hr)

		if isSpecular {
			throughput = throughput.MultiplyVec(attenuation)
		} else {
			radiance = radiance.Add(throughput.MultiplyVec(pt.sampleOneLight(ctx, s, onb, &hr, wo)))

			pdf := hr.Material.Pdf(wo, wi)
			if pdf < pdfFloor {
				break
			}
			throughput = throughput.MultiplyVec(attenuation).Multiply(math.Abs(wi.Z) / pdf)
		}

		ray = core.NewRay(hr.Position, onb.LocalToWorld(wi))

		if bounce >= pt.MinBounces {
			terminate, compensation := ApplyRussianRoulette(throughput, ctx.Get1D())
			if terminate {
				break
			}
			throughput = throughput.Multiply(compensation)
		}
	}

	return radiance
}

// ApplyRussianRoulette decides whether a path ends given a uniform sample u
// in [0, 1). Surviving paths are scaled by the returned compensation to keep
// the estimator unbiased. Returns (shouldTerminate, compensationFactor).
func ApplyRussianRoulette(throughput core.Vec3, u float64) (bool, float64) {
	survivalProb := max(0, min(1, throughput.MaxComponent()))
	if survivalProb == 0 || u > survivalProb {
		return true, 0
	}
	return false, 1 / survivalProb
}

// sampleOneLight picks a light uniformly and scales its contribution by the
// light count to account for the selection probability
func (pt *PathTracer) sampleOneLight(ctx *core.WorkerContext, s *scene.Scene, onb core.ONB, hr *material.HitRecord, wo core.Vec3) core.Vec3 {
	lights := s.Lights()
	if len(lights) == 0 {
		return core.Vec3{}
	}
	light := lights[ctx.IntN(len(lights))]
	return pt.calculateDirectLighting(ctx, s, light, onb, hr, wo).Multiply(float64(len(lights)))
}

// calculateDirectLighting shoots a shadow ray at a sampled point on light.
// The light only contributes if it is the first thing the ray hits and the
// ray arrives on its front side.
func (pt *PathTracer) calculateDirectLighting(ctx *core.WorkerContext, s *scene.Scene, light geometry.Primitive, onb core.ONB, hr *material.HitRecord, wo core.Vec3) core.Vec3 {
	lightRay := light.RandomRayToward(hr.Position, ctx)

	hit := geometry.NewHit()
	if !s.Intersect(ctx, lightRay, &hit) || hit.Primitive != light {
		return core.Vec3{}
	}

	lhr := hit.Record(lightRay)
	if lhr.Normal.Dot(lightRay.Direction) >= 0 {
		return core.Vec3{}
	}
	emitted := lhr.Material.Emitted(&lhr)
	if emitted.MaxComponent() <= 0 {
		return core.Vec3{}
	}

	lightPdf := light.PdfFor(lightRay)
	if lightPdf <= 0 {
		return core.Vec3{}
	}

	wi := onb.WorldToLocal(lightRay.Direction)
	bsdf := hr.Material.Eval(wo, wi, hr)
	return bsdf.MultiplyVec(emitted).Multiply(math.Abs(wi.Z) / lightPdf)
}
