package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmissive
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidTexture(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Eval returns albedo/π for directions on the same side of the surface
func (l *Lambertian) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}
	return l.Albedo.Sample(hr.U, hr.V, hr.Position).Multiply(1.0 / math.Pi)
}

// Sample draws a cosine-weighted direction on the side of wo
func (l *Lambertian) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return cosineSampleSide(wo, sampler), false
}

// Pdf returns |cos θi|/π on the side of wo
func (l *Lambertian) Pdf(wo, wi core.Vec3) float64 {
	return cosinePdf(wo, wi)
}

// cosineSampleSide flips a cosine-weighted sample into the hemisphere of wo
func cosineSampleSide(wo core.Vec3, sampler core.Sampler) core.Vec3 {
	wi := core.CosineSampleHemisphere(sampler.Get2D())
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	return wi
}

func cosinePdf(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	return math.Abs(wi.Z) / math.Pi
}
