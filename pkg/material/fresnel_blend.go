package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// FresnelBlend layers a glossy coat over a diffuse base (Ashikhmin-Shirley)
type FresnelBlend struct {
	nonEmissive
	Diffuse      Texture
	Specular     core.Vec3 // Reflectance of the coat at normal incidence
	Distribution BlinnDistribution
}

// NewFresnelBlend creates a coated diffuse material
func NewFresnelBlend(diffuse, specular core.Vec3, exponent float64) *FresnelBlend {
	return &FresnelBlend{
		Diffuse:      NewSolidTexture(diffuse),
		Specular:     specular,
		Distribution: BlinnDistribution{Exponent: exponent},
	}
}

// Eval sums the energy-conserving diffuse term and the glossy coat
func (f *FresnelBlend) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}
	cosO, cosI := math.Abs(wo.Z), math.Abs(wi.Z)
	rd := f.Diffuse.Sample(hr.U, hr.V, hr.Position)
	rs := f.Specular

	pow5 := func(x float64) float64 { return x * x * x * x * x }
	diffuse := rd.MultiplyVec(core.Splat(1).Subtract(rs)).
		Multiply(28.0 / (23.0 * math.Pi) * (1 - pow5(1-cosI/2)) * (1 - pow5(1-cosO/2)))

	wh := wo.Add(wi)
	if wh.IsZero() {
		return diffuse
	}
	wh = wh.Normalize()
	ih := math.Abs(wi.Dot(wh))
	if ih == 0 {
		return diffuse
	}
	specular := schlickColor(ih, rs).
		Multiply(f.Distribution.D(wh) / (4 * ih * max(cosI, cosO)))

	return diffuse.Add(specular)
}

// Sample picks the diffuse or the glossy lobe with equal probability
func (f *FresnelBlend) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	if sampler.Get1D() < 0.5 {
		return cosineSampleSide(wo, sampler), false
	}
	return f.Distribution.Sample(wo, sampler.Get2D()), false
}

// Pdf averages the densities of both lobes
func (f *FresnelBlend) Pdf(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	return 0.5 * (cosinePdf(wo, wi) + f.Distribution.Pdf(wo, wi))
}
