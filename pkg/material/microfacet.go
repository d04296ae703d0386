package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BlinnDistribution is the power-cosine microfacet normal distribution
type BlinnDistribution struct {
	Exponent float64
}

// D returns the density of microfacet normal wh
func (b BlinnDistribution) D(wh core.Vec3) float64 {
	return (b.Exponent + 2) / (2 * math.Pi) * math.Pow(math.Abs(wh.Z), b.Exponent)
}

// Sample draws wi by reflecting wo about a sampled microfacet normal
func (b BlinnDistribution) Sample(wo core.Vec3, sample core.Vec2) core.Vec3 {
	cosTheta := math.Pow(sample.X, 1/(b.Exponent+1))
	sinTheta := math.Sqrt(max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * sample.Y

	wh := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	if !core.SameHemisphere(wo, wh) {
		wh = wh.Negate()
	}
	return core.Reflect(wo.Negate(), wh)
}

// Pdf returns the solid-angle density of Sample producing wi
func (b BlinnDistribution) Pdf(wo, wi core.Vec3) float64 {
	wh := wo.Add(wi).Normalize()
	woh := wo.Dot(wh)
	if woh <= 0 {
		return 0
	}
	pdfH := (b.Exponent + 1) / (2 * math.Pi) * math.Pow(math.Abs(wh.Z), b.Exponent)
	return pdfH / (4 * woh)
}

// Microfacet is a glossy conductor using the Torrance-Sparrow model
type Microfacet struct {
	nonEmissive
	Albedo       Texture
	Eta          float64
	Distribution BlinnDistribution
}

// NewMicrofacet creates a glossy material; higher exponents are shinier
func NewMicrofacet(albedo core.Vec3, exponent, eta float64) *Microfacet {
	return &Microfacet{
		Albedo:       NewSolidTexture(albedo),
		Eta:          eta,
		Distribution: BlinnDistribution{Exponent: exponent},
	}
}

// Eval evaluates D·G·F/(4 cos θo cos θi)
func (m *Microfacet) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}
	cosO, cosI := math.Abs(wo.Z), math.Abs(wi.Z)
	if cosO == 0 || cosI == 0 {
		return core.Vec3{}
	}
	wh := wo.Add(wi)
	if wh.IsZero() {
		return core.Vec3{}
	}
	wh = wh.Normalize()

	f := Schlick(math.Abs(wi.Dot(wh)), m.Eta)
	w := m.Distribution.D(wh) * geometricTerm(wo, wi, wh) * f / (4 * cosO * cosI)
	return m.Albedo.Sample(hr.U, hr.V, hr.Position).Multiply(w)
}

// Sample reflects wo about a Blinn-distributed microfacet normal
func (m *Microfacet) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return m.Distribution.Sample(wo, sampler.Get2D()), false
}

// Pdf returns the density of Sample producing wi
func (m *Microfacet) Pdf(wo, wi core.Vec3) float64 {
	if !core.SameHemisphere(wo, wi) {
		return 0
	}
	return m.Distribution.Pdf(wo, wi)
}

// geometricTerm is the Torrance-Sparrow V-cavity shadowing-masking term
func geometricTerm(wo, wi, wh core.Vec3) float64 {
	nh := math.Abs(wh.Z)
	woh := math.Abs(wo.Dot(wh))
	if woh == 0 {
		return 0
	}
	return min(1, 2*nh*math.Abs(wo.Z)/woh, 2*nh*math.Abs(wi.Z)/woh)
}
