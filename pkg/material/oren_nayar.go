package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// OrenNayar is a rough diffuse material. Sigma is the standard deviation of
// the microfacet slope angle in degrees.
type OrenNayar struct {
	nonEmissive
	Albedo Texture

	a, b float64
}

// NewOrenNayar creates a rough diffuse material with a solid albedo
func NewOrenNayar(albedo core.Vec3, sigma float64) *OrenNayar {
	return NewTexturedOrenNayar(NewSolidTexture(albedo), sigma)
}

// NewTexturedOrenNayar creates a rough diffuse material with a texture
func NewTexturedOrenNayar(albedo Texture, sigma float64) *OrenNayar {
	s := sigma * math.Pi / 180
	s2 := s * s
	return &OrenNayar{
		Albedo: albedo,
		a:      1 - s2/(2*(s2+0.33)),
		b:      0.45 * s2 / (s2 + 0.09),
	}
}

// Eval evaluates the Oren-Nayar approximation
func (o *OrenNayar) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}

	sinThetaI := sinTheta(wi)
	sinThetaO := sinTheta(wo)

	maxCos := 0.0
	if sinThetaI > 1e-4 && sinThetaO > 1e-4 {
		cosPhiI, sinPhiI := wi.X/sinThetaI, wi.Y/sinThetaI
		cosPhiO, sinPhiO := wo.X/sinThetaO, wo.Y/sinThetaO
		maxCos = max(0, cosPhiI*cosPhiO+sinPhiI*sinPhiO)
	}

	var sinAlpha, tanBeta float64
	if math.Abs(wi.Z) > math.Abs(wo.Z) {
		sinAlpha = sinThetaO
		tanBeta = sinThetaI / math.Abs(wi.Z)
	} else {
		sinAlpha = sinThetaI
		tanBeta = sinThetaO / math.Abs(wo.Z)
	}

	albedo := o.Albedo.Sample(hr.U, hr.V, hr.Position)
	return albedo.Multiply((o.a + o.b*maxCos*sinAlpha*tanBeta) / math.Pi)
}

// Sample draws a cosine-weighted direction on the side of wo
func (o *OrenNayar) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return cosineSampleSide(wo, sampler), false
}

// Pdf returns |cos θi|/π on the side of wo
func (o *OrenNayar) Pdf(wo, wi core.Vec3) float64 {
	return cosinePdf(wo, wi)
}

func sinTheta(w core.Vec3) float64 {
	return math.Sqrt(max(0, 1-w.Z*w.Z))
}
