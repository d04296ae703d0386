package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Velvet brightens towards grazing view angles
type Velvet struct {
	nonEmissive
	Albedo  Texture
	Falloff float64 // Exponent applied to sin θo
}

// NewVelvet creates a velvet material with a solid albedo
func NewVelvet(albedo core.Vec3, falloff float64) *Velvet {
	return &Velvet{Albedo: NewSolidTexture(albedo), Falloff: falloff}
}

// Eval returns sin(θo)^falloff · cos θi · albedo/π
func (v *Velvet) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	if !core.SameHemisphere(wo, wi) {
		return core.Vec3{}
	}
	w := math.Pow(sinTheta(wo), v.Falloff) * math.Abs(wi.Z) / math.Pi
	return v.Albedo.Sample(hr.U, hr.V, hr.Position).Multiply(w)
}

// Sample draws a cosine-weighted direction on the side of wo
func (v *Velvet) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return cosineSampleSide(wo, sampler), false
}

// Pdf returns |cos θi|/π on the side of wo
func (v *Velvet) Pdf(wo, wi core.Vec3) float64 {
	return cosinePdf(wo, wi)
}
