package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a clear material like glass or water
type Dielectric struct {
	nonEmissive
	Albedo Texture
	Eta    float64 // Index of refraction inside the surface
}

// NewDielectric creates a new dielectric material
func NewDielectric(albedo core.Vec3, eta float64) *Dielectric {
	return &Dielectric{Albedo: NewSolidTexture(albedo), Eta: eta}
}

// Eval returns the tint applied to every reflected or refracted path
func (d *Dielectric) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	return d.Albedo.Sample(hr.U, hr.V, hr.Position)
}

// Sample reflects with the Schlick probability and refracts otherwise.
// Total internal reflection always reflects.
func (d *Dielectric) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	reflected := core.NewVec3(-wo.X, -wo.Y, wo.Z)

	// Normal on the side of wo, and the eta ratio for crossing it
	normal := core.NewVec3(0, 0, 1)
	ratio := 1.0 / d.Eta
	cosI := wo.Z
	if wo.Z < 0 {
		normal = normal.Negate()
		ratio = d.Eta
		cosI = -wo.Z
	}

	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		return reflected, true
	}
	if sampler.Get1D() < Schlick(cosI, d.Eta) {
		return reflected, true
	}

	cosT := math.Sqrt(1 - sin2T)
	refracted := wo.Negate().Multiply(ratio).Add(normal.Multiply(ratio*cosI - cosT))
	return refracted, true
}

// Pdf is zero: both lobes are delta distributions
func (d *Dielectric) Pdf(wo, wi core.Vec3) float64 {
	return 0
}
