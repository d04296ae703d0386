package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic scatters uniformly over the whole sphere of directions
type Isotropic struct {
	nonEmissive
	Albedo Texture
}

// NewIsotropic creates an isotropic scatterer with a solid albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidTexture(albedo)}
}

// Eval returns the albedo
func (i *Isotropic) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	return i.Albedo.Sample(hr.U, hr.V, hr.Position)
}

// Sample returns a uniform direction on the unit sphere
func (i *Isotropic) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return core.SampleOnUnitSphere(sampler.Get2D()), true
}

// Pdf returns zero
func (i *Isotropic) Pdf(wo, wi core.Vec3) float64 {
	return 0
}
