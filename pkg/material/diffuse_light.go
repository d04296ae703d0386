package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter that radiates its texture equally in all directions
type DiffuseLight struct {
	Emission Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidTexture(emission)}
}

// Eval returns zero: lights terminate paths instead of scattering them
func (d *DiffuseLight) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// Sample returns the normal direction as a non-specular placeholder
func (d *DiffuseLight) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return core.NewVec3(0, 0, 1), false
}

// Pdf returns zero
func (d *DiffuseLight) Pdf(wo, wi core.Vec3) float64 {
	return 0
}

// Emitted returns the emission texture at the hit point
func (d *DiffuseLight) Emitted(hr *HitRecord) core.Vec3 {
	return d.Emission.Sample(hr.U, hr.V, hr.Position)
}

// IsEmittable returns true
func (d *DiffuseLight) IsEmittable() bool {
	return true
}
