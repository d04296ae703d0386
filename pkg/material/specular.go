package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Specular is a perfect mirror whose reflectance follows Schlick's Fresnel
// approximation
type Specular struct {
	nonEmissive
	Albedo Texture
	Eta    float64 // Index of refraction used for the Fresnel term
}

// NewSpecular creates a mirror with a solid albedo
func NewSpecular(albedo core.Vec3, eta float64) *Specular {
	return &Specular{Albedo: NewSolidTexture(albedo), Eta: eta}
}

// Eval returns albedo weighted by the Fresnel reflectance at wo
func (s *Specular) Eval(wo, wi core.Vec3, hr *HitRecord) core.Vec3 {
	fresnel := Schlick(math.Abs(wo.Z), s.Eta)
	return s.Albedo.Sample(hr.U, hr.V, hr.Position).Multiply(fresnel)
}

// Sample mirrors wo about the normal
func (s *Specular) Sample(wo core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	return core.NewVec3(-wo.X, -wo.Y, wo.Z), true
}

// Pdf is zero: a delta distribution has no density
func (s *Specular) Pdf(wo, wi core.Vec3) float64 {
	return 0
}
