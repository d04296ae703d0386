package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestBlinnDistribution_PdfIntegrates(t *testing.T) {
	const exponent = 10
	dist := BlinnDistribution{Exponent: exponent}
	random := rand.New(rand.NewSource(42))
	wo := core.NewVec3(0, 0, 1)

	// Uniform hemisphere sampling: ∫pdf dω ≈ 2π·mean(pdf)
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		wi := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
		wi.Z = math.Abs(wi.Z)
		sum += dist.Pdf(wo, wi)
	}
	integral := 2 * math.Pi * sum / n

	// Microfacet normals beyond 45 degrees reflect below the horizon
	expected := 1 - math.Pow(math.Sqrt(0.5), exponent+1)
	if math.Abs(integral-expected) > 0.03 {
		t.Errorf("Expected pdf to integrate to %f over the hemisphere, got %f", expected, integral)
	}
}

func TestMicrofacet_SampleConsistency(t *testing.T) {
	tests := []struct {
		name string
		mat  Material
	}{
		{"microfacet", NewMicrofacet(core.NewVec3(0.9, 0.8, 0.7), 50, 1.5)},
		{"fresnel blend", NewFresnelBlend(core.NewVec3(0.5, 0.2, 0.2), core.NewVec3(0.05, 0.05, 0.05), 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
			wo := core.NewVec3(0.3, 0.2, 0.9).Normalize()
			hr := &HitRecord{}

			for i := 0; i < 500; i++ {
				wi, specular := tt.mat.Sample(wo, sampler)
				if specular {
					t.Fatal("Glossy samples should not be specular")
				}
				pdf := tt.mat.Pdf(wo, wi)
				f := tt.mat.Eval(wo, wi, hr)
				if pdf < 0 || math.IsNaN(pdf) {
					t.Fatalf("Invalid pdf %f for %v", pdf, wi)
				}
				if f.HasNaN() || f.X < 0 || f.Y < 0 || f.Z < 0 {
					t.Fatalf("Invalid BSDF value %v for %v", f, wi)
				}
				if core.SameHemisphere(wo, wi) && pdf == 0 {
					t.Fatalf("Sampled direction %v has zero density", wi)
				}
			}
		})
	}
}

func TestFresnelBlend_DiffuseBase(t *testing.T) {
	fb := NewFresnelBlend(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 10)
	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0.6, 0, 0.8)

	// With a black coat only the Fresnel-weighted coat term adds to the base
	diffuse := 28.0 / (23.0 * math.Pi) * (1 - math.Pow(1-0.8/2, 5)) * (1 - math.Pow(1-1.0/2, 5))
	f := fb.Eval(wo, wi, &HitRecord{})
	if f.X < diffuse-1e-12 || math.IsInf(f.X, 0) {
		t.Errorf("Expected at least the diffuse base %f, got %f", diffuse, f.X)
	}
	if !fb.Eval(wo, core.NewVec3(0, 0, -1), &HitRecord{}).IsZero() {
		t.Error("Expected no transmission")
	}
}
