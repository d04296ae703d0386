package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSchlick(t *testing.T) {
	// Normal incidence on glass reflects ((1-1.5)/(1+1.5))² = 4%
	if math.Abs(Schlick(1, 1.5)-0.04) > 1e-12 {
		t.Errorf("Expected 0.04, got %f", Schlick(1, 1.5))
	}
	if math.Abs(Schlick(0, 1.5)-1) > 1e-12 {
		t.Errorf("Expected full reflection at grazing angle, got %f", Schlick(0, 1.5))
	}
	if a, b := Schlick(1, 1.5), Schlick(1, 1/1.5); math.Abs(a-b) > 1e-12 {
		t.Errorf("Expected Schlick to be symmetric in eta, got %f and %f", a, b)
	}
}

func TestDielectric_SnellsLaw(t *testing.T) {
	glass := NewDielectric(core.NewVec3(1, 1, 1), 1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	wo := core.NewVec3(math.Sin(0.5), 0, math.Cos(0.5))

	refracted := 0
	for i := 0; i < 200; i++ {
		wi, specular := glass.Sample(wo, sampler)
		if !specular {
			t.Fatal("Dielectric samples are always specular")
		}
		if math.Abs(wi.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", wi.Length())
		}
		if wi.Z > 0 {
			if wi.Subtract(core.NewVec3(-wo.X, -wo.Y, wo.Z)).Length() > 1e-9 {
				t.Fatalf("Expected mirror reflection, got %v", wi)
			}
			continue
		}
		refracted++
		sinT := math.Sqrt(wi.X*wi.X + wi.Y*wi.Y)
		if math.Abs(math.Sin(0.5)-1.5*sinT) > 1e-9 {
			t.Fatalf("Snell's law violated: sinI=%f, eta*sinT=%f", math.Sin(0.5), 1.5*sinT)
		}
	}
	if refracted < 150 {
		t.Errorf("Expected mostly refraction near normal incidence, got %d of 200", refracted)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(core.NewVec3(1, 1, 1), 1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Inside the glass at 60 degrees, beyond the ~41.8 degree critical angle
	wo := core.NewVec3(math.Sin(math.Pi/3), 0, -math.Cos(math.Pi/3))
	for i := 0; i < 50; i++ {
		wi, _ := glass.Sample(wo, sampler)
		if wi.Z >= 0 {
			t.Fatalf("Expected reflection back inside, got %v", wi)
		}
	}
}

func TestSpecular_Mirror(t *testing.T) {
	mirror := NewSpecular(core.NewVec3(1, 1, 1), 1.5)
	wo := core.NewVec3(0.6, 0, 0.8)
	wi, specular := mirror.Sample(wo, nil)
	if !specular || wi != core.NewVec3(-0.6, 0, 0.8) {
		t.Errorf("Expected specular mirror (-0.6,0,0.8), got %v specular=%v", wi, specular)
	}
	expected := Schlick(0.8, 1.5)
	if got := mirror.Eval(wo, wi, &HitRecord{}).X; math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected Fresnel weight %f, got %f", expected, got)
	}
}

func TestIsotropic_SamplesWholeSphere(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	below := 0
	for i := 0; i < 1000; i++ {
		wi, specular := iso.Sample(core.NewVec3(0, 0, 1), sampler)
		if !specular {
			t.Fatal("Isotropic samples are treated as specular")
		}
		if wi.Z < 0 {
			below++
		}
	}
	if below < 400 || below > 600 {
		t.Errorf("Expected about half the samples below, got %d", below)
	}
}

func TestDiffuseLight_Emits(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	if !light.IsEmittable() {
		t.Error("Expected light to be emittable")
	}
	if light.Emitted(&HitRecord{}) != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", light.Emitted(&HitRecord{}))
	}
}

func TestColorTemperature(t *testing.T) {
	warm := ColorTemperature(2000)
	daylight := ColorTemperature(6600)
	cool := ColorTemperature(12000)

	if warm.X < warm.Z {
		t.Errorf("Expected warm light to be red-heavy, got %v", warm)
	}
	if cool.Z < cool.X {
		t.Errorf("Expected cool light to be blue-heavy, got %v", cool)
	}
	if daylight.Clamp(0, 1) != daylight {
		t.Errorf("Expected channels in [0,1], got %v", daylight)
	}
}
