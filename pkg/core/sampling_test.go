package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestONB_RoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64()))
		onb := NewONB(n)

		if math.Abs(onb.U.Dot(onb.V)) > 1e-9 || math.Abs(onb.U.Dot(onb.W)) > 1e-9 || math.Abs(onb.V.Dot(onb.W)) > 1e-9 {
			t.Fatalf("Basis for %v is not orthogonal: %+v", n, onb)
		}
		if math.Abs(onb.U.Length()-1) > 1e-9 || math.Abs(onb.V.Length()-1) > 1e-9 {
			t.Fatalf("Basis for %v is not normalized: %+v", n, onb)
		}

		local := onb.WorldToLocal(n)
		if math.Abs(local.Z-1) > 1e-9 {
			t.Errorf("Expected normal to map to +z, got %v", local)
		}

		v := NewVec3(random.Float64(), random.Float64(), random.Float64())
		back := onb.LocalToWorld(onb.WorldToLocal(v))
		if back.Subtract(v).Length() > 1e-9 {
			t.Errorf("Expected round trip %v, got %v", v, back)
		}
	}
}

func TestCosineSampleHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	const n = 20000
	sumZ := 0.0
	for i := 0; i < n; i++ {
		d := CosineSampleHemisphere(sampler.Get2D())
		if d.Z < 0 {
			t.Fatalf("Expected upper hemisphere, got %v", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", d.Length())
		}
		sumZ += d.Z
	}
	// E[cos θ] under a cos/π density is 2/3
	if mean := sumZ / n; math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine 2/3, got %f", mean)
	}
}

func TestSampleCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	axis := NewVec3(1, 2, -1).Normalize()
	cosMax := math.Cos(0.3)
	for i := 0; i < 1000; i++ {
		d := SampleCone(axis, cosMax, sampler.Get2D())
		if d.Dot(axis) < cosMax-1e-9 {
			t.Fatalf("Direction %v outside cone", d)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-12 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}

func TestWorkerContext_RayCounter(t *testing.T) {
	ctx := NewWorkerContext(3, 42)
	for i := 0; i < 5; i++ {
		ctx.CountRay()
	}
	if ctx.RayCount() != 5 {
		t.Errorf("Expected 5 rays, got %d", ctx.RayCount())
	}
	ctx.ResetRayCount()
	if ctx.RayCount() != 0 {
		t.Errorf("Expected 0 rays after reset, got %d", ctx.RayCount())
	}

	// Same seed gives the same stream
	a, b := NewWorkerContext(0, 7), NewWorkerContext(1, 7)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}
