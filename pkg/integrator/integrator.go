package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Sample returns one radiance estimate for a camera ray. All randomness
	// and ray counting goes through ctx, which belongs to the calling worker.
	Sample(ctx *core.WorkerContext, s *scene.Scene, ray core.Ray) core.Vec3
}
