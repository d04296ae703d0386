package core

import "math/rand"

// WorkerContext is the per-worker state threaded through every call on a
// render path: an independent random stream and a ray counter. A context
// must only be used by one goroutine at a time.
type WorkerContext struct {
	ID int

	random *rand.Rand
	rays   uint64
}

// NewWorkerContext creates a context with its own seeded random stream
func NewWorkerContext(id int, seed int64) *WorkerContext {
	return &WorkerContext{
		ID:     id,
		random: rand.New(rand.NewSource(seed)),
	}
}

// Get1D returns a random float64 in [0, 1)
func (c *WorkerContext) Get1D() float64 {
	return c.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (c *WorkerContext) Get2D() Vec2 {
	return NewVec2(c.random.Float64(), c.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (c *WorkerContext) Get3D() Vec3 {
	return NewVec3(c.random.Float64(), c.random.Float64(), c.random.Float64())
}

// IntN returns a random integer in [0, n)
func (c *WorkerContext) IntN(n int) int {
	return c.random.Intn(n)
}

// CountRay records one traced ray
func (c *WorkerContext) CountRay() {
	c.rays++
}

// RayCount returns the number of rays traced since the last reset
func (c *WorkerContext) RayCount() uint64 {
	return c.rays
}

// ResetRayCount zeroes the ray counter
func (c *WorkerContext) ResetRayCount() {
	c.rays = 0
}
