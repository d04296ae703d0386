package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config contains configuration for progressive rendering
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Samples added to every pixel per iteration
	Workers         int   // Number of parallel workers (0 = logical CPU count)
	Seed            int64 // Base seed for the per-worker random streams
}

// DefaultConfig returns the demo settings
func DefaultConfig() Config {
	return Config{
		Width:           500,
		Height:          500,
		SamplesPerPixel: 16,
		Workers:         0,
		Seed:            42,
	}
}

// Renderer drives progressive iterations over a worker pool. Every iteration
// adds SamplesPerPixel samples to each pixel's running mean, so the image
// saved after each pass has lower variance than the last.
type Renderer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     Config
	image      *Image
	pool       *WorkerPool
	logger     *zap.Logger

	// Progress receives the per-iteration progress bar. Nil disables it.
	Progress io.Writer
	// OnIteration is called after each iteration with its stats and image
	OnIteration func(stats IterationStats, img *image.RGBA)

	mu      sync.RWMutex
	latest  *image.RGBA
	history []IterationStats
}

// NewRenderer creates a renderer for an already built scene. A nil logger
// disables logging.
func NewRenderer(s *scene.Scene, camera *geometry.Camera, integ integrator.Integrator, config Config, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.Build()
	return &Renderer{
		scene:      s,
		camera:     camera,
		integrator: integ,
		config:     config,
		image:      NewImage(config.Width, config.Height),
		pool:       NewWorkerPool(config.Workers, config.Seed),
		logger:     logger,
	}
}

// Image returns the accumulated image
func (r *Renderer) Image() *Image {
	return r.image
}

// NumWorkers returns the size of the worker pool
func (r *Renderer) NumWorkers() int {
	return r.pool.GetNumWorkers()
}

// OutputPath substitutes the iteration number into a path containing a
// printf verb such as "frame-%03d.png"
func OutputPath(path string, iteration int) string {
	if strings.Contains(path, "%") {
		return fmt.Sprintf(path, iteration)
	}
	return path
}

// Render runs iterations passes, saving the image to path after each one.
// An empty path skips saving and iterations <= 0 renders until ctx is
// cancelled. Cancellation is checked between iterations.
func (r *Renderer) Render(ctx context.Context, path string, iterations int) error {
	if path != "" {
		if err := output.CheckFormat(path); err != nil {
			return err
		}
	}

	r.logger.Info("starting render",
		zap.Int("width", r.config.Width),
		zap.Int("height", r.config.Height),
		zap.Int("spp", r.config.SamplesPerPixel),
		zap.Int("iterations", iterations),
		zap.Int("workers", r.pool.GetNumWorkers()),
		zap.String("cpu", CPUModel()),
	)

	for iter := 1; iterations <= 0 || iter <= iterations; iter++ {
		select {
		case <-ctx.Done():
			r.logger.Info("render cancelled", zap.Int("iteration", iter))
			r.logSummary()
			return nil
		default:
		}

		stats := r.RenderIteration(iter)
		img := r.image.ToRGBA()
		stats.Luminance = CalculateAverageLuminance(img)

		if path != "" {
			stats.Output = OutputPath(path, iter)
			if err := output.SaveImage(stats.Output, img); err != nil {
				return errors.Wrapf(err, "iteration %d", iter)
			}
		}

		r.publish(stats, img)
		r.logger.Info("iteration complete",
			zap.Int("iteration", iter),
			zap.Duration("duration", stats.Duration),
			zap.Uint64("rays", stats.Rays),
			zap.Float64("mrays_per_sec", stats.MRaysPerSecond()),
			zap.Int("spp", stats.SamplesPerPixel),
			zap.String("output", stats.Output),
		)
		if r.OnIteration != nil {
			r.OnIteration(stats, img)
		}
	}

	r.logSummary()
	return nil
}

// RenderIteration adds one pass of samples to every pixel. Workers are
// joined before it returns, so the ray total is complete.
func (r *Renderer) RenderIteration(iteration int) IterationStats {
	bar := NewProgressBar(r.Progress, r.config.Height)
	workers := r.pool.GetNumWorkers()

	start := time.Now()
	rays := r.pool.Run(func(ctx *core.WorkerContext) {
		for _, y := range rowsFor(ctx.ID, workers, r.config.Height) {
			r.renderRow(ctx, y)
			bar.Update()
		}
	})

	stats := IterationStats{
		Iteration:       iteration,
		Duration:        time.Since(start),
		Rays:            rays,
		SamplesPerPixel: iteration * r.config.SamplesPerPixel,
	}
	bar.Done(fmt.Sprintf("[%3.2f fps, %3.2f Mray/s]", stats.FPS(), stats.MRaysPerSecond()))
	return stats
}

// rowsFor returns the rows owned by worker id: every row congruent to id
// modulo the worker count
func rowsFor(id, workers, height int) []int {
	var rows []int
	for y := id; y < height; y += workers {
		rows = append(rows, y)
	}
	return rows
}

// renderRow samples every pixel of row y. Row 0 is the top of the image.
func (r *Renderer) renderRow(ctx *core.WorkerContext, y int) {
	w, h := float64(r.config.Width), float64(r.config.Height)
	for x := 0; x < r.config.Width; x++ {
		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			u := (float64(x) + ctx.Get1D()) / w
			v := (float64(y) + ctx.Get1D()) / h
			ray := r.camera.CastRay(u, 1-v, ctx)
			r.image.AddSample(x, y, r.integrator.Sample(ctx, r.scene, ray))
		}
	}
}

func (r *Renderer) publish(stats IterationStats, img *image.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = img
	r.history = append(r.history, stats)
}

// Snapshot returns the most recently completed image (nil before the first
// iteration finishes) and a copy of the iteration history. It is safe to
// call while rendering.
func (r *Renderer) Snapshot() (*image.RGBA, []IterationStats) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	history := make([]IterationStats, len(r.history))
	copy(history, r.history)
	return r.latest, history
}

func (r *Renderer) logSummary() {
	_, history := r.Snapshot()
	if len(history) == 0 {
		return
	}
	var buf bytes.Buffer
	WriteSummary(&buf, history)
	r.logger.Info("render statistics\n" + buf.String())
}
