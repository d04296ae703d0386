// Package cmd implements the command line actions.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/internal/config"
	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/web/server"
)

// Render renders the configured scene progressively, saving the image after
// every iteration. SIGINT stops it after the current iteration.
func Render(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(ctx, cfg); err != nil {
		return err
	}
	defer logger.Sync()

	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	if !ctx.Bool("quiet") {
		r.Progress = os.Stderr
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Preview.Addr == "" {
		return r.Render(runCtx, cfg.Render.Output, cfg.Render.Iterations)
	}
	return renderWithPreview(runCtx, r, cfg)
}

// NewRenderer loads the configured scene and integrator into a renderer
// that logs to the global logger
func NewRenderer(cfg *config.Config) (*renderer.Renderer, error) {
	opts := scene.Options{MeshPath: cfg.Scene.Mesh}
	if cfg.Scene.Texture != "" {
		tex, err := loaders.LoadImage(cfg.Scene.Texture)
		if err != nil {
			return nil, err
		}
		opts.Background = tex
	}

	aspect := float64(cfg.Render.Width) / float64(cfg.Render.Height)
	s, camera, err := scene.Load(cfg.Scene.Preset, aspect, opts)
	if err != nil {
		return nil, err
	}
	integ, err := cfg.NewIntegrator()
	if err != nil {
		return nil, err
	}

	stats := s.Stats()
	logger.Info("scene loaded",
		zap.String("preset", cfg.Scene.Preset),
		zap.String("integrator", cfg.Integrator.Kind),
		zap.Int("primitives", stats.Primitives),
		zap.Int("triangles", stats.Triangles),
		zap.Int("lights", stats.Lights),
		zap.Int("kd_nodes", stats.Tree.Nodes),
		zap.Int("kd_depth", stats.Tree.MaxDepth),
	)
	return renderer.NewRenderer(s, camera, integ, cfg.RendererConfig(), logger.Log), nil
}

// renderWithPreview serves the live preview while rendering and keeps it up
// after the last iteration until interrupted
func renderWithPreview(ctx context.Context, r *renderer.Renderer, cfg *config.Config) error {
	srv := server.NewServer(cfg.Preview.Addr, r, logger.Log.Named("preview"))
	r.OnIteration = srv.Publish

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(serverCtx)
	}()

	if err := r.Render(ctx, cfg.Render.Output, cfg.Render.Iterations); err != nil {
		return err
	}
	srv.Finish()

	logger.Info("render finished, preview still available until interrupted",
		zap.String("addr", cfg.Preview.Addr))
	select {
	case <-ctx.Done():
		cancel()
		return <-serverErr
	case err := <-serverErr:
		return err
	}
}
