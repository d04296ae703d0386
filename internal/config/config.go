// Package config handles render configuration loading and validation.
package config

import (
	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/internal/logger"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Integrator kinds accepted by IntegratorConfig.Kind
const (
	KindPath = "path"
	KindAO   = "ao"
)

// Config holds every render setting.
type Config struct {
	Render     RenderConfig     `yaml:"render"`
	Integrator IntegratorConfig `yaml:"integrator"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
	Preview    PreviewConfig    `yaml:"preview"`
}

// RenderConfig holds image and iteration settings.
type RenderConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Samples    int    `yaml:"samples"`    // Samples per pixel per iteration
	Iterations int    `yaml:"iterations"` // 0 renders until interrupted
	Output     string `yaml:"output"`     // May contain %d for the iteration number
	Workers    int    `yaml:"workers"`    // 0 uses every logical core
	Seed       int64  `yaml:"seed"`
}

// IntegratorConfig selects the light transport algorithm.
type IntegratorConfig struct {
	Kind       string `yaml:"kind"`
	MinBounces int    `yaml:"min_bounces"`
	MaxBounces int    `yaml:"max_bounces"`
	AOSamples  int    `yaml:"ao_samples"`
}

// SceneConfig selects what to render.
type SceneConfig struct {
	Preset  string `yaml:"preset"`
	Mesh    string `yaml:"mesh"`    // STL file for the mesh preset
	Texture string `yaml:"texture"` // Environment image replacing the background
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level             string `yaml:"level"`
	logger.FileConfig `yaml:",inline"`
}

// PreviewConfig holds live preview server settings.
type PreviewConfig struct {
	Addr string `yaml:"addr"` // Empty disables the server
}

// Default returns the demo configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      500,
			Height:     500,
			Samples:    16,
			Iterations: 1000,
			Output:     "render.jpg",
			Workers:    0,
			Seed:       42,
		},
		Integrator: IntegratorConfig{
			Kind:       KindPath,
			MinBounces: integrator.DefaultMinBounces,
			MaxBounces: integrator.DefaultMaxBounces,
			AOSamples:  integrator.DefaultAOSamples,
		},
		Scene: SceneConfig{
			Preset: "default",
		},
		Logging: LoggingConfig{
			Level:      "info",
			FileConfig: logger.DefaultFileConfig(""),
		},
	}
}

// Validate rejects settings the renderer cannot use.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("image size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Samples <= 0 {
		return errors.Errorf("samples per pixel must be positive, got %d", c.Render.Samples)
	}
	if c.Render.Workers < 0 {
		return errors.Errorf("worker count cannot be negative, got %d", c.Render.Workers)
	}

	switch c.Integrator.Kind {
	case KindPath:
		if c.Integrator.MaxBounces <= 0 {
			return errors.Errorf("max bounces must be positive, got %d", c.Integrator.MaxBounces)
		}
		if c.Integrator.MinBounces < 0 || c.Integrator.MinBounces > c.Integrator.MaxBounces {
			return errors.Errorf("min bounces must be in [0, %d], got %d",
				c.Integrator.MaxBounces, c.Integrator.MinBounces)
		}
	case KindAO:
		if c.Integrator.AOSamples <= 0 {
			return errors.Errorf("ambient occlusion samples must be positive, got %d", c.Integrator.AOSamples)
		}
	default:
		return errors.Errorf("unknown integrator %q (expected %q or %q)", c.Integrator.Kind, KindPath, KindAO)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// NewIntegrator builds the configured integrator.
func (c *Config) NewIntegrator() (integrator.Integrator, error) {
	switch c.Integrator.Kind {
	case KindPath:
		return &integrator.PathTracer{
			MinBounces: c.Integrator.MinBounces,
			MaxBounces: c.Integrator.MaxBounces,
		}, nil
	case KindAO:
		return integrator.NewAmbientOcclusion(c.Integrator.AOSamples), nil
	default:
		return nil, errors.Errorf("unknown integrator %q", c.Integrator.Kind)
	}
}

// RendererConfig converts the render section for the renderer package.
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		Width:           c.Render.Width,
		Height:          c.Render.Height,
		SamplesPerPixel: c.Render.Samples,
		Workers:         c.Render.Workers,
		Seed:            c.Render.Seed,
	}
}

// LoggerOptions converts the logging section for the logger package.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level: c.Logging.Level,
		File:  c.Logging.FileConfig,
	}
}
