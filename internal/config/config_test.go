package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/integrator"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 500 || cfg.Render.Height != 500 {
		t.Errorf("Expected 500x500, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Samples != 16 {
		t.Errorf("Expected 16 samples, got %d", cfg.Render.Samples)
	}
	if cfg.Integrator.Kind != KindPath {
		t.Errorf("Expected path integrator, got %s", cfg.Integrator.Kind)
	}
	if cfg.Integrator.MinBounces != 4 || cfg.Integrator.MaxBounces != 50 {
		t.Errorf("Expected bounces 4..50, got %d..%d", cfg.Integrator.MinBounces, cfg.Integrator.MaxBounces)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Path != "" {
		t.Errorf("Expected info level without a file, got %q %q", cfg.Logging.Level, cfg.Logging.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoad_MergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	content := `
render:
  width: 320
  output: "frames/out-%03d.png"
integrator:
  kind: ao
  ao_samples: 8
scene:
  preset: cornell
logging:
  level: debug
  file: render.log
  max_backups: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Render.Width != 320 {
		t.Errorf("Expected width 320, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 500 {
		t.Errorf("Expected height to keep default 500, got %d", cfg.Render.Height)
	}
	if cfg.Render.Output != "frames/out-%03d.png" {
		t.Errorf("Expected output pattern, got %s", cfg.Render.Output)
	}
	if cfg.Integrator.Kind != KindAO || cfg.Integrator.AOSamples != 8 {
		t.Errorf("Expected ao with 8 samples, got %s/%d", cfg.Integrator.Kind, cfg.Integrator.AOSamples)
	}
	if cfg.Scene.Preset != "cornell" {
		t.Errorf("Expected cornell, got %s", cfg.Scene.Preset)
	}
	if cfg.Logging.Path != "render.log" || cfg.Logging.MaxBackups != 5 {
		t.Errorf("Expected inline file settings, got %+v", cfg.Logging.FileConfig)
	}
	if cfg.Logging.MaxSizeMB != 50 {
		t.Errorf("Expected default max size 50, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("render: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed YAML, got nil")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "render.yaml")
	cfg := Default()
	cfg.Render.Seed = 7
	cfg.Preview.Addr = ":8080"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Expected %+v, got %+v", *cfg, *loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Render.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Render.Height = -1 }, true},
		{"zero samples", func(c *Config) { c.Render.Samples = 0 }, true},
		{"negative workers", func(c *Config) { c.Render.Workers = -2 }, true},
		{"unknown integrator", func(c *Config) { c.Integrator.Kind = "bdpt" }, true},
		{"min above max", func(c *Config) { c.Integrator.MinBounces = 60 }, true},
		{"zero max bounces", func(c *Config) { c.Integrator.MaxBounces = 0 }, true},
		{"ao without samples", func(c *Config) { c.Integrator.Kind = KindAO; c.Integrator.AOSamples = 0 }, true},
		{"ao", func(c *Config) { c.Integrator.Kind = KindAO }, false},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{
		Width:      64,
		Iterations: -1,
		Integrator: KindAO,
		Preset:     "mesh",
		Mesh:       "bunny.stl",
		Serve:      ":9000",
	})

	if cfg.Render.Width != 64 || cfg.Render.Height != 500 {
		t.Errorf("Expected 64x500, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Iterations != -1 {
		t.Errorf("Expected iterations -1, got %d", cfg.Render.Iterations)
	}
	if cfg.Render.Samples != 16 {
		t.Errorf("Expected unset samples to keep 16, got %d", cfg.Render.Samples)
	}
	if cfg.Integrator.Kind != KindAO || cfg.Scene.Preset != "mesh" || cfg.Scene.Mesh != "bunny.stl" {
		t.Errorf("Expected ao/mesh/bunny.stl, got %s/%s/%s", cfg.Integrator.Kind, cfg.Scene.Preset, cfg.Scene.Mesh)
	}
	if cfg.Preview.Addr != ":9000" {
		t.Errorf("Expected preview on :9000, got %s", cfg.Preview.Addr)
	}
}

func TestNewIntegrator(t *testing.T) {
	cfg := Default()
	cfg.Integrator.MinBounces = 2
	cfg.Integrator.MaxBounces = 9

	integ, err := cfg.NewIntegrator()
	if err != nil {
		t.Fatalf("NewIntegrator failed: %v", err)
	}
	pt, ok := integ.(*integrator.PathTracer)
	if !ok {
		t.Fatalf("Expected *PathTracer, got %T", integ)
	}
	if pt.MinBounces != 2 || pt.MaxBounces != 9 {
		t.Errorf("Expected bounces 2..9, got %d..%d", pt.MinBounces, pt.MaxBounces)
	}

	cfg.Integrator.Kind = KindAO
	cfg.Integrator.AOSamples = 5
	integ, err = cfg.NewIntegrator()
	if err != nil {
		t.Fatalf("NewIntegrator failed: %v", err)
	}
	if ao, ok := integ.(*integrator.AmbientOcclusion); !ok || ao.Samples != 5 {
		t.Errorf("Expected AO with 5 samples, got %#v", integ)
	}

	cfg.Integrator.Kind = "whitted"
	if _, err := cfg.NewIntegrator(); err == nil {
		t.Error("Expected error for unknown integrator, got nil")
	}
}

func TestRendererConfig(t *testing.T) {
	cfg := Default()
	cfg.Render.Workers = 3
	rc := cfg.RendererConfig()
	if rc.Width != 500 || rc.SamplesPerPixel != 16 || rc.Workers != 3 || rc.Seed != 42 {
		t.Errorf("Expected converted render settings, got %+v", rc)
	}
}
