package config

// Overrides holds command line settings. Zero values leave the config
// untouched.
type Overrides struct {
	Width      int
	Height     int
	Samples    int
	Iterations int
	Output     string
	Workers    int
	Seed       int64
	Integrator string
	Preset     string
	Mesh       string
	Texture    string
	LogLevel   string
	Serve      string
}

// Apply merges overrides into the config. Command line flags take priority
// over the file.
func (c *Config) Apply(o Overrides) {
	if o.Width > 0 {
		c.Render.Width = o.Width
	}
	if o.Height > 0 {
		c.Render.Height = o.Height
	}
	if o.Samples > 0 {
		c.Render.Samples = o.Samples
	}
	if o.Iterations != 0 {
		c.Render.Iterations = o.Iterations
	}
	if o.Output != "" {
		c.Render.Output = o.Output
	}
	if o.Workers > 0 {
		c.Render.Workers = o.Workers
	}
	if o.Seed != 0 {
		c.Render.Seed = o.Seed
	}
	if o.Integrator != "" {
		c.Integrator.Kind = o.Integrator
	}
	if o.Preset != "" {
		c.Scene.Preset = o.Preset
	}
	if o.Mesh != "" {
		c.Scene.Mesh = o.Mesh
	}
	if o.Texture != "" {
		c.Scene.Texture = o.Texture
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.Serve != "" {
		c.Preview.Addr = o.Serve
	}
}
