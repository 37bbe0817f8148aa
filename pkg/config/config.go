package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// Config is the render configuration file.
// Zero width, height or samples means the scene's own setting.
type Config struct {
	Scene    string `json:"scene"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Samples  int    `json:"samples,omitempty"`
	MaxDepth int    `json:"maxDepth"`
	Seed     int64  `json:"seed"`
	Workers  int    `json:"workers,omitempty"`
	Output   string `json:"output"`
	Texture  string `json:"texture,omitempty"` // Image file for the earth scene
}

// Default returns the configuration used when no file is given
func Default() Config {
	sampling := renderer.DefaultSamplingConfig()
	return Config{
		Scene:    "random",
		MaxDepth: sampling.MaxDepth,
		Seed:     sampling.Seed,
		Output:   "output/render.png",
	}
}

// Load reads a JSON configuration file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be rendered
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("scene must be set")
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("resolution must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".png", ".ppm":
	default:
		return fmt.Errorf("output must end in .png or .ppm, got %q", c.Output)
	}
	return nil
}

// SamplingConfig applies the file settings on top of a scene's sampling defaults
func (c Config) SamplingConfig(base renderer.SamplingConfig) renderer.SamplingConfig {
	sampling := base
	if c.Samples > 0 {
		sampling.SamplesPerPixel = c.Samples
	}
	sampling.MaxDepth = c.MaxDepth
	sampling.Seed = c.Seed
	if c.Workers > 0 {
		sampling.Workers = c.Workers
	}
	if sampling.Workers <= 0 {
		sampling.Workers = runtime.NumCPU()
	}
	return sampling
}
