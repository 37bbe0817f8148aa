package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/config"
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg config.Config)
	}{
		{"defaults", nil, func(t *testing.T, cfg config.Config) {
			if cfg != config.Default() {
				t.Errorf("Expected defaults, got %+v", cfg)
			}
		}},
		{"scene and size", []string{"-scene", "cornell", "-width", "64", "-height", "32"}, func(t *testing.T, cfg config.Config) {
			if cfg.Scene != "cornell" || cfg.Width != 64 || cfg.Height != 32 {
				t.Errorf("Flags not applied: %+v", cfg)
			}
		}},
		{"sampling", []string{"-samples", "3", "-depth", "0", "-seed", "9", "-workers", "2"}, func(t *testing.T, cfg config.Config) {
			if cfg.Samples != 3 || cfg.MaxDepth != 0 || cfg.Seed != 9 || cfg.Workers != 2 {
				t.Errorf("Flags not applied: %+v", cfg)
			}
		}},
		{"ppm output", []string{"-output", "out/render.ppm"}, func(t *testing.T, cfg config.Config) {
			if cfg.Output != "out/render.ppm" {
				t.Errorf("Expected ppm output, got %s", cfg.Output)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := parseArgs(tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("parseArgs failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseArgs_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	content := `{"scene": "perlin", "width": 100, "height": 50, "samples": 10, "seed": 5}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, _, err := parseArgs([]string{"-config", path, "-samples", "2"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.Scene != "perlin" || cfg.Width != 100 || cfg.Seed != 5 {
		t.Errorf("File values lost: %+v", cfg)
	}
	if cfg.Samples != 2 {
		t.Errorf("Flag should override file samples, got %d", cfg.Samples)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"negative samples", []string{"-samples", "-1"}},
		{"bad output extension", []string{"-output", "render.gif"}},
		{"missing config", []string{"-config", "does-not-exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseArgs(tt.args, &bytes.Buffer{}); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	var out bytes.Buffer
	_, _, err := parseArgs([]string{"-help"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}
	for _, want := range []string{"Available scenes:", "cornell", "simple-light", "-samples"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Help output missing %q", want)
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		scene  string
		output string
	}{
		{"cornell png", "cornell", "cornell.png"},
		{"earth ppm", "earth", "earth.ppm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Scene = tt.scene
			cfg.Width = 12
			cfg.Height = 8
			cfg.Samples = 1
			cfg.MaxDepth = 4
			cfg.Workers = 2
			cfg.Output = filepath.Join(t.TempDir(), "out", tt.output)

			stats, err := run(cfg, core.NopLogger{})
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if stats.TotalPixels != 96 || stats.TotalSamples != 96 {
				t.Errorf("Expected 96 pixels and samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
			}

			data, err := os.ReadFile(cfg.Output)
			if err != nil {
				t.Fatalf("Output not written: %v", err)
			}
			if strings.HasSuffix(tt.output, ".ppm") {
				if !strings.HasPrefix(string(data), "P3\n12 8\n255\n") {
					t.Errorf("Unexpected PPM header in %q", string(data[:min(len(data), 16)]))
				}
				return
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Output is not a PNG: %v", err)
			}
			if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
				t.Errorf("Expected 12x8 image, got %v", img.Bounds())
			}
		})
	}
}

func TestRun_UnknownScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "nonexistent"
	cfg.Output = filepath.Join(t.TempDir(), "out.png")
	if _, err := run(cfg, core.NopLogger{}); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
