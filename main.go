package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/df07/go-nextweek-raytracer/pkg/config"
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
	"github.com/df07/go-nextweek-raytracer/pkg/scene"
)

func main() {
	cfg, opts, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			log.Fatalf("Error creating CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Error starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Println("Starting Next Week Raytracer...")
	stats, err := run(cfg, core.StdLogger{})
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Samples per pixel: %.1f over %d pixels\n", stats.AverageSamples, stats.TotalPixels)
	fmt.Printf("Render saved as %s\n", cfg.Output)
}

// cliOptions holds flags that are not part of the render configuration
type cliOptions struct {
	cpuProfile string
}

// parseArgs builds the configuration from an optional JSON file, then applies explicitly set flags on top
func parseArgs(args []string, output io.Writer) (config.Config, cliOptions, error) {
	var opts cliOptions
	defaults := config.Default()

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	configPath := fs.String("config", "", "JSON render configuration file")
	sceneName := fs.String("scene", defaults.Scene, "Scene name (see -help)")
	width := fs.Int("width", 0, "Image width, 0 for the scene default")
	height := fs.Int("height", 0, "Image height, 0 for the scene default")
	samples := fs.Int("samples", 0, "Samples per pixel, 0 for the scene default")
	maxDepth := fs.Int("depth", defaults.MaxDepth, "Maximum ray bounce depth")
	seed := fs.Int64("seed", defaults.Seed, "Random seed")
	workers := fs.Int("workers", 0, "Number of parallel workers, 0 for all CPUs")
	outputPath := fs.String("output", defaults.Output, "Output file (.png or .ppm)")
	texturePath := fs.String("texture", "", "Image texture for the earth scene")
	fs.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	help := fs.Bool("help", false, "Show help information")
	fs.Usage = func() { printHelp(output, fs) }

	if err := fs.Parse(args); err != nil {
		return defaults, opts, err
	}
	if *help {
		fs.Usage()
		return defaults, opts, flag.ErrHelp
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return defaults, opts, err
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "samples":
			cfg.Samples = *samples
		case "depth":
			cfg.MaxDepth = *maxDepth
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "output":
			cfg.Output = *outputPath
		case "texture":
			cfg.Texture = *texturePath
		}
	})

	if err := cfg.Validate(); err != nil {
		return defaults, opts, fmt.Errorf("invalid arguments: %w", err)
	}
	return cfg, opts, nil
}

// run builds the configured scene, renders it and writes the image
func run(cfg config.Config, logger core.Logger) (renderer.RenderStats, error) {
	s, err := scene.Create(cfg.Scene, scene.Options{Seed: cfg.Seed, TexturePath: cfg.Texture})
	if err != nil {
		return renderer.RenderStats{}, err
	}

	width, height := s.Width, s.Height
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	s.SetResolution(width, height)

	if err := s.Preprocess(rand.New(rand.NewSource(cfg.Seed))); err != nil {
		return renderer.RenderStats{}, err
	}
	logger.Printf("Scene %s: %d shapes, %dx%d", s.Name, s.GetPrimitiveCount(), width, height)

	sampling := cfg.SamplingConfig(s.SamplingConfig)
	frame, stats := renderer.NewRaytracer(s, width, height, sampling, logger).Render()

	if err := renderer.SaveImage(cfg.Output, frame.ToRGBA()); err != nil {
		return stats, err
	}
	return stats, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Next Week Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-13s - %s\n", info.ID, info.Description)
	}
}
