package renderer

import (
	"runtime"
	"time"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed, each row samples from Seed+row
	Workers         int   // Number of parallel row workers, 0 means NumCPU
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		Seed:            42,
		Workers:         runtime.NumCPU(),
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() integrator.World
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the path tracing integrator
func NewRaytracer(scene Scene, width, height int, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render renders the full image and returns the linear color frame
func (rt *Raytracer) Render() (*Frame, RenderStats) {
	startTime := time.Now()
	frame := NewFrame(rt.width, rt.height)

	pool := NewWorkerPool(rt, frame, rt.config.Workers)
	pool.Start()
	for row := 0; row < rt.height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		MaxSamples:  rt.config.SamplesPerPixel,
		Workers:     pool.GetNumWorkers(),
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples
		stats.Rows++
	}
	stats.Elapsed = time.Since(startTime)
	stats.finalize()

	rt.logger.Printf("Rendered %dx%d in %v (%d workers, %.1f spp, avg luminance %.4f)",
		rt.width, rt.height, stats.Elapsed, stats.Workers, stats.AverageSamples, frame.AverageLuminance())
	return frame, stats
}

// RenderRow renders one image row (0 is the top row) into the frame and returns the samples taken.
// The row's sampler is seeded from Seed+row so the result does not depend on scheduling.
func (rt *Raytracer) RenderRow(row int, frame *Frame) int {
	sampler := core.NewSeededSampler(rt.config.Seed + int64(row))
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	background := rt.scene.GetBackground()

	// Image plane t runs bottom to top
	j := rt.height - 1 - row
	samples := 0
	for i := 0; i < rt.width; i++ {
		var ps PixelStats
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			s := (float64(i) + sampler.Get1D()) / float64(rt.width)
			t := (float64(j) + sampler.Get1D()) / float64(rt.height)

			ray := camera.GetRay(s, t, sampler)
			ps.AddSample(rt.integrator.RayColor(ray, world, background, sampler))
		}
		frame.Set(i, row, ps.GetColor())
		samples += ps.SampleCount
	}
	return samples
}
