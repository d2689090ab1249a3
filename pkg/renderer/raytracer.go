// Package renderer turns a camera and a path tracer into an image using a
// fixed pool of worker goroutines.
package renderer

import (
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/core"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/log"
)

var logger = log.New("renderer")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	NumWorkers      int     // Worker goroutines, 0 for one per CPU
	Gamma           float64 // Display gamma applied before quantization
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 64,
		MaxDepth:        50,
		Gamma:           2.0,
	}
}

// Validate reports configuration values the renderer cannot work with
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return errors.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return errors.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.NumWorkers < 0:
		return errors.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	case c.Gamma <= 0:
		return errors.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	return nil
}

// Tracer computes the color carried back along a ray. It must be safe for
// concurrent use; all per-call randomness comes from sampler.
type Tracer interface {
	TraceColor(ray core.Ray, depth, maxDepth int, sampler core.Sampler) core.Vec3
}

// Raytracer handles the rendering process
type Raytracer struct {
	camera *Camera
	tracer Tracer
	config SamplingConfig
	seed   int64
}

// NewRaytracer creates a new raytracer. The camera must produce images of the
// configured size.
func NewRaytracer(camera *Camera, tracer Tracer, config SamplingConfig, seed int64) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sampling config")
	}
	if camera.Width() != config.Width || camera.Height() != config.Height {
		return nil, errors.Errorf("camera produces %dx%d images but %dx%d was requested",
			camera.Width(), camera.Height(), config.Width, config.Height)
	}

	return &Raytracer{
		camera: camera,
		tracer: tracer,
		config: config,
		seed:   seed,
	}, nil
}

// pixelRange is a contiguous run of row-major pixel indices [first, last)
type pixelRange struct {
	first, last int
}

// partitionPixels splits total pixels into at most workers contiguous ranges
// whose sizes differ by at most one
func partitionPixels(total, workers int) []pixelRange {
	if workers > total {
		workers = total
	}
	if workers <= 0 {
		return nil
	}

	ranges := make([]pixelRange, workers)
	base, extra := total/workers, total%workers
	start := 0
	for i := range ranges {
		size := base
		if i < extra {
			size++
		}
		ranges[i] = pixelRange{first: start, last: start + size}
		start += size
	}
	return ranges
}

// Render traces the whole frame and returns it with its statistics. Each
// worker owns a contiguous range of pixels and its own sampler, so the only
// synchronization is the final join.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	ranges := partitionPixels(width*height, numWorkers)

	logger.Debugf("rendering %dx%d at %d spp with %d workers", width, height, rt.config.SamplesPerPixel, len(ranges))

	start := time.Now()
	workerStats := make([]WorkerStats, len(ranges))
	var wg sync.WaitGroup
	for id, r := range ranges {
		wg.Add(1)
		go func(id int, r pixelRange) {
			defer wg.Done()
			workerStats[id] = rt.renderRange(id, r, img)
		}(id, r)
	}
	wg.Wait()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Workers:         workerStats,
		Duration:        time.Since(start),
	}
	for _, ws := range workerStats {
		stats.TotalSamples += ws.Samples
	}

	logger.Noticef("rendered frame in %s", stats.Duration)
	return img, stats
}

// renderRange renders one worker's pixels. Pixels are disjoint between
// workers, so writes to img never overlap.
func (rt *Raytracer) renderRange(id int, r pixelRange, img *image.RGBA) WorkerStats {
	start := time.Now()
	sampler := core.NewSeededSampler(rt.seed + int64(id))
	stats := WorkerStats{ID: id, FirstPixel: r.first, LastPixel: r.last}

	width := rt.config.Width
	for idx := r.first; idx < r.last; idx++ {
		px, py := idx%width, idx/width

		colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}
		rays := rt.camera.CreateRays(px, py, rt.config.SamplesPerPixel, sampler)
		for _, ray := range rays {
			colorAccum = colorAccum.Add(rt.tracer.TraceColor(ray, 0, rt.config.MaxDepth, sampler))
		}
		stats.Samples += len(rays)

		colorVec := colorAccum.Multiply(1.0 / float64(len(rays)))
		img.SetRGBA(px, py, vec3ToColor(colorVec, rt.config.Gamma))
	}

	stats.Duration = time.Since(start)
	logger.Debugf("worker %d finished pixels [%d, %d) in %s", id, r.first, r.last, stats.Duration)
	return stats
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(gamma)

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
