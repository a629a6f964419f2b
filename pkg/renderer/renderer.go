package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
	"github.com/tinycg/go-whitted-raytracer/pkg/scene"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	TotalRays   int           // Primary rays cast (pixels times samples)
	Workers     int           // Worker goroutines used
	Elapsed     time.Duration // Wall-clock render time
}

// Renderer drives the data-parallel per-pixel render loop. Workers pull image
// rows off a channel and write into disjoint slices of the output buffer, so
// the only shared mutable state needs no synchronization. The scene is
// read-only for the whole render.
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	width      int
	height     int
	numWorkers int
	logger     core.Logger
}

// NewRenderer creates a renderer for the given scene, camera and image size
func NewRenderer(s *scene.Scene, camera *Camera, width, height int) *Renderer {
	return &Renderer{
		scene:      s,
		camera:     camera,
		width:      width,
		height:     height,
		numWorkers: runtime.NumCPU(),
	}
}

// SetNumWorkers overrides the worker count; values below 1 fall back to NumCPU
func (r *Renderer) SetNumWorkers(n int) *Renderer {
	if n < 1 {
		n = runtime.NumCPU()
	}
	r.numWorkers = n
	return r
}

// SetLogger installs a progress logger
func (r *Renderer) SetLogger(logger core.Logger) *Renderer {
	r.logger = logger
	return r
}

// Render traces every pixel and returns the finished image with render stats
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	rows := make(chan int, r.height)
	for y := 0; y < r.height; y++ {
		rows <- y
	}
	close(rows)

	var pixelsDone atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			// Each worker owns its generator, so sampling never contends
			random := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

			for y := range rows {
				r.renderRow(img, y, random)
				r.reportProgress(pixelsDone.Add(int64(r.width)))
			}
		}(i)
	}

	wg.Wait()

	stats := RenderStats{
		TotalPixels: r.width * r.height,
		TotalRays:   r.width * r.height * r.camera.SampleCount(),
		Workers:     r.numWorkers,
		Elapsed:     time.Since(start),
	}

	if r.logger != nil {
		r.logger.Printf("rendered %d pixels (%d rays) with %d workers in %v",
			stats.TotalPixels, stats.TotalRays, stats.Workers, stats.Elapsed)
	}

	return img, stats
}

// renderRow traces one image row into the shared buffer
func (r *Renderer) renderRow(img *image.RGBA, y int, random *rand.Rand) {
	for x := 0; x < r.width; x++ {
		color := r.pixelColor(x, y, random)

		red, green, blue := color.QuantizeRGB8()
		offset := img.PixOffset(x, y)
		img.Pix[offset+0] = red
		img.Pix[offset+1] = green
		img.Pix[offset+2] = blue
		img.Pix[offset+3] = 0xff
	}
}

// pixelColor resolves one pixel, averaging jittered samples when the camera
// has antialiasing enabled
func (r *Renderer) pixelColor(x, y int, random *rand.Rand) core.Color {
	if !r.camera.Antialiased() {
		ray := r.camera.RayThroughPixel(x, y, r.width, r.height)
		return r.scene.CastRay(ray, random)
	}

	samples := r.camera.SampleCount()
	color := core.Black
	for i := 0; i < samples; i++ {
		ray := r.camera.SampledRayThroughPixel(x, y, r.width, r.height, random)
		color = color.Add(r.scene.CastRay(ray, random))
	}
	return color.Scale(1 / float64(samples))
}

// reportProgress logs at every completed tenth of the image
func (r *Renderer) reportProgress(done int64) {
	if r.logger == nil {
		return
	}

	total := int64(r.width * r.height)
	tenth := total / 10
	if tenth > 0 && done%tenth < int64(r.width) && done != total {
		r.logger.Printf("progress: %d%% (%d/%d pixels)", done*100/total, done, total)
	}
}
