// Package render implements the parallel render driver of spec.md §4.10:
// a worker pool over disjoint pixel rows, a pass barrier, a cooperative
// early-stop progress hook, and the final tone-map/gamma/quantize output
// pipeline.
package render

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/colormap"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ProgressFunc is invoked after every completed sample pass with the
// current accumulation buffer and the number of passes completed so far.
// Returning true requests the driver stop early (spec.md §4.10 step 2b).
type ProgressFunc func(buf []core.Vec3, passesDone int) (stop bool)

// Config bundles the render driver's inputs.
type Config struct {
	Scene       *scene.Scene
	Camera      *camera.Camera
	Integrator  integrator.Integrator
	Width       int
	Height      int
	MaxSamples  int
	NumWorkers  int
	Tonemap     colormap.ToneMap
	PixelFilter colormap.PixelFilter
	Progress    ProgressFunc
	Logger      core.Logger
}

// Run executes the render loop and returns the number of completed sample
// passes along with the final 8-bit RGB image.
func Run(cfg Config) (passes int, img *image.RGBA) {
	width, height := cfg.Width, cfg.Height
	buf := make([]core.Vec3, width*height)

	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}

	for s := 1; s <= cfg.MaxSamples; s++ {
		runPass(cfg, buf, s, numWorkers)
		passes = s

		logger.Printf("completed sample pass %d/%d", s, cfg.MaxSamples)

		if cfg.Progress != nil && cfg.Progress(buf, s) {
			break
		}
	}

	return passes, resolveImage(cfg, buf, passes)
}

// runPass computes the supersampled contribution for every pixel in
// parallel across numWorkers goroutines that pull row indices from a shared
// channel, so each row is rendered by exactly one worker (spec.md §5:
// disjoint mutable access, no cross-pixel communication, barrier at pass
// end via sync.WaitGroup).
func runPass(cfg Config, buf []core.Vec3, sampleIdx, numWorkers int) {
	rowTasks := make(chan int, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		rowTasks <- y
	}
	close(rowTasks)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowTasks {
				renderRow(cfg, buf, y, sampleIdx)
			}
		}()
	}
	wg.Wait()
}

// renderRow computes the SS*SS-stratified supersampled contribution for
// every pixel in row y and accumulates it into buf.
func renderRow(cfg Config, buf []core.Vec3, y, sampleIdx int) {
	ss := core.SuperSampling
	for x := 0; x < cfg.Width; x++ {
		pixelSum := core.Vec3{}
		for sy := 0; sy < ss; sy++ {
			for sx := 0; sx < ss; sx++ {
				fx := float64(x) + (float64(sx)+0.5)/float64(ss)
				fy := float64(y) + (float64(sy)+0.5)/float64(ss)

				nc := camera.NormalizedCoord(fx, fy, cfg.Width, cfg.Height)
				sampler := core.NewPixelSampler(sampleIdx, nc.X, nc.Y)
				ray := cfg.Camera.RayWithDOF(nc, sampler)

				pixelSum = pixelSum.Add(cfg.Integrator.RayColor(ray, cfg.Scene, sampler))
			}
		}
		idx := y*cfg.Width + x
		buf[idx] = buf[idx].Add(pixelSum)
	}
}

// resolveImage divides the accumulation buffer by the total sample count,
// applies tone mapping and gamma encoding per pixel, runs the pixel-array
// filter over the whole buffer, then quantizes to 8-bit RGB.
func resolveImage(cfg Config, buf []core.Vec3, passes int) *image.RGBA {
	ss := core.SuperSampling
	divisor := float64(passes * ss * ss)
	if divisor <= 0 {
		divisor = 1
	}

	tonemap := cfg.Tonemap
	if tonemap == nil {
		tonemap = colormap.Identity
	}
	filter := cfg.PixelFilter
	if filter == nil {
		filter = colormap.IdentityFilter
	}

	resolved := make([]core.Vec3, len(buf))
	for i, hdr := range buf {
		resolved[i] = colormap.Resolve(hdr.Mul(1.0/divisor), tonemap)
	}
	resolved = filter(resolved, cfg.Width, cfg.Height)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			r, g, b := colormap.Quantize(resolved[y*cfg.Width+x])
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
