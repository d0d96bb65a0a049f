package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/df07/go-pathtracer/pkg/colormap"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/render"
	"github.com/df07/go-pathtracer/pkg/scenes"
)

// cliConfig holds the flag-parsed configuration, with an optional YAML
// file (-config) supplying defaults that flags override (SPEC_FULL §4.3).
type cliConfig struct {
	scene      string
	width      int
	height     int
	samples    int
	workers    int
	output     string
	tonemap    string
	debugMode  string
	configPath string
}

func main() {
	cfg := parseFlags()

	fmt.Println("Starting path tracer...")
	start := time.Now()

	s, err := selectScene(cfg.scene)
	if err != nil {
		fmt.Printf("Error selecting scene: %v\n", err)
		os.Exit(1)
	}

	integ := selectIntegrator(cfg.debugMode, s.Radius)
	tonemap := selectTonemap(cfg.tonemap)

	logger := log.New(os.Stdout, "", log.LstdFlags)
	renderCfg := render.Config{
		Scene:      s.World,
		Camera:     s.Camera,
		Integrator: integ,
		Width:      cfg.width,
		Height:     cfg.height,
		MaxSamples: cfg.samples,
		NumWorkers: cfg.workers,
		Tonemap:    tonemap,
		Logger:     logger,
	}

	passes, img := render.Run(renderCfg)

	out, err := os.Create(cfg.output)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		fmt.Printf("Error encoding output PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v (%d passes)\n", time.Since(start), passes)
	fmt.Printf("Saved to %s\n", cfg.output)
}

func parseFlags() cliConfig {
	scene := flag.String("scene", "cornell", "compiled-in scene: sphere, cornell, mesh")
	width := flag.Int("width", 400, "image width")
	height := flag.Int("height", 300, "image height")
	samples := flag.Int("samples", 32, "samples per pixel")
	workers := flag.Int("workers", 0, "worker goroutines (0 = NumCPU)")
	output := flag.String("out", "result.png", "output PNG path")
	tonemap := flag.String("tonemap", "none", "tone-map curve: none, reinhard")
	debugMode := flag.String("debug", "", "debug integrator mode: shading, normal, depth (default: full path tracer)")
	configPath := flag.String("config", "", "optional YAML render-config file; flags override its values")
	flag.Parse()

	cfg := cliConfig{
		scene:      *scene,
		width:      *width,
		height:     *height,
		samples:    *samples,
		workers:    *workers,
		output:     *output,
		tonemap:    *tonemap,
		debugMode:  *debugMode,
		configPath: *configPath,
	}

	if *configPath != "" {
		fileCfg, err := loaders.LoadRenderConfig(*configPath)
		if err != nil {
			fmt.Printf("Error loading render config: %v\n", err)
			os.Exit(1)
		}
		applyConfigDefaults(&cfg, fileCfg)
	}

	return cfg
}

// applyConfigDefaults fills in any flag not set explicitly on the command
// line from the YAML file, so an explicit flag always wins over the file.
func applyConfigDefaults(cfg *cliConfig, file loaders.RenderConfig) {
	fs := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { fs[f.Name] = true })

	if !fs["scene"] && file.Scene != "" {
		cfg.scene = file.Scene
	}
	if !fs["width"] && file.Width != 0 {
		cfg.width = file.Width
	}
	if !fs["height"] && file.Height != 0 {
		cfg.height = file.Height
	}
	if !fs["samples"] && file.Samples != 0 {
		cfg.samples = file.Samples
	}
	if !fs["workers"] && file.Workers != 0 {
		cfg.workers = file.Workers
	}
	if !fs["out"] && file.Output != "" {
		cfg.output = file.Output
	}
	if !fs["tonemap"] && file.Tonemap != "" {
		cfg.tonemap = file.Tonemap
	}
	if !fs["debug"] && file.DebugMode != "" {
		cfg.debugMode = file.DebugMode
	}
}

func selectScene(name string) (*scenes.Scene, error) {
	switch name {
	case "sphere":
		return scenes.SphereOnBlack(), nil
	case "cornell":
		return scenes.Cornell(), nil
	case "mesh":
		return scenes.Mesh(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (want sphere, cornell, or mesh)", name)
	}
}

func selectIntegrator(debugMode string, sceneRadius float64) integrator.Integrator {
	switch debugMode {
	case "normal":
		return integrator.NewDebugIntegrator(integrator.DebugNormal, sceneRadius)
	case "depth":
		return integrator.NewDebugIntegrator(integrator.DebugDepth, sceneRadius)
	case "shading":
		return integrator.NewDebugIntegrator(integrator.DebugShading, sceneRadius)
	default:
		return integrator.NewPathTracer(core.BounceLimit)
	}
}

func selectTonemap(name string) colormap.ToneMap {
	switch name {
	case "reinhard":
		return colormap.Reinhard(core.ToneMappingExposure, core.ToneMappingWhitePoint)
	default:
		return colormap.Identity
	}
}
