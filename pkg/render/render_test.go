package render

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/texture"
)

func testScene() *scene.Scene {
	sphere := geometry.NewSphere(
		core.NewVec3(0, 0, -5), 1,
		material.NewMaterial(texture.NewConstant(core.NewVec3(0.8, 0.2, 0.2)), texture.Black(), texture.Black(), material.Diffuse()),
	)
	light := geometry.NewSphere(
		core.NewVec3(2, 3, -3), 0.5,
		material.NewMaterial(texture.Black(), texture.NewConstant(core.NewVec3(8, 8, 8)), texture.Black(), material.Diffuse()),
	)
	return scene.NewScene([]geometry.Primitive{sphere, light}, scene.NewConstantSkybox(core.NewVec3(0.02, 0.02, 0.05)))
}

func testCamera() *camera.Camera {
	return camera.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 40, camera.LensSquare, 0, 5)
}

func runConfig(workers int) Config {
	return Config{
		Scene:      testScene(),
		Camera:     testCamera(),
		Integrator: integrator.NewPathTracer(core.BounceLimit),
		Width:      16,
		Height:     16,
		MaxSamples: 2,
		NumWorkers: workers,
	}
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	_, img1 := Run(runConfig(1))
	_, img4 := Run(runConfig(4))

	if len(img1.Pix) != len(img4.Pix) {
		t.Fatalf("image size mismatch")
	}
	for i := range img1.Pix {
		if img1.Pix[i] != img4.Pix[i] {
			t.Fatalf("byte %d differs between worker counts: %d vs %d", i, img1.Pix[i], img4.Pix[i])
		}
	}
}

func TestRun_ProgressHookCanStopEarly(t *testing.T) {
	cfg := runConfig(2)
	cfg.MaxSamples = 10
	calls := 0
	cfg.Progress = func(buf []core.Vec3, passesDone int) bool {
		calls++
		return passesDone >= 1
	}

	passes, _ := Run(cfg)
	if passes != 1 {
		t.Errorf("expected render to stop after 1 pass, got %d", passes)
	}
	if calls != 1 {
		t.Errorf("expected progress hook called once, got %d", calls)
	}
}

func TestRun_ProducesNonBlackImage(t *testing.T) {
	_, img := Run(runConfig(2))
	allBlack := true
	for _, b := range img.Pix {
		if b != 0 {
			allBlack = false
			break
		}
	}
	if allBlack {
		t.Errorf("expected a non-black rendered image")
	}
}
