package scene

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

func TestScene_Intersect_Hit(t *testing.T) {
	mat := material.NewMaterial(texture.White(), texture.Black(), texture.Black(), material.Diffuse())
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat)
	s := NewScene([]geometry.Primitive{sphere}, NewConstantSkybox(core.NewVec3(0, 0, 1)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isect := s.Intersect(ray)
	if !hit {
		t.Fatalf("expected hit")
	}
	if isect.Distance != 4 {
		t.Errorf("expected distance 4, got %v", isect.Distance)
	}
}

func TestScene_Intersect_MissUsesSkybox(t *testing.T) {
	sky := core.NewVec3(0.1, 0.2, 0.3)
	s := NewScene(nil, NewConstantSkybox(sky))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isect := s.Intersect(ray)
	if hit {
		t.Fatalf("expected miss")
	}
	if isect.Material.Emission != sky {
		t.Errorf("expected skybox color %v, got %v", sky, isect.Material.Emission)
	}
}

func TestScene_NewScene_RegistersEmissiveLights(t *testing.T) {
	emissive := material.NewMaterial(texture.Black(), texture.White(), texture.Black(), material.Diffuse())
	dark := material.NewMaterial(texture.White(), texture.Black(), texture.Black(), material.Diffuse())

	light := geometry.NewSphere(core.NewVec3(0, 5, 0), 1, emissive)
	wall := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, dark)

	s := NewScene([]geometry.Primitive{light, wall}, NewConstantSkybox(core.Vec3{}))

	if len(s.Lights) != 1 {
		t.Fatalf("expected 1 light, got %d", len(s.Lights))
	}
	if s.Lights[0] != geometry.Primitive(light) {
		t.Errorf("expected the emissive sphere to be registered as a light")
	}
}

func TestCubeMapSkybox_FaceSelection(t *testing.T) {
	colors := [6]core.Vec3{
		core.NewVec3(1, 0, 0), // +X
		core.NewVec3(0, 1, 0), // -X
		core.NewVec3(0, 0, 1), // +Y
		core.NewVec3(1, 1, 0), // -Y
		core.NewVec3(1, 0, 1), // +Z
		core.NewVec3(0, 1, 1), // -Z
	}
	var faces [6]texture.Source
	for i, c := range colors {
		faces[i] = texture.NewConstant(c)
	}
	sky := NewCubeMapSkybox(faces)

	tests := []struct {
		dir  core.Vec3
		want core.Vec3
	}{
		{core.NewVec3(1, 0, 0), colors[0]},
		{core.NewVec3(-1, 0, 0), colors[1]},
		{core.NewVec3(0, 1, 0), colors[2]},
		{core.NewVec3(0, -1, 0), colors[3]},
		{core.NewVec3(0, 0, 1), colors[4]},
		{core.NewVec3(0, 0, -1), colors[5]},
	}
	for _, tt := range tests {
		got := sky.Sample(tt.dir)
		if got != tt.want {
			t.Errorf("direction %v: expected %v, got %v", tt.dir, tt.want, got)
		}
	}
}
