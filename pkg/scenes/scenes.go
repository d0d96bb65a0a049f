// Package scenes holds the compiled-in example scenes selectable from
// cmd/pathtracer: scene literal construction is explicitly out of scope
// for the core engine (spec.md §1), so these live outside pkg/scene and
// exist only to exercise it end to end.
package scenes

import (
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Scene bundles a compiled-in world with the camera it was composed for.
type Scene struct {
	World  *scene.Scene
	Camera *camera.Camera
	Radius float64 // scene bounding radius, used by the Depth debug mode
}

// SphereOnBlack is the minimal end-to-end scene: one diffuse sphere lit
// only by a single emissive sphere, against a black skybox (spec.md §8).
func SphereOnBlack() *Scene {
	sphere := geometry.NewSphere(
		core.NewVec3(0, 0, -5), 1,
		material.NewMaterial(texture.NewConstant(core.NewVec3(0.8, 0.3, 0.3)), texture.Black(), texture.Black(), material.Diffuse()),
	)
	light := geometry.NewSphere(
		core.NewVec3(3, 4, -2), 0.75,
		material.NewMaterial(texture.Black(), texture.NewConstant(core.NewVec3(15, 15, 15)), texture.Black(), material.Diffuse()),
	)

	world := scene.NewScene(
		[]geometry.Primitive{sphere, light},
		scene.NewConstantSkybox(core.Vec3{}),
	)

	cam := camera.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 40, camera.LensSquare, 0, 5)
	return &Scene{World: world, Camera: cam, Radius: 10}
}

// Cornell builds a Cornell-box-style scene: five walls forming an open box
// (solid red and green sides, checkerboard floor and back wall, gradient
// ceiling), an area light (emissive sphere) at the ceiling, and one mirror
// and one glossy GGX sphere inside —
// grounded on the teacher's procedural-texture idiom and used as the
// direct-illumination end-to-end test scenario (spec.md §8).
func Cornell() *Scene {
	red := material.NewMaterial(texture.NewConstant(core.NewVec3(0.65, 0.05, 0.05)), texture.Black(), texture.Black(), material.Diffuse())
	green := material.NewMaterial(texture.NewConstant(core.NewVec3(0.12, 0.45, 0.15)), texture.Black(), texture.Black(), material.Diffuse())
	white := material.NewMaterial(texture.Checkerboard(1, core.NewVec3(0.73, 0.73, 0.73), core.NewVec3(0.85, 0.85, 0.85)), texture.Black(), texture.Black(), material.Diffuse())
	ceiling := material.NewMaterial(texture.Gradient(0, 10, core.NewVec3(0.73, 0.73, 0.73), core.NewVec3(0.9, 0.9, 0.95)), texture.Black(), texture.Black(), material.Diffuse())

	mirror := material.NewMaterial(texture.White(), texture.Black(), texture.Black(), material.Specular())
	glossy := material.NewMaterial(texture.NewConstant(core.NewVec3(0.9, 0.9, 0.9)), texture.Black(), texture.NewConstant(core.NewVec3(0.2, 0.2, 0.2)), material.GGX(0.04))

	const wall = 1000.0
	primitives := []geometry.Primitive{
		geometry.NewCuboid(core.NewVec3(-wall-5, -5, -5), core.NewVec3(-5, 5, 5), red),      // left
		geometry.NewCuboid(core.NewVec3(5, -5, -5), core.NewVec3(wall+5, 5, 5), green),      // right
		geometry.NewCuboid(core.NewVec3(-5, -wall-5, -5), core.NewVec3(5, -5, 5), white),    // floor
		geometry.NewCuboid(core.NewVec3(-5, 5, -5), core.NewVec3(5, wall+5, 5), ceiling),    // ceiling
		geometry.NewCuboid(core.NewVec3(-5, -5, -wall-5), core.NewVec3(5, 5, -5), white),    // back

		geometry.NewSphere(core.NewVec3(-1.8, -3.5, -1), 1.5, mirror),
		geometry.NewSphere(core.NewVec3(1.8, -3.8, 1), 1.2, glossy),

		geometry.NewSphere(core.NewVec3(0, 4.3, 0), 0.8, material.NewMaterial(texture.Black(), texture.NewConstant(core.NewVec3(12, 12, 10)), texture.Black(), material.Diffuse())),
	}

	world := scene.NewScene(primitives, scene.NewConstantSkybox(core.Vec3{}))
	cam := camera.NewCamera(core.NewVec3(0, 0, 12), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 35, camera.LensSquare, 0, 12)
	return &Scene{World: world, Camera: cam, Radius: 20}
}

// Mesh builds a scene around a single compiled-in triangle mesh (a unit
// octahedron) to exercise the BVH-accelerated Mesh primitive end to end,
// since spec.md §1 scopes mesh *file* loading out of the core engine but
// the Mesh primitive itself is in scope.
func Mesh() *Scene {
	mat := material.NewMaterial(texture.NewConstant(core.NewVec3(0.6, 0.6, 0.9)), texture.Black(), texture.Black(), material.Diffuse())
	faces := octahedronFaces()
	mesh := geometry.NewMesh(faces, mat)

	light := geometry.NewSphere(
		core.NewVec3(3, 4, -2), 0.75,
		material.NewMaterial(texture.Black(), texture.NewConstant(core.NewVec3(15, 15, 15)), texture.Black(), material.Diffuse()),
	)

	world := scene.NewScene([]geometry.Primitive{mesh, light}, scene.NewConstantSkybox(core.Vec3{}))
	cam := camera.NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, camera.LensSquare, 0, 5)
	return &Scene{World: world, Camera: cam, Radius: 8}
}

func octahedronFaces() []*geometry.Triangle {
	px := core.NewVec3(1, 0, 0)
	nx := core.NewVec3(-1, 0, 0)
	py := core.NewVec3(0, 1, 0)
	ny := core.NewVec3(0, -1, 0)
	pz := core.NewVec3(0, 0, 1)
	nz := core.NewVec3(0, 0, -1)

	tri := func(a, b, c core.Vec3) *geometry.Triangle {
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		return &geometry.Triangle{V0: a, V1: b, V2: c, N0: n, N1: n, N2: n}
	}

	return []*geometry.Triangle{
		tri(px, py, pz), tri(pz, py, nx), tri(nx, py, nz), tri(nz, py, px),
		tri(px, pz, ny), tri(pz, nx, ny), tri(nx, nz, ny), tri(nz, px, ny),
	}
}
