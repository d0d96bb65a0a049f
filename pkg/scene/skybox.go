package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Skybox is sampled when a ray escapes the scene without hitting any
// primitive.
type Skybox interface {
	Sample(direction core.Vec3) core.Vec3
}

// ConstantSkybox returns the same color for every miss direction.
type ConstantSkybox struct {
	Color core.Vec3
}

// NewConstantSkybox constructs a flat-color skybox.
func NewConstantSkybox(color core.Vec3) *ConstantSkybox {
	return &ConstantSkybox{Color: color}
}

// Sample implements Skybox.
func (s *ConstantSkybox) Sample(core.Vec3) core.Vec3 { return s.Color }

// cubeFace names the six cube-map faces in the canonical order used to
// index CubeMapSkybox.Faces.
type cubeFace int

const (
	facePosX cubeFace = iota
	faceNegX
	facePosY
	faceNegY
	facePosZ
	faceNegZ
)

// CubeMapSkybox samples one of six face textures selected by the dominant
// axis of the miss direction, fixing the bug documented in spec.md §9 open
// question 1 where the original/teacher renderer always sampled the +X
// face regardless of direction.
type CubeMapSkybox struct {
	Faces [6]texture.Source
}

// NewCubeMapSkybox constructs a cube-map skybox from its six face textures,
// in +X, -X, +Y, -Y, +Z, -Z order.
func NewCubeMapSkybox(faces [6]texture.Source) *CubeMapSkybox {
	return &CubeMapSkybox{Faces: faces}
}

// Sample implements Skybox: selects the face whose axis has the largest
// magnitude component of direction, then addresses it with the other two
// components normalized to [0, 1].
func (s *CubeMapSkybox) Sample(direction core.Vec3) core.Vec3 {
	ax, ay, az := math.Abs(direction.X), math.Abs(direction.Y), math.Abs(direction.Z)

	var face cubeFace
	var u, v float64

	switch {
	case ax >= ay && ax >= az:
		if direction.X > 0 {
			face = facePosX
			u, v = -direction.Z/ax, -direction.Y/ax
		} else {
			face = faceNegX
			u, v = direction.Z/ax, -direction.Y/ax
		}
	case ay >= ax && ay >= az:
		if direction.Y > 0 {
			face = facePosY
			u, v = direction.X/ay, direction.Z/ay
		} else {
			face = faceNegY
			u, v = direction.X/ay, -direction.Z/ay
		}
	default:
		if direction.Z > 0 {
			face = facePosZ
			u, v = direction.X/az, -direction.Y/az
		} else {
			face = faceNegZ
			u, v = -direction.X/az, -direction.Y/az
		}
	}

	uv := core.NewVec2((u+1)*0.5, (v+1)*0.5)
	tex := s.Faces[face]
	if tex == nil {
		return core.Vec3{}
	}
	return tex.Evaluate(uv, direction)
}
