package scenes

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

func TestSphereOnBlack_CenterPixelHitsSphere(t *testing.T) {
	s := SphereOnBlack()
	ray := s.Camera.Ray(core.NewVec2(0, 0))
	hit, isect := s.World.Intersect(ray)
	if !hit {
		t.Fatalf("expected the center ray to hit the sphere")
	}
	if isect.Distance <= 0 {
		t.Errorf("expected positive hit distance, got %v", isect.Distance)
	}
}

func TestSphereOnBlack_CornerPixelMissesIntoSkybox(t *testing.T) {
	s := SphereOnBlack()
	ray := s.Camera.Ray(core.NewVec2(5, 5))
	hit, isect := s.World.Intersect(ray)
	if hit {
		t.Fatalf("expected a far-corner ray to miss everything")
	}
	if isect.Material.Emission != (core.Vec3{}) {
		t.Errorf("expected black skybox emission, got %v", isect.Material.Emission)
	}
}

func TestCornell_HasRegisteredLight(t *testing.T) {
	s := Cornell()
	if len(s.World.Lights) != 1 {
		t.Fatalf("expected exactly 1 registered light, got %d", len(s.World.Lights))
	}
}

func TestCornell_PathTracerProducesPositiveRadiance(t *testing.T) {
	s := Cornell()
	pt := integrator.NewPathTracer(core.BounceLimit)
	sampler := core.NewSampler(rand.New(rand.NewSource(1)))

	ray := s.Camera.Ray(core.NewVec2(0, -0.3))
	got := pt.RayColor(ray, s.World, sampler)
	if got.X <= 0 && got.Y <= 0 && got.Z <= 0 {
		t.Errorf("expected some positive radiance reaching the floor, got %v", got)
	}
}

func TestMesh_BVHSceneHitsOctahedron(t *testing.T) {
	s := Mesh()
	ray := s.Camera.Ray(core.NewVec2(0, 0))
	hit, _ := s.World.Intersect(ray)
	if !hit {
		t.Fatalf("expected center ray to hit the mesh")
	}
}
