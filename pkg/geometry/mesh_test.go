package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func newTestTriangle(v0, v1, v2 core.Vec3) *Triangle {
	n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n, N1: n, N2: n,
	}
}

// bruteForceIntersect tests every face linearly, used as an oracle against
// the BVH-accelerated traversal.
func bruteForceIntersect(faces []*Triangle, ray core.Ray) (float64, bool) {
	best := math.Inf(1)
	hit := false
	for _, f := range faces {
		if dist, _, _, ok := f.intersect(ray, best); ok {
			best = dist
			hit = true
		}
	}
	return best, hit
}

func randomScatteredTriangles(n int, seed int64) []*Triangle {
	rng := rand.New(rand.NewSource(seed))
	faces := make([]*Triangle, n)
	for i := 0; i < n; i++ {
		c := core.NewVec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		v0 := c.Add(core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64()))
		v1 := c.Add(core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64()))
		v2 := c.Add(core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64()))
		faces[i] = newTestTriangle(v0, v1, v2)
	}
	return faces
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	faces := randomScatteredTriangles(1000, 42)
	root := buildBVH(faces)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		origin := core.NewVec3(rng.Float64()*30-15, rng.Float64()*30-15, rng.Float64()*30-15)
		dir := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize()
		ray := core.NewRay(origin, dir)

		wantDist, wantHit := bruteForceIntersect(faces, ray)

		hit := NewIntersection()
		gotHit := root.intersect(ray, hit)

		if gotHit != wantHit {
			t.Fatalf("ray %d: hit mismatch, bvh=%v brute=%v", i, gotHit, wantHit)
		}
		if wantHit && math.Abs(hit.Distance-wantDist) > 1e-6 {
			t.Fatalf("ray %d: distance mismatch, bvh=%v brute=%v", i, hit.Distance, wantDist)
		}
	}
}

func TestBuildBVH_LeafThreshold(t *testing.T) {
	faces := randomScatteredTriangles(3, 1)
	root := buildBVH(faces)

	if root.faces == nil {
		t.Fatalf("expected a single leaf for a face count under the threshold")
	}
	if len(root.faces) != 3 {
		t.Errorf("expected 3 faces in leaf, got %d", len(root.faces))
	}
}

func TestBuildBVH_SplitsLargeSets(t *testing.T) {
	faces := randomScatteredTriangles(50, 2)
	root := buildBVH(faces)

	if root.faces != nil {
		t.Fatalf("expected an interior node for a face count over the threshold")
	}
	if root.left == nil || root.right == nil {
		t.Fatalf("expected both children populated")
	}
}

func TestMesh_Intersect_SingleTriangle(t *testing.T) {
	face := newTestTriangle(
		core.NewVec3(-1, -1, -2),
		core.NewVec3(1, -1, -2),
		core.NewVec3(0, 1, -2),
	)
	mesh := NewMesh([]*Triangle{face}, testMaterial())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := NewIntersection()
	if !mesh.Intersect(ray, hit) {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("expected distance 2, got %v", hit.Distance)
	}
}

func TestMesh_NotNEEAvailable(t *testing.T) {
	face := newTestTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	mesh := NewMesh([]*Triangle{face}, testMaterial())
	if mesh.NEEAvailable() {
		t.Errorf("meshes must not be NEE-eligible")
	}
}
