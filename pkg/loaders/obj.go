package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// MeshData is the flat triangle list decoded from an OBJ file, each
// vertex already transformed by the caller-supplied matrix (spec.md §6).
type MeshData struct {
	Faces []*geometry.Triangle
}

// LoadOBJ parses the OBJ subset specified in spec.md §6: `v` lines are
// three space-separated floats; `f` lines are 3 or 4 whitespace-separated
// `vIndex[/tIndex[/nIndex]]` groups, 1-based; a 4-index face is
// tessellated as (v1,v2,v3) and (v1,v3,v4); unknown lines are skipped.
// Every vertex is transformed by transform before storage.
func LoadOBJ(path string, transform core.Matrix44) (*MeshData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open obj %q: %w", path, err)
	}
	defer file.Close()

	var vertices []core.Vec3
	var faces []*geometry.Triangle

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line)
			if err != nil {
				return nil, fmt.Errorf("loaders: parse obj %q: %w", path, err)
			}
			vertices = append(vertices, transform.MulPoint(v))
		case strings.HasPrefix(line, "f "):
			tris, err := parseFace(line, vertices)
			if err != nil {
				return nil, fmt.Errorf("loaders: parse obj %q: %w", path, err)
			}
			faces = append(faces, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read obj %q: %w", path, err)
	}

	return &MeshData{Faces: faces}, nil
}

func parseVertex(line string) (core.Vec3, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return core.Vec3{}, fmt.Errorf("malformed vertex line %q", line)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func parseFace(line string, vertices []core.Vec3) ([]*geometry.Triangle, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("malformed face line %q", line)
	}

	indices := make([]int, len(fields))
	for i, f := range fields {
		idx, err := parseFaceIndex(f)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("face index %d out of range (have %d vertices)", idx, len(vertices))
		}
		indices[i] = idx
	}

	makeTri := func(a, b, c int) *geometry.Triangle {
		v0, v1, v2 := vertices[a], vertices[b], vertices[c]
		n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		return &geometry.Triangle{
			V0: v0, V1: v1, V2: v2,
			N0: n, N1: n, N2: n,
		}
	}

	if len(indices) == 3 {
		return []*geometry.Triangle{makeTri(indices[0], indices[1], indices[2])}, nil
	}
	return []*geometry.Triangle{
		makeTri(indices[0], indices[1], indices[2]),
		makeTri(indices[0], indices[2], indices[3]),
	}, nil
}

// parseFaceIndex extracts the leading vertex index from a
// `vIndex[/tIndex[/nIndex]]` group and converts it from 1-based to
// 0-based.
func parseFaceIndex(group string) (int, error) {
	vPart := strings.SplitN(group, "/", 2)[0]
	idx, err := strconv.Atoi(vPart)
	if err != nil {
		return 0, fmt.Errorf("malformed face index %q", group)
	}
	return idx - 1, nil
}
