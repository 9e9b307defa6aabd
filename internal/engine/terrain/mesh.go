package terrain

import "fmt"

// DefaultGrid is the sampling used for the course terrain.
var DefaultGrid = Grid{N: 100, LengthX: 80, LengthY: 30}

// UVTiling is how many times the ground texture repeats across a grid.
const UVTiling = 10

// BuildMesh samples h on g and triangulates the result.
// Vertex (ku, kv) is stored at index kv + N*ku.
func BuildMesh(h HeightFunc, g Grid) (*Mesh, error) {
	n := g.N
	if n < 2 {
		return nil, fmt.Errorf("grid N=%d: %w", n, ErrGridTooSmall)
	}

	vertices := make([]Vertex, n*n)
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for ku := range n {
		for kv := range n {
			// Parametric coordinates in [0,1]
			u := float32(ku) / float32(n-1)
			v := float32(kv) / float32(n-1)

			x := (u - 0.5) * g.LengthX
			y := (v - 0.5) * g.LengthY
			z := h(x, y)
			normal := NormalOf(h, x, y)

			p := [3]float32{x, y, z}
			updateBounds(&bounds, p)
			vertices[kv+n*ku] = Vertex{
				Position: p,
				Normal:   [3]float32(normal),
				TexCoord: [2]float32{UVTiling * u, UVTiling * v},
			}
		}
	}

	// Two triangles per grid cell
	triangles := make([][3]uint32, 0, 2*(n-1)*(n-1))
	for ku := 0; ku < n-1; ku++ {
		for kv := 0; kv < n-1; kv++ {
			idx := uint32(kv + n*ku)
			un := uint32(n)
			triangles = append(triangles,
				[3]uint32{idx, idx + 1 + un, idx + 1},
				[3]uint32{idx, idx + un, idx + 1 + un},
			)
		}
	}

	return &Mesh{
		N:         n,
		Vertices:  vertices,
		Triangles: triangles,
		Bounds:    bounds,
	}, nil
}

// BuildTerrain builds the course surface mesh.
func BuildTerrain(f *Field, g Grid) (*Mesh, error) {
	return BuildMesh(f.Height, g)
}

// Indices flattens the triangle list for an element buffer.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
