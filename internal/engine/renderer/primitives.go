package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/minigolf/internal/engine/terrain"
)

// Sphere builds a UV sphere centered on the origin.
func Sphere(radius float32, stacks, slices int) *terrain.Mesh {
	m := &terrain.Mesh{}
	for i := 0; i <= stacks; i++ {
		v := float32(i) / float32(stacks)
		sinPhi, cosPhi := math32.Sincos(math32.Pi * v)
		for j := 0; j <= slices; j++ {
			u := float32(j) / float32(slices)
			sinTheta, cosTheta := math32.Sincos(2 * math32.Pi * u)
			n := mgl32.Vec3{sinPhi * cosTheta, sinPhi * sinTheta, cosPhi}
			m.Vertices = append(m.Vertices, terrain.Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				TexCoord: [2]float32{u, v},
			})
		}
	}

	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			b := a + row
			m.Triangles = append(m.Triangles, [3]uint32{a, b, a + 1}, [3]uint32{a + 1, b, b + 1})
		}
	}
	return m
}

// Cylinder builds an open tube from z=0 to z=height.
func Cylinder(radius, height float32, slices int) *terrain.Mesh {
	m := &terrain.Mesh{}
	for j := 0; j <= slices; j++ {
		u := float32(j) / float32(slices)
		s, c := math32.Sincos(2 * math32.Pi * u)
		n := mgl32.Vec3{c, s, 0}
		m.Vertices = append(m.Vertices,
			terrain.Vertex{Position: [3]float32{radius * c, radius * s, 0}, Normal: n, TexCoord: [2]float32{u, 0}},
			terrain.Vertex{Position: [3]float32{radius * c, radius * s, height}, Normal: n, TexCoord: [2]float32{u, 1}},
		)
	}
	for j := uint32(0); j < uint32(slices); j++ {
		a := 2 * j
		m.Triangles = append(m.Triangles, [3]uint32{a, a + 2, a + 1}, [3]uint32{a + 1, a + 2, a + 3})
	}
	return m
}

// Cone builds a closed cone with its base at z=0 and apex at z=height.
func Cone(radius, height float32, slices int) *terrain.Mesh {
	m := &terrain.Mesh{}
	slope := radius / height
	for j := 0; j < slices; j++ {
		u0 := float32(j) / float32(slices)
		u1 := float32(j+1) / float32(slices)
		s0, c0 := math32.Sincos(2 * math32.Pi * u0)
		s1, c1 := math32.Sincos(2 * math32.Pi * u1)
		sm, cm := math32.Sincos(math32.Pi * (u0 + u1))

		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			terrain.Vertex{Position: [3]float32{radius * c0, radius * s0, 0}, Normal: mgl32.Vec3{c0, s0, slope}.Normalize()},
			terrain.Vertex{Position: [3]float32{radius * c1, radius * s1, 0}, Normal: mgl32.Vec3{c1, s1, slope}.Normalize()},
			terrain.Vertex{Position: [3]float32{0, 0, height}, Normal: mgl32.Vec3{cm, sm, slope}.Normalize()},
		)
		m.Triangles = append(m.Triangles, [3]uint32{base, base + 1, base + 2})
	}

	// Base cap
	center := uint32(len(m.Vertices))
	down := [3]float32{0, 0, -1}
	m.Vertices = append(m.Vertices, terrain.Vertex{Normal: down})
	for j := 0; j <= slices; j++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(j) / float32(slices))
		m.Vertices = append(m.Vertices, terrain.Vertex{Position: [3]float32{radius * c, radius * s, 0}, Normal: down})
	}
	for j := uint32(0); j < uint32(slices); j++ {
		m.Triangles = append(m.Triangles, [3]uint32{center, center + 2 + j, center + 1 + j})
	}
	return m
}

// Quad builds a vertical width×height quad in the XZ plane, facing -Y,
// standing on z=0.
func Quad(width, height float32) *terrain.Mesh {
	hw := width / 2
	n := [3]float32{0, -1, 0}
	return &terrain.Mesh{
		Vertices: []terrain.Vertex{
			{Position: [3]float32{-hw, 0, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{hw, 0, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{hw, 0, height}, Normal: n, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-hw, 0, height}, Normal: n, TexCoord: [2]float32{0, 1}},
		},
		Triangles: [][3]uint32{{0, 1, 2}, {0, 2, 3}},
	}
}
