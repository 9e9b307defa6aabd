package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/minigolf/internal/engine/terrain"
)

func checkMesh(t *testing.T, m *terrain.Mesh, vertices, triangles int) {
	t.Helper()
	if len(m.Vertices) != vertices {
		t.Errorf("expected %d vertices, got %d", vertices, len(m.Vertices))
	}
	if len(m.Triangles) != triangles {
		t.Errorf("expected %d triangles, got %d", triangles, len(m.Triangles))
	}
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if int(idx) >= len(m.Vertices) {
				t.Fatalf("triangle %d index %d out of range", i, idx)
			}
		}
	}
	for i, v := range m.Vertices {
		if l := mgl32.Vec3(v.Normal).Len(); math32.Abs(l-1) > 1e-4 {
			t.Fatalf("vertex %d normal length %v", i, l)
		}
	}
}

func TestSphere(t *testing.T) {
	m := Sphere(0.05, 8, 16)
	checkMesh(t, m, 9*17, 2*8*16)
	for i, v := range m.Vertices {
		if r := mgl32.Vec3(v.Position).Len(); math32.Abs(r-0.05) > 1e-5 {
			t.Fatalf("vertex %d radius %v, expected 0.05", i, r)
		}
	}
}

func TestCylinder(t *testing.T) {
	m := Cylinder(0.1, 2, 12)
	checkMesh(t, m, 2*13, 2*12)
	for _, v := range m.Vertices {
		if v.Position[2] != 0 && v.Position[2] != 2 {
			t.Fatalf("expected vertex on a rim, got z=%v", v.Position[2])
		}
	}
}

func TestCone(t *testing.T) {
	m := Cone(0.5, 1.5, 10)
	checkMesh(t, m, 3*10+1+11, 10+10)
}

func TestQuad(t *testing.T) {
	m := Quad(0.2, 0.3)
	checkMesh(t, m, 4, 2)
	if m.Vertices[2].Position != [3]float32{0.1, 0, 0.3} {
		t.Errorf("expected top corner (0.1, 0, 0.3), got %v", m.Vertices[2].Position)
	}
}
