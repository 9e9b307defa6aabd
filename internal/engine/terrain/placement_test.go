package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSampleRespectsConstraints(t *testing.T) {
	f := mustField(t, DefaultFieldConfig())
	s := NewSeededSampler(f.Height, 42)

	points := s.Sample(2000, 70, 30)
	if len(points) > 2000 {
		t.Fatalf("expected at most 2000 points, got %d", len(points))
	}
	if len(points) == 0 {
		t.Fatal("expected some accepted points on the default course")
	}

	for i, p := range points {
		if p[2] < DefaultMinPropHeight {
			t.Errorf("point %d below minimum height: %v", i, p)
		}
		if p[0] < -35 || p[0] > 35 || p[1] < -15 || p[1] > 15 {
			t.Errorf("point %d outside area: %v", i, p)
		}
		if p[2] != f.Height(p[0], p[1]) {
			t.Errorf("point %d not on terrain: %v", i, p)
		}
		for j := i + 1; j < len(points); j++ {
			if d := p.Sub(points[j]).Len(); d < DefaultMinPropSpacing {
				t.Fatalf("points %d and %d only %v apart", i, j, d)
			}
		}
	}
}

func TestSampleCountsAttempts(t *testing.T) {
	flat := func(x, y float32) float32 { return 1 }

	s := NewSeededSampler(flat, 7)
	s.MinSpacing = 1000
	if got := s.Sample(50, 10, 10); len(got) != 1 {
		t.Errorf("expected a single point when spacing covers the area, got %d", len(got))
	}

	low := NewSeededSampler(func(x, y float32) float32 { return 0 }, 7)
	if got := low.Sample(50, 10, 10); len(got) != 0 {
		t.Errorf("expected no points below height threshold, got %d", len(got))
	}
}

func TestSampleDeterministic(t *testing.T) {
	f := mustField(t, DefaultFieldConfig())
	a := NewSeededSampler(f.Height, 3).Sample(500, 70, 30)
	b := NewSeededSampler(f.Height, 3).Sample(500, 70, 30)

	if len(a) != len(b) {
		t.Fatalf("expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestAnchor(t *testing.T) {
	f := mustField(t, DefaultFieldConfig())
	got := Anchor(f.Height, []mgl32.Vec2{{18, 9}, {-15, 5}})
	if got[0][2] != f.Height(18, 9) {
		t.Errorf("expected anchored height %v, got %v", f.Height(18, 9), got[0][2])
	}
	if got[1] != (mgl32.Vec3{-15, 5, 0}) {
		t.Errorf("expected green anchor at ground 0, got %v", got[1])
	}
}
