package terrain

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func mustField(t *testing.T, cfg FieldConfig) *Field {
	t.Helper()
	f, err := NewField(cfg)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return f
}

// smoothConfig returns a noiseless single-bump course with the green far away.
func smoothConfig() FieldConfig {
	cfg := DefaultFieldConfig()
	cfg.Bumps = []Bump{{Center: mgl32.Vec2{0, 0}, Amplitude: 2, Sigma: 3}}
	cfg.Green = GreenMask{Center: mgl32.Vec2{100, 100}, InnerRadius: 1, OuterRadius: 2}
	cfg.NoiseScale = 0
	return cfg
}

func TestGreenIsFlat(t *testing.T) {
	f := mustField(t, DefaultFieldConfig())
	green := f.Green()

	points := [][2]float32{
		{-15, 5}, {-13, 5}, {-17, 6}, {-15, 8.9}, {-18.9, 5}, {-12.5, 3.2},
	}
	for _, p := range points {
		if h := f.Height(p[0], p[1]); h != 0 {
			t.Errorf("expected height 0 on green at %v, got %v", p, h)
		}
		if !f.OnGreen(p[0], p[1]) {
			t.Errorf("expected %v to be on green", p)
		}
	}

	if f.OnGreen(green.Center[0]+green.InnerRadius+0.5, green.Center[1]) {
		t.Error("point outside inner radius reported on green")
	}
}

func TestGreenFalloffBlends(t *testing.T) {
	cfg := smoothConfig()
	cfg.Bumps = []Bump{{Center: mgl32.Vec2{0, 0}, Amplitude: 1, Sigma: 1000}}
	cfg.Green = GreenMask{Center: mgl32.Vec2{0, 0}, InnerRadius: 4, OuterRadius: 8}
	f := mustField(t, cfg)

	mid := f.Height(6, 0)
	outside := f.Height(9, 0)
	if mid <= 0 || mid >= outside {
		t.Errorf("expected falloff height in (0, %v), got %v", outside, mid)
	}
	// smoothstep(4, 8, 6) is exactly 0.5
	raw := float32(math32.Exp(-(6.0 / 1000) * (6.0 / 1000)))
	if math32.Abs(mid-0.5*raw) > 1e-6 {
		t.Errorf("expected %v, got %v", 0.5*raw, mid)
	}
}

func TestHeightKnownValues(t *testing.T) {
	f := mustField(t, smoothConfig())

	if h := f.Height(0, 0); h != 2 {
		t.Errorf("expected bump peak 2, got %v", h)
	}
	want := 2 * math32.Exp(-1)
	if h := f.Height(3, 0); math32.Abs(h-want) > 1e-6 {
		t.Errorf("expected %v one sigma out, got %v", want, h)
	}
	if h := f.Height(60, 14); h > 1e-6 {
		t.Errorf("expected ~0 far from bumps, got %v", h)
	}
}

func TestHeightSymmetry(t *testing.T) {
	f := mustField(t, smoothConfig())

	for _, p := range [][2]float32{{1, 2}, {0.5, -3}, {4.25, 4.25}, {-7, 0.1}} {
		a := f.Height(p[0], p[1])
		b := f.Height(-p[0], -p[1])
		c := f.Height(p[1], p[0])
		if a != b || a != c {
			t.Errorf("expected symmetric heights at %v, got %v %v %v", p, a, b, c)
		}
	}
}

func TestHeightDeterministic(t *testing.T) {
	a := mustField(t, DefaultFieldConfig())
	b := mustField(t, DefaultFieldConfig())

	for x := float32(-40); x <= 40; x += 3.7 {
		for y := float32(-15); y <= 15; y += 2.3 {
			h1 := a.Height(x, y)
			h2 := a.Height(x, y)
			h3 := b.Height(x, y)
			if h1 != h2 || h1 != h3 {
				t.Fatalf("height at (%v,%v) not deterministic: %v %v %v", x, y, h1, h2, h3)
			}
		}
	}
}

func TestNoiseModes(t *testing.T) {
	base := DefaultFieldConfig()

	onceCfg := base
	onceCfg.Mode = NoiseOnce
	perBumpCfg := base
	perBumpCfg.Mode = NoisePerBump
	roughCfg := base
	roughCfg.Mode = NoiseOnce
	roughCfg.Bumps = nil

	once := mustField(t, onceCfg)
	perBump := mustField(t, perBumpCfg)
	rough := mustField(t, roughCfg)

	extra := float32(len(base.Bumps) - 1)
	for _, p := range [][2]float32{{30, 0.5}, {10.3, -2.1}, {-30, 1.7}, {25.5, 4.4}} {
		got := perBump.Height(p[0], p[1]) - once.Height(p[0], p[1])
		want := extra * rough.Height(p[0], p[1])
		if math32.Abs(got-want) > 1e-4 {
			t.Errorf("at %v: expected per-bump excess %v, got %v", p, want, got)
		}
	}
}

func TestNoiseFadesOutAwayFromCenterLine(t *testing.T) {
	noisy := mustField(t, DefaultFieldConfig())
	quietCfg := DefaultFieldConfig()
	quietCfg.NoiseScale = 0
	quiet := mustField(t, quietCfg)

	for _, p := range [][2]float32{{30, 10}, {0, -12}, {20, 14.5}, {-30, -10}} {
		if d := math32.Abs(noisy.Height(p[0], p[1]) - quiet.Height(p[0], p[1])); d > 1e-6 {
			t.Errorf("at %v: expected no noise beyond |y| = 10, got difference %v", p, d)
		}
	}
	for _, p := range [][2]float32{{25, 0.5}, {10, 3}} {
		if noisy.Height(p[0], p[1]) == quiet.Height(p[0], p[1]) {
			t.Errorf("at %v: expected noise near the center line", p)
		}
	}
}

func TestNormalIsUnit(t *testing.T) {
	f := mustField(t, DefaultFieldConfig())

	for x := float32(-40); x <= 40; x += 1.3 {
		for y := float32(-15); y <= 15; y += 0.9 {
			n := f.Normal(x, y)
			if l := n.Len(); math32.Abs(l-1) > 1e-4 {
				t.Fatalf("normal at (%v,%v) has length %v", x, y, l)
			}
			if n[2] <= 0 {
				t.Fatalf("normal at (%v,%v) points down: %v", x, y, n)
			}
		}
	}
}

func TestNormalOnGreenIsUp(t *testing.T) {
	f := mustField(t, DefaultFieldConfig())
	n := f.Normal(-15, 5)
	if n != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("expected straight-up normal on green, got %v", n)
	}
}

func TestNormalOfSlope(t *testing.T) {
	plane := func(x, y float32) float32 { return x }
	n := NormalOf(plane, 0, 0)
	want := mgl32.Vec3{-1, 0, 1}.Normalize()
	if !n.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected %v, got %v", want, n)
	}
}

func TestNewFieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*FieldConfig)
		want   error
	}{
		{
			name: "zero sigma",
			modify: func(c *FieldConfig) {
				c.Bumps[3].Sigma = 0
			},
			want: ErrInvalidSigma,
		},
		{
			name: "negative sigma",
			modify: func(c *FieldConfig) {
				c.Bumps[0].Sigma = -1
			},
			want: ErrInvalidSigma,
		},
		{
			name: "inverted green",
			modify: func(c *FieldConfig) {
				c.Green.InnerRadius, c.Green.OuterRadius = 8, 4
			},
			want: ErrInvalidGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFieldConfig()
			tt.modify(&cfg)
			_, err := NewField(cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseNoiseMode(t *testing.T) {
	for _, m := range []NoiseMode{NoisePerBump, NoiseOnce} {
		got, err := ParseNoiseMode(m.String())
		if err != nil || got != m {
			t.Errorf("expected %v, got %v (err %v)", m, got, err)
		}
	}
	if _, err := ParseNoiseMode("twice"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
