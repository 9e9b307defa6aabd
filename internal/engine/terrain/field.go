package terrain

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NormalStep is the finite difference step used for surface normals.
const NormalStep float32 = 0.1

// NoiseMode selects how the noise term is combined with the bump sum.
type NoiseMode int

const (
	// NoisePerBump adds the noise term once per bump, so the noise ends
	// up scaled by the bump count. This is the standard course shape.
	NoisePerBump NoiseMode = iota
	// NoiseOnce adds the noise term a single time.
	NoiseOnce
)

// String returns the config name of the mode.
func (m NoiseMode) String() string {
	switch m {
	case NoisePerBump:
		return "per_bump"
	case NoiseOnce:
		return "once"
	}
	return fmt.Sprintf("NoiseMode(%d)", int(m))
}

// ParseNoiseMode converts a config name to a NoiseMode.
func ParseNoiseMode(s string) (NoiseMode, error) {
	switch s {
	case "", "per_bump":
		return NoisePerBump, nil
	case "once":
		return NoiseOnce, nil
	}
	return 0, fmt.Errorf("terrain: unknown noise mode %q", s)
}

// FieldConfig holds everything needed to build a Field.
type FieldConfig struct {
	Bumps        []Bump
	Green        GreenMask
	Noise        NoiseParams
	NoiseScale   float32 // amplitude of the noise term
	NoiseZoom    float32 // world units per noise unit
	FadeDistance float32 // |y| beyond which the noise term is gone
	Mode         NoiseMode
}

// DefaultBumps returns the course hills.
func DefaultBumps() []Bump {
	return []Bump{
		{Center: mgl32.Vec2{20.0, 10.0}, Amplitude: 1.6, Sigma: 4.4},
		{Center: mgl32.Vec2{16.0, 8.0}, Amplitude: 0.8, Sigma: 2.4},
		{Center: mgl32.Vec2{13.2, 7.6}, Amplitude: 1.2, Sigma: 2.0},
		{Center: mgl32.Vec2{8.4, 8.8}, Amplitude: 0.8, Sigma: 2.8},
		{Center: mgl32.Vec2{3.6, 6.0}, Amplitude: 1.6, Sigma: 3.2},
		{Center: mgl32.Vec2{-0.8, 7.6}, Amplitude: 0.8, Sigma: 1.6},
		{Center: mgl32.Vec2{-6.0, 7.6}, Amplitude: 1.6, Sigma: 2.4},
		{Center: mgl32.Vec2{-10.8, 8.8}, Amplitude: 0.6, Sigma: 2.0},
		{Center: mgl32.Vec2{18.0, -8.8}, Amplitude: 1.2, Sigma: 2.8},
		{Center: mgl32.Vec2{12.8, -7.6}, Amplitude: 0.8, Sigma: 2.0},
		{Center: mgl32.Vec2{8.4, -8.4}, Amplitude: 1.2, Sigma: 2.4},
		{Center: mgl32.Vec2{6.0, -8.8}, Amplitude: 0.8, Sigma: 1.6},
		{Center: mgl32.Vec2{-16.0, -10.0}, Amplitude: -3.0, Sigma: 8.0}, // lake basin
	}
}

// DefaultGreen returns the putting green mask.
func DefaultGreen() GreenMask {
	return GreenMask{
		Center:      mgl32.Vec2{-15.0, 5.0},
		InnerRadius: 4.0,
		OuterRadius: 8.0,
	}
}

// DefaultFieldConfig returns the standard course.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Bumps: DefaultBumps(),
		Green: DefaultGreen(),
		Noise: NoiseParams{
			Octaves:     4,
			Persistence: 0.2,
			Lacunarity:  1.5,
			Seed:        1,
		},
		NoiseScale:   0.2,
		NoiseZoom:    10.0,
		FadeDistance: 10.0,
		Mode:         NoisePerBump,
	}
}

// Validate checks the construction-time preconditions of a field.
func (c FieldConfig) Validate() error {
	for i, b := range c.Bumps {
		if !(b.Sigma > 0) {
			return fmt.Errorf("bump %d: sigma %g: %w", i, b.Sigma, ErrInvalidSigma)
		}
	}
	if !(c.Green.InnerRadius < c.Green.OuterRadius) {
		return fmt.Errorf("green radii %g/%g: %w", c.Green.InnerRadius, c.Green.OuterRadius, ErrInvalidGreen)
	}
	if c.NoiseZoom <= 0 || c.FadeDistance <= 0 {
		return fmt.Errorf("terrain: noise zoom and fade distance must be positive")
	}
	return nil
}

// Field is the course height field. It has no mutable state after
// construction and may be queried from any goroutine.
type Field struct {
	bumps []Bump
	green GreenMask
	noise *Noise

	noiseScale float32
	noiseZoom  float32
	fadeDist   float32
	mode       NoiseMode
}

// NewField validates cfg and builds a Field.
func NewField(cfg FieldConfig) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	noise, err := NewNoise(cfg.Noise)
	if err != nil {
		return nil, err
	}
	bumps := make([]Bump, len(cfg.Bumps))
	copy(bumps, cfg.Bumps)
	return &Field{
		bumps:      bumps,
		green:      cfg.Green,
		noise:      noise,
		noiseScale: cfg.NoiseScale,
		noiseZoom:  cfg.NoiseZoom,
		fadeDist:   cfg.FadeDistance,
		mode:       cfg.Mode,
	}, nil
}

// Height returns the terrain height at (x, y).
func (f *Field) Height(x, y float32) float32 {
	fade := 0.5 * (1 + math32.Cos(math32.Pi*clampf(math32.Abs(y)/f.fadeDist, 0, 1)))
	rough := f.noiseScale * f.noise.At(x/f.noiseZoom, y/f.noiseZoom) * fade

	var z float32
	for _, b := range f.bumps {
		dx := x - b.Center[0]
		dy := y - b.Center[1]
		d := math32.Sqrt(dx*dx+dy*dy) / b.Sigma
		z += b.Amplitude * math32.Exp(-(d * d))
		if f.mode == NoisePerBump {
			z += rough
		}
	}
	if f.mode == NoiseOnce {
		z += rough
	}

	dist := f.distToGreen(x, y)
	if dist <= f.green.InnerRadius {
		return 0
	}
	if dist <= f.green.OuterRadius {
		z *= smoothstep(f.green.InnerRadius, f.green.OuterRadius, dist)
	}
	return z
}

// Normal returns the unit surface normal at (x, y).
func (f *Field) Normal(x, y float32) mgl32.Vec3 {
	return NormalOf(f.Height, x, y)
}

// Sample returns height and normal at (x, y).
func (f *Field) Sample(x, y float32) HeightSample {
	return HeightSample{Height: f.Height(x, y), Normal: f.Normal(x, y)}
}

// OnGreen reports whether (x, y) lies on the flat putting green.
func (f *Field) OnGreen(x, y float32) bool {
	return f.distToGreen(x, y) < f.green.InnerRadius
}

// Green returns the green mask.
func (f *Field) Green() GreenMask {
	return f.green
}

// Mode returns the noise mode the field was built with.
func (f *Field) Mode() NoiseMode {
	return f.mode
}

func (f *Field) distToGreen(x, y float32) float32 {
	dx := x - f.green.Center[0]
	dy := y - f.green.Center[1]
	return math32.Sqrt(dx*dx + dy*dy)
}

// NormalOf computes the unit normal of a height function by central differences.
func NormalOf(h HeightFunc, x, y float32) mgl32.Vec3 {
	hL := h(x-NormalStep, y)
	hR := h(x+NormalStep, y)
	hD := h(x, y-NormalStep)
	hU := h(x, y+NormalStep)

	dzdx := (hR - hL) / (2 * NormalStep)
	dzdy := (hU - hD) / (2 * NormalStep)
	return mgl32.Vec3{-dzdx, -dzdy, 1}.Normalize()
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := clampf((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
