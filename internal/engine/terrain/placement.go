package terrain

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Default placement thresholds for decorative props.
const (
	DefaultMinPropHeight  float32 = 0.75
	DefaultMinPropSpacing float32 = 0.6
)

// Sampler scatters props over a height field by rejection sampling.
type Sampler struct {
	Height     HeightFunc
	MinHeight  float32 // candidates below this height are rejected
	MinSpacing float32 // candidates closer than this to an accepted point are rejected
	rng        *rand.Rand
}

// NewSampler creates a sampler with the default thresholds.
func NewSampler(h HeightFunc, rng *rand.Rand) *Sampler {
	return &Sampler{
		Height:     h,
		MinHeight:  DefaultMinPropHeight,
		MinSpacing: DefaultMinPropSpacing,
		rng:        rng,
	}
}

// NewSeededSampler creates a sampler driven by a PCG source seeded with seed.
func NewSeededSampler(h HeightFunc, seed uint64) *Sampler {
	return NewSampler(h, rand.New(rand.NewPCG(seed, 0)))
}

// Sample makes count draws over [-areaX/2, areaX/2] × [-areaY/2, areaY/2]
// and returns the accepted points. count is a number of attempts, so the
// result may hold fewer than count points.
func (s *Sampler) Sample(count int, areaX, areaY float32) []mgl32.Vec3 {
	var points []mgl32.Vec3
	for range count {
		x := s.uniform(-areaX/2, areaX/2)
		y := s.uniform(-areaY/2, areaY/2)
		p := mgl32.Vec3{x, y, s.Height(x, y)}

		if p[2] < s.MinHeight {
			continue
		}
		if s.tooClose(points, p) {
			continue
		}
		points = append(points, p)
	}
	return points
}

// Anchor places each horizontal position at its terrain height.
func Anchor(h HeightFunc, positions []mgl32.Vec2) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		out[i] = mgl32.Vec3{p[0], p[1], h(p[0], p[1])}
	}
	return out
}

// DefaultTrees returns the horizontal positions of the course trees.
func DefaultTrees() []mgl32.Vec2 {
	return []mgl32.Vec2{
		{18, 9}, {11, 7}, {6, 6}, {-5, 8},
		{15, -6}, {6, -8}, {31, -12}, {29, 11},
		{-19, -12}, {-30, 12}, {-25, -10},
	}
}

func (s *Sampler) tooClose(points []mgl32.Vec3, p mgl32.Vec3) bool {
	for _, q := range points {
		if q.Sub(p).Len() < s.MinSpacing {
			return true
		}
	}
	return false
}

func (s *Sampler) uniform(min, max float32) float32 {
	return min + s.rng.Float32()*(max-min)
}
