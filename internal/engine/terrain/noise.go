package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// NoiseParams configures fractal Perlin noise.
type NoiseParams struct {
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"` // amplitude multiplier per octave
	Lacunarity  float64 `yaml:"lacunarity"`  // frequency multiplier per octave
	Seed        int64   `yaml:"seed"`
}

// Noise is a deterministic 2D coherent noise source.
// It only reads its permutation tables after construction, so it is safe
// to share between goroutines.
type Noise struct {
	p *perlin.Perlin
}

// NewNoise builds a fractal noise source.
func NewNoise(params NoiseParams) (*Noise, error) {
	if params.Octaves < 1 {
		return nil, fmt.Errorf("terrain: noise octaves must be >= 1, got %d", params.Octaves)
	}
	if params.Persistence <= 0 {
		return nil, fmt.Errorf("terrain: noise persistence must be positive, got %g", params.Persistence)
	}
	// go-perlin divides each octave by alpha, so alpha is the inverse persistence.
	return &Noise{
		p: perlin.NewPerlin(1/params.Persistence, params.Lacunarity, params.Octaves, params.Seed),
	}, nil
}

// At samples the noise at (x, y).
func (n *Noise) At(x, y float32) float32 {
	return float32(n.p.Noise2D(float64(x), float64(y)))
}
