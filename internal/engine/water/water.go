// Package water provides the lake surface height and mesh.
package water

import (
	"github.com/Faultbox/minigolf/internal/engine/terrain"
)

// Config describes the water surface.
type Config struct {
	Grid      terrain.Grid
	Offset    [3]float32 // world translation of the surface mesh
	Amplitude float32    // ripple height
	Zoom      float32    // world units per noise unit
	Noise     terrain.NoiseParams
}

// DefaultConfig returns the lake that fills the basin at the west end of the course.
func DefaultConfig() Config {
	return Config{
		Grid:      terrain.Grid{N: 100, LengthX: 25, LengthY: 25},
		Offset:    [3]float32{-12.5, -2.5, -0.5},
		Amplitude: 0.1,
		Zoom:      2.5,
		Noise: terrain.NoiseParams{
			Octaves:     6,
			Persistence: 0.5,
			Lacunarity:  1.5,
			Seed:        1,
		},
	}
}

// Surface is a low-amplitude noise height field with no bumps or mask.
type Surface struct {
	cfg   Config
	noise *terrain.Noise
}

// New creates a water surface.
func New(cfg Config) (*Surface, error) {
	noise, err := terrain.NewNoise(cfg.Noise)
	if err != nil {
		return nil, err
	}
	return &Surface{cfg: cfg, noise: noise}, nil
}

// Height returns the local ripple height at (x, y), relative to Offset.
func (s *Surface) Height(x, y float32) float32 {
	return s.cfg.Amplitude * s.noise.At(x/s.cfg.Zoom, y/s.cfg.Zoom)
}

// Offset returns the world translation of the surface.
func (s *Surface) Offset() [3]float32 {
	return s.cfg.Offset
}

// Level returns the resting world height of the surface.
func (s *Surface) Level() float32 {
	return s.cfg.Offset[2]
}

// BuildMesh builds the surface mesh in local coordinates.
func (s *Surface) BuildMesh() (*terrain.Mesh, error) {
	return terrain.BuildMesh(s.Height, s.cfg.Grid)
}
