// Package terrain provides the course height field, grid mesh building and prop placement.
package terrain

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidSigma is returned when a bump has a non-positive spread.
	ErrInvalidSigma = errors.New("terrain: bump sigma must be positive")
	// ErrInvalidGreen is returned when the green mask radii are not ordered.
	ErrInvalidGreen = errors.New("terrain: green inner radius must be smaller than outer radius")
	// ErrGridTooSmall is returned when a grid has fewer than 2 samples per side.
	ErrGridTooSmall = errors.New("terrain: grid needs at least 2 samples per side")
)

// HeightFunc maps a horizontal position to a surface height.
type HeightFunc func(x, y float32) float32

// HeightSample is a height query result at a horizontal position.
type HeightSample struct {
	Height float32
	Normal mgl32.Vec3
}

// Bump is a radial Gaussian hill (or pit, for negative amplitude).
type Bump struct {
	Center    mgl32.Vec2
	Amplitude float32
	Sigma     float32
}

// GreenMask flattens the terrain around the putting green.
// Inside InnerRadius height is forced to 0, between the radii it blends back in.
type GreenMask struct {
	Center      mgl32.Vec2
	InnerRadius float32
	OuterRadius float32
}

// Vertex represents a grid mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds a triangulated grid surface ready for GPU upload.
type Mesh struct {
	N         int
	Vertices  []Vertex
	Triangles [][3]uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Grid describes a regular N×N sampling of a rectangle centered at the origin.
type Grid struct {
	N       int
	LengthX float32
	LengthY float32
}
