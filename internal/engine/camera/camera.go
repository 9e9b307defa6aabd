// Package camera provides the course orbit camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis. The course is Z-up.
var Up = mgl32.Vec3{0, 0, 1}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // elevation above the XY plane, radians
	Yaw      float32 // angle around Z from +X, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// NewOrbitCamera creates a camera looking at the course from the tee end.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Center:          mgl32.Vec3{0, 0, 0},
		Distance:        50,
		Pitch:           0.6,
		Yaw:             0,
		MinDistance:     1,
		MaxDistance:     150,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             50,
		Near:            0.05,
		Far:             500,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinP, cosP := math32.Sincos(c.Pitch)
	sinY, cosY := math32.Sincos(c.Yaw)
	offset := mgl32.Vec3{cosP * cosY, cosP * sinY, sinP}.Mul(c.Distance)
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, Up)
}

// ProjectionMatrix returns the perspective projection for the given viewport aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if !(aspect > 0) {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Follow recenters the orbit on target, keeping the viewing angle.
func (c *OrbitCamera) Follow(target mgl32.Vec3) {
	c.Center = target
}

// FrameBehind orbits target from back units behind the heading and up
// units above it.
func (c *OrbitCamera) FrameBehind(target mgl32.Vec3, heading, back, up float32) {
	c.Center = target
	c.Yaw = heading + math32.Pi
	c.Pitch = mgl32.Clamp(math32.Atan2(up, back), c.MinPitch, c.MaxPitch)
	c.Distance = mgl32.Clamp(math32.Hypot(back, up), c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see all of it.
func (c *OrbitCamera) FitToBounds(min, max [3]float32) {
	lo, hi := mgl32.Vec3(min), mgl32.Vec3(max)
	c.Center = lo.Add(hi).Mul(0.5)

	size := hi.Sub(lo)
	c.Distance = mgl32.Clamp(math32.Max(size.X(), size.Y())*0.75, c.MinDistance, c.MaxDistance)
	c.Pitch = mgl32.Clamp(0.6, c.MinPitch, c.MaxPitch)
}
