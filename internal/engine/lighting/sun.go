// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light described by compass angles in degrees.
// Azimuth is measured counterclockwise from +X around the Z axis,
// elevation is the angle above the horizon.
type Sun struct {
	Azimuth   float32
	Elevation float32
}

// DefaultSun is a high afternoon sun from the north east.
func DefaultSun() Sun {
	return Sun{Azimuth: 55, Elevation: 60}
}

// Direction returns the normalized vector pointing towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// LightDir returns the direction the light travels, for shaders.
func (s Sun) LightDir() mgl32.Vec3 {
	return s.Direction().Mul(-1)
}

// SunDirection converts azimuth/elevation angles to a Z-up unit vector.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := mgl32.DegToRad(azimuth)
	el := mgl32.DegToRad(mgl32.Clamp(elevation, -90, 90))
	cosEl := math32.Cos(el)
	return mgl32.Vec3{cosEl * math32.Cos(az), cosEl * math32.Sin(az), math32.Sin(el)}
}
