package shot

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default per-frame increments.
const (
	DefaultAngleStep float32 = 0.02
	DefaultSpeedStep float32 = 0.1
)

// Power colour range of the aim indicator.
const (
	powerSpeedMin float32 = 1
	powerSpeedMax float32 = 30
)

// Controls are the aim signals gathered for one frame.
type Controls struct {
	Phi   int  // +1 turns counter-clockwise
	Theta int  // +1 flattens the shot toward the horizon
	Speed int  // +1 hits harder
	Club  Club // zero keeps the current club

	Shoot        bool
	ToggleFollow bool
}

// Params are the current aim parameters.
type Params struct {
	Theta float32
	Phi   float32
	Speed float32
	Club  Club
}

// DefaultParams returns the aim at startup: flat shot toward -x with Iron 7.
func DefaultParams() Params {
	return Params{
		Theta: math32.Pi / 2,
		Phi:   math32.Pi,
		Speed: 5,
		Club:  Iron7,
	}
}

// Launcher is a ball that can be struck.
type Launcher interface {
	Stopped() bool
	Launch(v mgl32.Vec3)
}

// Controller owns the aim parameters.
type Controller struct {
	params    Params
	angleStep float32
	speedStep float32
}

// NewController creates a controller with the default aim.
// Non-positive steps fall back to the defaults.
func NewController(angleStep, speedStep float32) *Controller {
	if !(angleStep > 0) {
		angleStep = DefaultAngleStep
	}
	if !(speedStep > 0) {
		speedStep = DefaultSpeedStep
	}
	return &Controller{
		params:    DefaultParams(),
		angleStep: angleStep,
		speedStep: speedStep,
	}
}

// Params returns the current aim.
func (c *Controller) Params() Params {
	return c.params
}

// SetParams replaces the aim. The next Update clamps it.
func (c *Controller) SetParams(p Params) {
	c.params = p
}

// Club returns the active club spec.
func (c *Controller) Club() ClubSpec {
	return Clubs[c.params.Club]
}

// Update applies one frame of aim input, then clamps theta and speed
// to the active club and wraps phi into [0, 2π).
func (c *Controller) Update(in Controls) {
	p := &c.params
	p.Phi += float32(in.Phi) * c.angleStep
	p.Theta += float32(in.Theta) * c.angleStep
	p.Speed += float32(in.Speed) * c.speedStep
	if in.Club.Valid() {
		p.Club = in.Club
	}
	if !p.Club.Valid() {
		p.Club = Iron7
	}

	spec := Clubs[p.Club]
	p.Theta = mgl32.Clamp(p.Theta, spec.ThetaMin, spec.ThetaMax)
	p.Speed = mgl32.Clamp(p.Speed, spec.SpeedMin, spec.SpeedMax)
	p.Phi = wrapAngle(p.Phi)
}

// Shoot launches the ball along the aim if it is at rest.
// It reports whether a stroke was played.
func (c *Controller) Shoot(ball Launcher) bool {
	if !ball.Stopped() {
		return false
	}
	ball.Launch(c.AimVector())
	return true
}

// AimVector is the launch velocity for the current aim.
func (c *Controller) AimVector() mgl32.Vec3 {
	p := c.params
	sinT, cosT := math32.Sincos(p.Theta)
	sinP, cosP := math32.Sincos(p.Phi)
	return mgl32.Vec3{
		p.Speed * sinT * cosP,
		p.Speed * sinT * sinP,
		p.Speed * cosT,
	}
}

// PowerColor blends the aim indicator from blue at low speed to red at high speed.
func (c *Controller) PowerColor() mgl32.Vec3 {
	alpha := mgl32.Clamp((c.params.Speed-powerSpeedMin)/(powerSpeedMax-powerSpeedMin), 0, 1)
	blue := mgl32.Vec3{0, 0, 1}
	red := mgl32.Vec3{1, 0, 0}
	return blue.Mul(1 - alpha).Add(red.Mul(alpha))
}

// Elevation returns the launch angle above the horizon in degrees.
func (c *Controller) Elevation() float32 {
	return 90 - mgl32.RadToDeg(c.params.Theta)
}

func wrapAngle(a float32) float32 {
	const full = 2 * math32.Pi
	a = math32.Mod(a, full)
	if a < 0 {
		a += full
	}
	if a >= full {
		a = 0
	}
	return a
}
