// Package physics simulates the golf ball as a point-mass sphere over a height field.
package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Ground is the surface the ball rolls on.
type Ground interface {
	Height(x, y float32) float32
	Normal(x, y float32) mgl32.Vec3
	OnGreen(x, y float32) bool
}

// Params holds the ball and course constants.
type Params struct {
	Gravity        mgl32.Vec3
	Radius         float32
	ContactEpsilon float32 // contact tolerance against resting jitter
	Restitution    float32
	GroundFriction float32 // tangent velocity kept per contact frame
	GreenFriction  float32
	AirDrag        float32 // velocity kept per airborne frame
	StopSpeed      float32

	Respawn    mgl32.Vec3
	MinZ       float32
	MaxAbsX    float32
	MaxAbsY    float32
	Hole       mgl32.Vec2
	HoleRadius float32
	HoleSpeed  float32 // ball must be slower than this to drop in
}

// DefaultParams returns the standard ball behaviour.
func DefaultParams() Params {
	return Params{
		Gravity:        mgl32.Vec3{0, 0, -9.81},
		Radius:         0.05,
		ContactEpsilon: 0.001,
		Restitution:    0.5,
		GroundFriction: 0.8,
		GreenFriction:  0.97,
		AirDrag:        0.995,
		StopSpeed:      0.15,

		Respawn:    mgl32.Vec3{34, 0, 1},
		MinZ:       -0.6,
		MaxAbsX:    40,
		MaxAbsY:    15,
		Hole:       mgl32.Vec2{-17, 6},
		HoleRadius: 0.1,
		HoleSpeed:  1.0,
	}
}

// Event is a set of things that happened during one update.
type Event uint8

const (
	// EventContact means the ball touched the ground.
	EventContact Event = 1 << iota
	// EventStopped means the ball came to rest.
	EventStopped
	// EventOutOfBounds means the ball left the course and was respawned.
	EventOutOfBounds
	// EventHoled means the ball dropped into the hole and was respawned.
	EventHoled
)

// Has reports whether all bits of other are set in e.
func (e Event) Has(other Event) bool {
	return e&other == other
}

// State is the ball's kinematic state.
// When Stopped is true, Velocity is zero.
type State struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Stopped  bool
}

// Speed returns the velocity magnitude.
func (s State) Speed() float32 {
	return s.Velocity.Len()
}

// Dynamics owns the ball state and advances it once per frame.
type Dynamics struct {
	params Params
	ground Ground
	state  State
	log    *zap.Logger
}

// New creates a ball at start. It begins in flight and settles onto the ground.
func New(params Params, ground Ground, start mgl32.Vec3, log *zap.Logger) *Dynamics {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dynamics{
		params: params,
		ground: ground,
		state:  State{Position: start},
		log:    log,
	}
}

// State returns a copy of the current ball state.
func (d *Dynamics) State() State {
	return d.state
}

// Position returns the ball center.
func (d *Dynamics) Position() mgl32.Vec3 {
	return d.state.Position
}

// Stopped reports whether the ball is at rest.
func (d *Dynamics) Stopped() bool {
	return d.state.Stopped
}

// Params returns the constants the ball was built with.
func (d *Dynamics) Params() Params {
	return d.params
}

// Place teleports the ball. A stopped placement always has zero velocity.
func (d *Dynamics) Place(s State) {
	if s.Stopped {
		s.Velocity = mgl32.Vec3{}
	}
	d.state = s
}

// Launch sets the ball in motion with velocity v.
func (d *Dynamics) Launch(v mgl32.Vec3) {
	d.state.Velocity = v
	d.state.Stopped = false
}

// Update advances the ball by dt seconds and reports what happened.
// A stopped ball and a non-finite or non-positive dt leave the state untouched.
func (d *Dynamics) Update(dt float32) Event {
	if d.state.Stopped || !validStep(dt) {
		return 0
	}

	p := &d.params
	s := &d.state
	var ev Event

	s.Velocity = s.Velocity.Add(p.Gravity.Mul(dt))
	s.Position = s.Position.Add(s.Velocity.Mul(dt))

	x, y := s.Position.X(), s.Position.Y()
	groundPoint := mgl32.Vec3{x, y, d.ground.Height(x, y)}
	normal := d.ground.Normal(x, y)

	dist := s.Position.Sub(groundPoint).Dot(normal)
	if dist < p.Radius+p.ContactEpsilon {
		ev |= EventContact

		s.Position = s.Position.Add(normal.Mul(p.Radius - dist))

		// Bounce
		vn := s.Velocity.Dot(normal)
		if vn < 0 {
			s.Velocity = s.Velocity.Sub(normal.Mul((1 + p.Restitution) * vn))
		}

		// Rolling friction on the tangent part only
		normalPart := normal.Mul(s.Velocity.Dot(normal))
		tangent := s.Velocity.Sub(normalPart)
		friction := p.GroundFriction
		if d.ground.OnGreen(s.Position.X(), s.Position.Y()) {
			friction = p.GreenFriction
		}
		tangent = tangent.Mul(friction)
		s.Velocity = normalPart.Add(tangent)

		if s.Velocity.Len() < p.StopSpeed && tangent.Len() < p.StopSpeed && math32.Abs(vn) < p.StopSpeed {
			s.Velocity = mgl32.Vec3{}
			s.Stopped = true
			ev |= EventStopped
		}
	} else {
		s.Velocity = s.Velocity.Mul(p.AirDrag)
	}

	if d.outOfBounds(s.Position) {
		d.log.Debug("ball out of bounds",
			zap.Float32("x", s.Position.X()),
			zap.Float32("y", s.Position.Y()),
			zap.Float32("z", s.Position.Z()),
		)
		d.respawn()
		ev |= EventOutOfBounds
	}

	if d.inHole() {
		d.log.Debug("ball in hole", zap.Float32("speed", s.Velocity.Len()))
		d.respawn()
		ev |= EventHoled
	}

	return ev
}

// respawn puts the ball back on the tee in flight, so it drops and settles.
func (d *Dynamics) respawn() {
	d.state = State{Position: d.params.Respawn}
}

func (d *Dynamics) outOfBounds(pos mgl32.Vec3) bool {
	p := &d.params
	return pos.Z() < p.MinZ || math32.Abs(pos.X()) > p.MaxAbsX || math32.Abs(pos.Y()) > p.MaxAbsY
}

func (d *Dynamics) inHole() bool {
	p := &d.params
	pos := d.state.Position
	toHole := mgl32.Vec2{pos.X(), pos.Y()}.Sub(p.Hole)
	return toHole.Len() < p.HoleRadius && d.state.Velocity.Len() < p.HoleSpeed
}

// validStep rejects NaN, infinite and non-positive frame times.
func validStep(dt float32) bool {
	return dt > 0 && dt <= math32.MaxFloat32
}
