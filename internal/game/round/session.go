package round

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/minigolf/internal/game/physics"
	"github.com/Faultbox/minigolf/internal/game/shot"
)

// Tee is where the ball starts the round.
var Tee = mgl32.Vec3{31, 0, 1}

// FrameReport summarises one simulation frame.
type FrameReport struct {
	Event physics.Event
	Shot  bool // a stroke was played this frame
}

// Holed reports whether the ball dropped in this frame.
func (r FrameReport) Holed() bool {
	return r.Event.Has(physics.EventHoled)
}

// Session threads the ball, the aim, the goal banner and the stroke count
// through each frame. It is not safe for concurrent use.
type Session struct {
	ball       *physics.Dynamics
	shot       *shot.Controller
	goal       Goal
	strokes    int
	followBall bool
	log        *zap.Logger
}

// NewSession starts a round with the ball dropping onto the tee.
func NewSession(ground physics.Ground, params physics.Params, ctrl *shot.Controller, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		ball: physics.New(params, ground, Tee, log.Named("physics")),
		shot:       ctrl,
		followBall: true,
		log:        log,
	}
}

// Step advances one frame: goal countdown, ball update, hole handling,
// aim update, shot and camera follow toggle.
func (s *Session) Step(dt float32, in shot.Controls) FrameReport {
	s.goal.Tick(dt)

	var r FrameReport
	r.Event = s.ball.Update(dt)
	if r.Holed() {
		s.log.Info("ball holed", zap.Int("strokes", s.strokes))
		s.strokes = 0
		s.goal.Activate(GoalDuration)
	}

	s.shot.Update(in)
	if in.Shoot && s.shot.Shoot(s.ball) {
		s.strokes++
		r.Shot = true
		p := s.shot.Params()
		s.log.Debug("stroke",
			zap.Int("n", s.strokes),
			zap.Stringer("club", p.Club),
			zap.Float32("speed", p.Speed),
			zap.Float32("elevation", s.shot.Elevation()),
		)
	}

	if in.ToggleFollow {
		s.followBall = !s.followBall
	}
	return r
}

// Ball returns the ball simulation.
func (s *Session) Ball() *physics.Dynamics { return s.ball }

// Shot returns the aim controller.
func (s *Session) Shot() *shot.Controller { return s.shot }

// Goal returns the banner state.
func (s *Session) Goal() Goal { return s.goal }

// Strokes returns the strokes played since the last hole.
func (s *Session) Strokes() int { return s.strokes }

// FollowBall reports whether the camera tracks the ball.
func (s *Session) FollowBall() bool { return s.followBall }

// AimVisible reports whether the aim arrow should be drawn.
func (s *Session) AimVisible() bool { return s.ball.Stopped() }

// HUD renders the status line.
func (s *Session) HUD() string {
	p := s.shot.Params()
	pos := s.ball.Position()
	line := fmt.Sprintf("Club: %s | Elevation: %.1f° | Speed: %.1f | Strokes: %d | Ball: (%.2f, %.2f, %.2f)",
		p.Club, s.shot.Elevation(), p.Speed, s.strokes, pos.X(), pos.Y(), pos.Z())
	if s.goal.Active {
		line += " | GOAL!"
	}
	return line
}
