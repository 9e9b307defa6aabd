package round

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/minigolf/internal/config"
	"github.com/Faultbox/minigolf/internal/engine/terrain"
	"github.com/Faultbox/minigolf/internal/game/physics"
	"github.com/Faultbox/minigolf/internal/game/shot"
)

func newSession(t *testing.T) (*Session, *terrain.Field) {
	t.Helper()
	field, err := terrain.NewField(terrain.DefaultFieldConfig())
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return NewSession(field, physics.DefaultParams(), shot.NewController(0, 0), nil), field
}

func restOn(field *terrain.Field, x, y float32) physics.State {
	return physics.State{Position: mgl32.Vec3{x, y, field.Height(x, y) + 0.05}, Stopped: true}
}

func TestSessionStartsAtTee(t *testing.T) {
	s, _ := newSession(t)
	if s.Ball().Position() != Tee {
		t.Errorf("expected ball at tee %v, got %v", Tee, s.Ball().Position())
	}
	if s.Ball().Stopped() {
		t.Error("expected ball to start in flight")
	}
	if s.Strokes() != 0 {
		t.Errorf("expected 0 strokes, got %d", s.Strokes())
	}
}

func TestShootCountsStrokes(t *testing.T) {
	s, field := newSession(t)
	s.Ball().Place(restOn(field, -15, 5))

	r := s.Step(0.01, shot.Controls{Shoot: true, Club: shot.Putter})
	if !r.Shot {
		t.Fatal("expected a stroke on a resting ball")
	}
	if s.Strokes() != 1 {
		t.Errorf("expected 1 stroke, got %d", s.Strokes())
	}
	if s.Ball().Stopped() {
		t.Error("expected ball in flight after stroke")
	}
	if s.AimVisible() {
		t.Error("expected aim arrow hidden while the ball moves")
	}

	// Shooting again mid-flight does nothing
	r = s.Step(0.01, shot.Controls{Shoot: true})
	if r.Shot || s.Strokes() != 1 {
		t.Errorf("expected no stroke in flight, got shot=%v strokes=%d", r.Shot, s.Strokes())
	}
}

func TestHoleResetsStrokesAndShowsGoal(t *testing.T) {
	s, field := newSession(t)
	s.Ball().Place(restOn(field, -15, 5))
	s.Step(0.01, shot.Controls{Shoot: true})
	if s.Strokes() != 1 {
		t.Fatalf("expected 1 stroke, got %d", s.Strokes())
	}

	s.Ball().Place(physics.State{
		Position: mgl32.Vec3{-17, 6, field.Height(-17, 6)},
		Velocity: mgl32.Vec3{0.5, 0, 0},
	})
	r := s.Step(0.01, shot.Controls{})
	if !r.Holed() {
		t.Fatalf("expected hole entry, got events %b", r.Event)
	}
	if s.Strokes() != 0 {
		t.Errorf("expected strokes reset to 0, got %d", s.Strokes())
	}
	goal := s.Goal()
	if !goal.Active || goal.Countdown != 2.0 {
		t.Errorf("expected active goal with countdown 2.0, got %+v", goal)
	}
	if !strings.Contains(s.HUD(), "GOAL!") {
		t.Errorf("expected goal banner in HUD, got %q", s.HUD())
	}
	if s.Ball().Position() != physics.DefaultParams().Respawn {
		t.Errorf("expected ball respawned, got %v", s.Ball().Position())
	}

	// The banner expires after two seconds of frames
	for range 201 {
		s.Step(0.01, shot.Controls{})
	}
	if s.Goal().Active {
		t.Errorf("expected goal banner to expire, got %+v", s.Goal())
	}
}

func TestFollowToggle(t *testing.T) {
	s, _ := newSession(t)
	if !s.FollowBall() {
		t.Fatal("expected follow on at start")
	}
	s.Step(0.01, shot.Controls{ToggleFollow: true})
	if s.FollowBall() {
		t.Error("expected follow off after first toggle")
	}
	s.Step(0.01, shot.Controls{})
	if s.FollowBall() {
		t.Error("expected follow to stay off without toggle")
	}
	s.Step(0.01, shot.Controls{ToggleFollow: true})
	if !s.FollowBall() {
		t.Error("expected follow on after second toggle")
	}
}

func TestHUDShowsBallPosition(t *testing.T) {
	s, _ := newSession(t)
	hud := s.HUD()
	for _, want := range []string{"Club: Iron 7", "Strokes: 0", "Ball: (31.00, 0.00, 1.00)"} {
		if !strings.Contains(hud, want) {
			t.Errorf("expected HUD to contain %q, got %q", want, hud)
		}
	}
}

func TestBallNeverRestsInMidAir(t *testing.T) {
	s, field := newSession(t)
	for range 3000 {
		s.Step(0.01, shot.Controls{})
		st := s.Ball().State()
		if !st.Stopped {
			continue
		}
		if st.Velocity != (mgl32.Vec3{}) {
			t.Fatalf("stopped ball has velocity %v", st.Velocity)
		}
		ground := field.Height(st.Position.X(), st.Position.Y())
		if gap := st.Position.Z() - ground; gap < -0.01 || gap > 0.2 {
			t.Fatalf("expected resting ball on the ground at %v, got z=%v", ground, st.Position.Z())
		}
	}
}

func TestPuttFromGreenStaysFlat(t *testing.T) {
	s, field := newSession(t)
	s.Ball().Place(restOn(field, -15, 5))

	s.Step(0.01, shot.Controls{Club: shot.Putter, Shoot: true})
	v := s.Ball().State().Velocity
	if math32.Abs(v.Z()) > 1e-4 {
		t.Errorf("expected flat putt, got vz=%v", v.Z())
	}
}

func TestGoalTick(t *testing.T) {
	var g Goal
	g.Tick(1)
	if g.Active {
		t.Fatal("expected inactive goal to stay inactive")
	}

	g.Activate(GoalDuration)
	g.Tick(1)
	if !g.Active || g.Countdown != 1 {
		t.Errorf("expected active goal with 1s left, got %+v", g)
	}
	g.Tick(math32.NaN())
	if g.Countdown != 1 {
		t.Errorf("expected NaN tick ignored, got %+v", g)
	}
	g.Tick(1.5)
	if g.Active || g.Countdown != 0 {
		t.Errorf("expected expired goal, got %+v", g)
	}
}

func TestBuildCourse(t *testing.T) {
	cfg := config.Default().Course
	cfg.Grid.N = 20
	cfg.Water.N = 10
	cfg.Grass.Attempts = 500

	c, err := BuildCourse(cfg, nil)
	if err != nil {
		t.Fatalf("BuildCourse: %v", err)
	}
	if len(c.TerrainMesh.Vertices) != 400 {
		t.Errorf("expected 400 terrain vertices, got %d", len(c.TerrainMesh.Vertices))
	}
	if len(c.WaterMesh.Vertices) != 100 {
		t.Errorf("expected 100 water vertices, got %d", len(c.WaterMesh.Vertices))
	}
	if len(c.Grass) > 500 {
		t.Errorf("expected at most 500 grass tufts, got %d", len(c.Grass))
	}
	if len(c.Trees) != len(terrain.DefaultTrees()) {
		t.Errorf("expected %d trees, got %d", len(terrain.DefaultTrees()), len(c.Trees))
	}

	cfg.NoiseMode = "bogus"
	if _, err := BuildCourse(cfg, nil); err == nil {
		t.Error("expected unknown noise mode to fail")
	}
}
