package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/minigolf/internal/game/shot"
)

// KeyState answers keyboard queries for one frame.
type KeyState interface {
	Held(sc sdl.Scancode) bool
	Pressed(sc sdl.Scancode) bool
}

// Bindings maps keys to shot controls. Aim and power keys repeat while held;
// shoot and follow fire once per press.
type Bindings struct {
	PhiUp     sdl.Scancode
	PhiDown   sdl.Scancode
	ThetaUp   sdl.Scancode // flattens the shot
	ThetaDown sdl.Scancode // steepens the shot
	SpeedUp   sdl.Scancode
	SpeedDown sdl.Scancode
	Iron7     sdl.Scancode
	Wedge     sdl.Scancode
	Putter    sdl.Scancode
	Shoot     sdl.Scancode
	Follow    sdl.Scancode
	Quit      sdl.Scancode
}

// DefaultBindings returns the standard layout: WASD aims, Q/E sets power,
// 1-3 picks a club, space shoots and C toggles the follow camera.
func DefaultBindings() Bindings {
	return Bindings{
		PhiUp:     sdl.SCANCODE_A,
		PhiDown:   sdl.SCANCODE_D,
		ThetaUp:   sdl.SCANCODE_S,
		ThetaDown: sdl.SCANCODE_W,
		SpeedUp:   sdl.SCANCODE_Q,
		SpeedDown: sdl.SCANCODE_E,
		Iron7:     sdl.SCANCODE_1,
		Wedge:     sdl.SCANCODE_2,
		Putter:    sdl.SCANCODE_3,
		Shoot:     sdl.SCANCODE_SPACE,
		Follow:    sdl.SCANCODE_C,
		Quit:      sdl.SCANCODE_ESCAPE,
	}
}

// Controls reads this frame's shot controls.
func (b Bindings) Controls(k KeyState) shot.Controls {
	c := shot.Controls{
		Phi:          axis(k, b.PhiUp, b.PhiDown),
		Theta:        axis(k, b.ThetaUp, b.ThetaDown),
		Speed:        axis(k, b.SpeedUp, b.SpeedDown),
		Shoot:        k.Pressed(b.Shoot),
		ToggleFollow: k.Pressed(b.Follow),
	}
	switch {
	case k.Held(b.Iron7):
		c.Club = shot.Iron7
	case k.Held(b.Wedge):
		c.Club = shot.Wedge
	case k.Held(b.Putter):
		c.Club = shot.Putter
	}
	return c
}

func axis(k KeyState, pos, neg sdl.Scancode) int {
	v := 0
	if k.Held(pos) {
		v++
	}
	if k.Held(neg) {
		v--
	}
	return v
}
