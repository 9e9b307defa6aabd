package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/minigolf/internal/game/shot"
)

type fakeKeys struct {
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool
}

func (f fakeKeys) Held(sc sdl.Scancode) bool    { return f.held[sc] }
func (f fakeKeys) Pressed(sc sdl.Scancode) bool { return f.pressed[sc] }

func keys(held ...sdl.Scancode) fakeKeys {
	f := fakeKeys{held: map[sdl.Scancode]bool{}, pressed: map[sdl.Scancode]bool{}}
	for _, sc := range held {
		f.held[sc] = true
	}
	return f
}

func TestControlsAxes(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		name string
		keys fakeKeys
		want shot.Controls
	}{
		{"idle", keys(), shot.Controls{}},
		{"turn left", keys(sdl.SCANCODE_A), shot.Controls{Phi: 1}},
		{"turn right", keys(sdl.SCANCODE_D), shot.Controls{Phi: -1}},
		{"both cancel", keys(sdl.SCANCODE_A, sdl.SCANCODE_D), shot.Controls{}},
		{"steepen and power", keys(sdl.SCANCODE_W, sdl.SCANCODE_Q), shot.Controls{Theta: -1, Speed: 1}},
		{"flatten and soften", keys(sdl.SCANCODE_S, sdl.SCANCODE_E), shot.Controls{Theta: 1, Speed: -1}},
		{"wedge", keys(sdl.SCANCODE_2), shot.Controls{Club: shot.Wedge}},
		{"putter", keys(sdl.SCANCODE_3), shot.Controls{Club: shot.Putter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Controls(tt.keys); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestControlsEdgeTriggered(t *testing.T) {
	b := DefaultBindings()

	held := keys(sdl.SCANCODE_SPACE, sdl.SCANCODE_C)
	if c := b.Controls(held); c.Shoot || c.ToggleFollow {
		t.Errorf("expected held keys not to retrigger, got %+v", c)
	}

	held.pressed[sdl.SCANCODE_SPACE] = true
	held.pressed[sdl.SCANCODE_C] = true
	if c := b.Controls(held); !c.Shoot || !c.ToggleFollow {
		t.Errorf("expected press to trigger shoot and follow, got %+v", c)
	}
}
