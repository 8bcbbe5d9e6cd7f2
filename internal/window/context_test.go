package window

import (
	"testing"

	"mini-engine/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type fakeLook struct {
	moves  [][2]float64
	resets int
	ratios []float32
}

func (f *fakeLook) MouseMoved(x, y float64)  { f.moves = append(f.moves, [2]float64{x, y}) }
func (f *fakeLook) ResetMouse()              { f.resets++ }
func (f *fakeLook) SetAspectRatio(r float32) { f.ratios = append(f.ratios, r) }

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
		ok   bool
	}{
		{800, 600, 800.0 / 600.0, true},
		{1920, 1080, 1920.0 / 1080.0, true},
		{800, 0, 0, false},
		{0, 0, 0, false},
		{-1, 10, 0, false},
	}
	for _, tt := range tests {
		got, ok := AspectRatio(tt.w, tt.h)
		if ok != tt.ok || got != tt.want {
			t.Errorf("AspectRatio(%d, %d) = %v, %v; want %v, %v", tt.w, tt.h, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResizeSkipsMinimized(t *testing.T) {
	look := &fakeLook{}
	ctx := &Context{Camera: look}

	ctx.resized(1024, 512)
	ctx.resized(1024, 0)

	if len(look.ratios) != 1 || look.ratios[0] != 2 {
		t.Errorf("ratios = %v, want [2]", look.ratios)
	}
}

func TestCursorAndFocus(t *testing.T) {
	look := &fakeLook{}
	ctx := &Context{Camera: look}

	ctx.cursorMoved(10, 20)
	ctx.focusGained()

	if len(look.moves) != 1 || look.moves[0] != [2]float64{10, 20} {
		t.Errorf("moves = %v", look.moves)
	}
	if look.resets != 1 {
		t.Errorf("resets = %d, want 1", look.resets)
	}
}

func TestKeyEventQuit(t *testing.T) {
	im := input.NewManager()
	ctx := &Context{Input: im}

	if ctx.keyEvent(glfw.KeyW, glfw.Press) {
		t.Error("W requested quit")
	}
	if !im.IsActive(input.ActionMoveForward) {
		t.Error("W press not forwarded to the input manager")
	}
	if ctx.keyEvent(glfw.KeyEscape, glfw.Release) {
		t.Error("Escape release requested quit")
	}
	if !ctx.keyEvent(glfw.KeyEscape, glfw.Press) {
		t.Error("Escape press did not request quit")
	}
}

func TestNilContextFields(t *testing.T) {
	ctx := &Context{}
	ctx.cursorMoved(1, 2)
	ctx.resized(10, 10)
	ctx.focusGained()
	if ctx.keyEvent(glfw.KeyEscape, glfw.Press) {
		t.Error("nil input manager requested quit")
	}
}
