package window

import (
	"mini-engine/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// MouseLook receives cursor and viewport changes.
type MouseLook interface {
	MouseMoved(xpos, ypos float64)
	ResetMouse()
	SetAspectRatio(ratio float32)
}

// KeyHandler receives raw key transitions.
type KeyHandler interface {
	HandleKeyEvent(key glfw.Key, action glfw.Action)
	Bound(key glfw.Key, action input.Action) bool
}

// Context carries the objects window callbacks talk to. Either field may
// be nil.
type Context struct {
	Camera MouseLook
	Input  KeyHandler
}

func (c *Context) cursorMoved(xpos, ypos float64) {
	if c.Camera != nil {
		c.Camera.MouseMoved(xpos, ypos)
	}
}

func (c *Context) resized(width, height int) {
	if c.Camera == nil {
		return
	}
	if ratio, ok := AspectRatio(width, height); ok {
		c.Camera.SetAspectRatio(ratio)
	}
}

// focusGained drops the stale cursor position so the view does not jump.
func (c *Context) focusGained() {
	if c.Camera != nil {
		c.Camera.ResetMouse()
	}
}

// keyEvent forwards the transition and reports whether it asks to quit.
func (c *Context) keyEvent(key glfw.Key, action glfw.Action) bool {
	if c.Input == nil {
		return false
	}
	c.Input.HandleKeyEvent(key, action)
	return action == glfw.Press && c.Input.Bound(key, input.ActionQuit)
}

// AspectRatio returns width/height, or false for a minimized window.
func AspectRatio(width, height int) (float32, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float32(width) / float32(height), true
}
