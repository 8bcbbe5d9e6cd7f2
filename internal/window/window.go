// Package window opens the GLFW window and OpenGL context and routes its
// callbacks to the camera and input manager.
package window

import (
	"fmt"

	"mini-engine/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is an open GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	win        *glfw.Window
	clearColor [4]float32
}

// Open initializes GLFW, creates the window and makes its context current.
// It must be called from the main thread.
func Open(cfg config.WindowConfig, clearColor [4]float32) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
			glfw.WindowHint(glfw.RedBits, mode.RedBits)
			glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
			glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
			glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		}
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbW, fbH := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Enable(gl.DEPTH_TEST)

	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return &Window{win: win, clearColor: clearColor}, nil
}

// Bind installs the cursor, resize, focus and key callbacks.
func (w *Window) Bind(ctx *Context) {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		ctx.cursorMoved(xpos, ypos)
	})

	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		ctx.resized(width, height)
	})

	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			ctx.focusGained()
		}
	})

	w.win.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if ctx.keyEvent(key, action) {
			gw.SetShouldClose(true)
		}
	})

	if width, height := w.win.GetFramebufferSize(); height > 0 {
		ctx.resized(width, height)
	}
}

func (w *Window) Clear() {
	gl.ClearColor(w.clearColor[0], w.clearColor[1], w.clearColor[2], w.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// SetShouldClose may be called from any goroutine.
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
